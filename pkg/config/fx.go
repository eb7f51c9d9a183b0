package config

import (
	"go.uber.org/fx"
)

// Module provides configuration for fx dependency injection.
var Module = fx.Module("config",
	fx.Provide(ProvideLoader),
	fx.Provide(ProvideConfig),
)

// ProvideLoader provides a configuration loader.
func ProvideLoader() *Loader {
	return NewLoader()
}

// ProvideConfig provides loaded and validated configuration.
func ProvideConfig(loader *Loader) (*Config, error) {
	cfg, err := loader.Load("")
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
