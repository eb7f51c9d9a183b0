package logger

import (
	"context"

	"go.uber.org/fx"

	"github.com/RemyAtOVH/imabot/pkg/config"
)

// Module provides logger for fx dependency injection.
var Module = fx.Module("logger",
	fx.Provide(ProvideLogger),
)

// ProvideLogger builds the logger from the loaded configuration.
func ProvideLogger(lc fx.Lifecycle, appCfg *config.Config) (*Logger, error) {
	cfg := DefaultConfig()
	cfg.Level = Level(appCfg.Log.Level)
	cfg.OutputPath = appCfg.Log.OutputPath
	cfg.Development = appCfg.Log.Development

	log, err := New(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync may fail against a console stdout, nothing to act on.
			_ = log.Sync()
			return nil
		},
	})

	return log, nil
}
