package commands

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/ansible"
	"github.com/RemyAtOVH/imabot/pkg/config"
	"github.com/RemyAtOVH/imabot/pkg/logger"
	"github.com/RemyAtOVH/imabot/pkg/ovhapi"
)

// Module provides the command registry, dispatcher and suggester.
var Module = fx.Module("commands",
	fx.Provide(
		NewRegistry,
		NewDispatcher,
		NewSuggester,
		ProvideDeps,
		func(cfg *config.Config, api *ovhapi.Client, log *logger.Logger) *FlowManager {
			return NewFlowManager(api, cfg.Cloud, log)
		},
	),
	fx.Invoke(registerCommands),
)

// ProvideDeps bundles the handler dependencies.
func ProvideDeps(
	api *ovhapi.Client,
	inventory *ansible.Inventory,
	playbooks *ansible.PlaybookStore,
	runner *ansible.Runner,
	flows *FlowManager,
	cfg *config.Config,
	log *logger.Logger,
) *Deps {
	return &Deps{
		API:       api,
		Inventory: inventory,
		Playbooks: playbooks,
		Runner:    runner,
		Flows:     flows,
		Config:    cfg,
		Log:       log,
	}
}

func registerCommands(registry *Registry, deps *Deps, log *logger.Logger) error {
	if err := RegisterAll(registry, deps); err != nil {
		log.Error("Failed to register commands", zap.Error(err))
		return err
	}

	total := 0
	for _, g := range registry.Groups() {
		total += len(g.Commands)
	}
	log.Info("Registered commands",
		zap.Int("groups", len(registry.Groups())),
		zap.Int("commands", total))
	return nil
}
