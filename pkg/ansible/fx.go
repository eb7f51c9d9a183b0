package ansible

import (
	"go.uber.org/fx"

	"github.com/RemyAtOVH/imabot/pkg/config"
)

// Module provides the inventory, playbook store and CLI runner.
var Module = fx.Module("ansible",
	fx.Provide(
		func(cfg *config.Config) *Inventory {
			return NewInventory(cfg.Ansible.HostsFile)
		},
		func(cfg *config.Config) *PlaybookStore {
			return NewPlaybookStore(cfg.Ansible.PlaybookFolder)
		},
		func(cfg *config.Config) *Runner {
			return NewRunner(cfg.Ansible.HostsFile, cfg.Ansible.RemoteUser)
		},
	),
)
