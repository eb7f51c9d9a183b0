package commands

// RegisterAll wires every command group into the registry. Group names
// come from the configuration so servers can rename the slash commands
// without touching code.
func RegisterAll(registry *Registry, d *Deps) error {
	groups := []*Group{
		{
			Name:        d.Config.Discord.GroupGeneral,
			Description: "Bot and account information",
			Commands: []*Command{
				d.accountCommand(),
				d.billingCommand(),
				d.settingsCommand(),
			},
		},
		{
			Name:        d.Config.Discord.GroupPCI,
			Description: "OVHcloud Public Cloud",
			Commands: []*Command{
				d.projectCommand(),
				d.instanceCommand(),
				d.cloudUserCommand(),
				d.voucherCommand(),
			},
		},
		{
			Name:        d.Config.Discord.GroupPCC,
			Description: "OVHcloud Hosted Private Cloud",
			Commands: []*Command{
				d.infrastructureCommand(),
				d.filerCommand(),
				d.hpcUserCommand(),
				d.vmCommand(),
			},
		},
		{
			Name:        d.Config.Discord.GroupAnsible,
			Description: "Ansible inventory and playbooks",
			Commands: []*Command{
				d.hostsCommand(),
				d.playbookCommand(),
			},
		},
	}

	for _, g := range groups {
		if err := registry.AddGroup(g); err != nil {
			return err
		}
	}
	return nil
}
