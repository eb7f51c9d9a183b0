package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/RemyAtOVH/imabot/pkg/commands"
)

// actionOption is the name of the synthetic option carrying the verb.
const actionOption = "action"

// applicationCommands translates the registry into Discord application
// commands: one top-level command per group, one subcommand per
// resource, a required action choice plus the resource's own options.
func applicationCommands(registry *commands.Registry) []*discordgo.ApplicationCommand {
	groups := registry.Groups()
	specs := make([]*discordgo.ApplicationCommand, 0, len(groups))
	for _, group := range groups {
		subs := make([]*discordgo.ApplicationCommandOption, 0, len(group.Commands))
		for _, cmd := range group.Commands {
			subs = append(subs, subcommandOption(cmd))
		}
		specs = append(specs, &discordgo.ApplicationCommand{
			Name:        group.Name,
			Description: group.Description,
			Options:     subs,
		})
	}
	return specs
}

func subcommandOption(cmd *commands.Command) *discordgo.ApplicationCommandOption {
	opts := make([]*discordgo.ApplicationCommandOption, 0, len(cmd.Options)+1)

	actionChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(cmd.Actions))
	for _, name := range cmd.ActionNames() {
		actionChoices = append(actionChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		})
	}
	opts = append(opts, &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        actionOption,
		Description: "What to do",
		Required:    true,
		Choices:     actionChoices,
	})

	// Every resource option is declared optional; which ones an action
	// really needs is enforced at dispatch so the user gets one
	// message naming all of them.
	for _, opt := range cmd.Options {
		spec := &discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         opt.Name,
			Description:  opt.Description,
			Autocomplete: opt.Suggest != nil,
		}
		for _, choice := range opt.Choices {
			spec.Choices = append(spec.Choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  choice.Name,
				Value: choice.Value,
			})
		}
		opts = append(opts, spec)
	}

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        cmd.Name,
		Description: cmd.Description,
		Options:     opts,
	}
}
