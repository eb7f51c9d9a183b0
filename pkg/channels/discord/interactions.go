package discord

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/commands"
)

// dispatchTimeout bounds one command end to end, well inside the
// 15-minute window a deferred interaction stays editable.
const dispatchTimeout = 2 * time.Minute

// flowPrefix namespaces the creation flow's component custom IDs.
const flowPrefix = "instcreate"

func flowCustomID(flowID, field string) string {
	return flowPrefix + ":" + flowID + ":" + field
}

// parseFlowCustomID splits "instcreate:<flowID>:<field>".
func parseFlowCustomID(customID string) (flowID, field string, ok bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != flowPrefix || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

func (c *Channel) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		c.handleCommand(s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		c.handleAutocomplete(s, i)
	case discordgo.InteractionMessageComponent:
		c.handleComponent(s, i)
	}
}

func (c *Channel) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	inv := c.parseInvocation(i)
	if inv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()
	c.dispatcher.Dispatch(ctx, inv, newResponder(s, i.Interaction))
}

func (c *Channel) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	inv, focused := c.parseAutocomplete(i)
	if inv == nil || focused == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	choices := c.suggester.Suggest(ctx, inv, focused)

	specs := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(choices))
	for _, choice := range choices {
		specs = append(specs, &discordgo.ApplicationCommandOptionChoice{
			Name:  choice.Name,
			Value: choice.Value,
		})
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: specs},
	})
	if err != nil {
		c.log.Warn("Failed to deliver autocomplete choices", zap.Error(err))
	}
}

func (c *Channel) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	flowID, field, ok := parseFlowCustomID(data.CustomID)
	if !ok || len(data.Values) == 0 {
		return
	}

	// Ack the pick; the flow edits the original prompt when done.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		c.log.Warn("Failed to ack component pick", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()
	c.flows.HandleSelect(ctx, flowID, field, data.Values[0])
}

// parseInvocation maps a slash command interaction onto an Invocation.
func (c *Channel) parseInvocation(i *discordgo.InteractionCreate) *commands.Invocation {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return nil
	}
	sub := data.Options[0]

	inv := &commands.Invocation{
		Group:   data.Name,
		Command: sub.Name,
		Options: make(map[string]string),
		Caller:  c.resolveCaller(i),
	}
	for _, opt := range sub.Options {
		if opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		if opt.Name == actionOption {
			inv.Action = opt.StringValue()
			continue
		}
		inv.Options[opt.Name] = opt.StringValue()
	}
	return inv
}

// parseAutocomplete maps an autocomplete interaction onto an Invocation
// plus the name of the focused option.
func (c *Channel) parseAutocomplete(i *discordgo.InteractionCreate) (*commands.Invocation, string) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return nil, ""
	}
	sub := data.Options[0]

	inv := &commands.Invocation{
		Group:   data.Name,
		Command: sub.Name,
		Options: make(map[string]string),
		Caller:  c.resolveCaller(i),
	}
	focused := ""
	for _, opt := range sub.Options {
		if opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		if opt.Name == actionOption {
			inv.Action = opt.StringValue()
			continue
		}
		inv.Options[opt.Name] = opt.StringValue()
		if opt.Focused {
			focused = opt.Name
		}
	}
	return inv, focused
}

// resolveCaller turns the interaction's member into an Identity with
// role names instead of role IDs.
func (c *Channel) resolveCaller(i *discordgo.InteractionCreate) commands.Identity {
	if i.Member == nil {
		// Direct message: no guild roles, so every elevated action
		// will be refused.
		name := ""
		if i.User != nil {
			name = i.User.Username
		}
		return commands.Identity{DisplayName: name}
	}

	name := i.Member.Nick
	if name == "" && i.Member.User != nil {
		name = i.Member.User.Username
	}
	return commands.Identity{
		DisplayName: name,
		Roles:       c.roleNames(i.GuildID, i.Member.Roles),
	}
}

// roleNames resolves role IDs through the state cache, falling back to
// the API when the guild is not cached yet.
func (c *Channel) roleNames(guildID string, roleIDs []string) []string {
	byID := make(map[string]string)
	if guild, err := c.session.State.Guild(guildID); err == nil {
		for _, role := range guild.Roles {
			byID[role.ID] = role.Name
		}
	}
	if len(byID) == 0 {
		roles, err := c.session.GuildRoles(guildID)
		if err != nil {
			c.log.Warn("Failed to resolve guild roles",
				zap.String("guild_id", guildID),
				zap.Error(err))
			return nil
		}
		for _, role := range roles {
			byID[role.ID] = role.Name
		}
	}

	names := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
