package discord

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/RemyAtOVH/imabot/pkg/commands"
	"github.com/RemyAtOVH/imabot/pkg/render"
)

// interactionResponder delivers one interaction's responses. The first
// delivery answers the interaction; later ones edit that answer, which
// is also how the creation flow rewrites its prompt after the picks.
type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction

	mu        sync.Mutex
	responded bool
}

func newResponder(session *discordgo.Session, interaction *discordgo.Interaction) *interactionResponder {
	return &interactionResponder{session: session, interaction: interaction}
}

func (r *interactionResponder) markResponded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	already := r.responded
	r.responded = true
	return already
}

// Defer acknowledges the interaction before slow work starts.
func (r *interactionResponder) Defer(ctx context.Context) error {
	if r.markResponded() {
		return nil
	}
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// Edit delivers env, replacing the deferred answer when there is one.
// Components are cleared so an expired prompt loses its menus.
func (r *interactionResponder) Edit(ctx context.Context, env *render.Envelope) error {
	embeds := []*discordgo.MessageEmbed{embedFromEnvelope(env)}

	if !r.markResponded() {
		return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Embeds: embeds},
		})
	}

	components := []discordgo.MessageComponent{}
	_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

// Prompt replaces the deferred answer with env plus one select menu per
// prompt field.
func (r *interactionResponder) Prompt(ctx context.Context, env *render.Envelope, prompt *commands.SelectPrompt) error {
	embeds := []*discordgo.MessageEmbed{embedFromEnvelope(env)}
	components := promptComponents(prompt)

	if !r.markResponded() {
		return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds:     embeds,
				Components: components,
			},
		})
	}

	_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

func promptComponents(prompt *commands.SelectPrompt) []discordgo.MessageComponent {
	components := make([]discordgo.MessageComponent, 0, len(prompt.Selects))
	for _, sel := range prompt.Selects {
		options := make([]discordgo.SelectMenuOption, 0, len(sel.Choices))
		for _, choice := range sel.Choices {
			options = append(options, discordgo.SelectMenuOption{
				Label: choice.Name,
				Value: choice.Value,
			})
		}
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    flowCustomID(prompt.FlowID, sel.Field),
					Placeholder: sel.Placeholder,
					Options:     options,
				},
			},
		})
	}
	return components
}
