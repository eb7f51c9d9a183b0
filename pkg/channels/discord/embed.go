package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

// Discord hard limits.
const (
	maxTitleLen       = 256
	maxDescriptionLen = 4096
	maxFieldValueLen  = 1024
	maxFields         = 25
)

// Embed colors per envelope kind.
const (
	colorInfo    = 0x3498DB
	colorSuccess = 0x57F287
	colorWarning = 0xE67E22
	colorError   = 0xED4245
)

func kindColor(kind render.Kind) int {
	switch kind {
	case render.KindSuccess:
		return colorSuccess
	case render.KindWarning:
		return colorWarning
	case render.KindError:
		return colorError
	default:
		return colorInfo
	}
}

// embedFromEnvelope maps an envelope onto a Discord embed, truncating
// every part to the platform limits.
func embedFromEnvelope(env *render.Envelope) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       render.Truncate(env.Title, maxTitleLen),
		Description: render.TruncateBlock(env.Description, maxDescriptionLen),
		Color:       kindColor(env.Kind),
	}

	fields := env.Fields
	if len(fields) > maxFields {
		fields = fields[:maxFields]
	}
	for _, f := range fields {
		value := f.Value
		if value == "" {
			value = "-"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   render.Truncate(f.Name, maxTitleLen),
			Value:  render.TruncateBlock(value, maxFieldValueLen),
			Inline: f.Inline,
		})
	}

	if env.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: render.Truncate(env.Footer, maxFieldValueLen),
		}
	}
	return embed
}
