package discord

import (
	"strings"
	"testing"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

func TestEmbedFromEnvelope_ColorsPerKind(t *testing.T) {
	cases := []struct {
		env  *render.Envelope
		want int
	}{
		{render.Info("i"), colorInfo},
		{render.Success("s"), colorSuccess},
		{render.Warning("w"), colorWarning},
		{render.Error("e"), colorError},
	}
	for _, tc := range cases {
		if got := embedFromEnvelope(tc.env).Color; got != tc.want {
			t.Errorf("envelope %q: color = %#x, want %#x", tc.env.Title, got, tc.want)
		}
	}
}

func TestEmbedFromEnvelope_TruncatesToPlatformLimits(t *testing.T) {
	env := render.Info(strings.Repeat("t", 500)).
		WithDescription(strings.Repeat("d", 5000)).
		WithField("f", strings.Repeat("v", 2000))

	embed := embedFromEnvelope(env)
	if len(embed.Title) > maxTitleLen {
		t.Errorf("title length %d exceeds %d", len(embed.Title), maxTitleLen)
	}
	if len(embed.Description) > maxDescriptionLen {
		t.Errorf("description length %d exceeds %d", len(embed.Description), maxDescriptionLen)
	}
	if len(embed.Fields[0].Value) > maxFieldValueLen {
		t.Errorf("field value length %d exceeds %d", len(embed.Fields[0].Value), maxFieldValueLen)
	}
}

func TestEmbedFromEnvelope_TruncationKeepsFencesBalanced(t *testing.T) {
	env := render.Info("t").
		WithDescription(render.CodeBlock("", strings.Repeat("d", 5000))).
		WithField("f", render.CodeBlock("", strings.Repeat("v", 2000)))

	embed := embedFromEnvelope(env)
	if len(embed.Description) > maxDescriptionLen {
		t.Errorf("description length %d exceeds %d", len(embed.Description), maxDescriptionLen)
	}
	if strings.Count(embed.Description, "```")%2 != 0 {
		t.Errorf("description leaves a code fence open:\n%s", embed.Description)
	}
	if strings.Count(embed.Fields[0].Value, "```")%2 != 0 {
		t.Errorf("field value leaves a code fence open:\n%s", embed.Fields[0].Value)
	}
}

func TestEmbedFromEnvelope_CapsFieldCount(t *testing.T) {
	env := render.Info("t")
	for i := 0; i < 30; i++ {
		env.WithField("name", "value")
	}

	if got := len(embedFromEnvelope(env).Fields); got != maxFields {
		t.Errorf("field count = %d, want %d", got, maxFields)
	}
}

func TestEmbedFromEnvelope_EmptyFieldValueBecomesPlaceholder(t *testing.T) {
	embed := embedFromEnvelope(render.Info("t").WithField("name", ""))

	if embed.Fields[0].Value != "-" {
		t.Errorf("empty value rendered as %q, want placeholder", embed.Fields[0].Value)
	}
}
