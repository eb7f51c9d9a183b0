package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/logger"
)

// maxSuggestions is the platform cap on autocomplete choices.
const maxSuggestions = 25

// Suggester answers autocomplete queries from the registry's option
// providers. It never fails: any provider error collapses to an empty
// list so typing in the chat client stays responsive.
type Suggester struct {
	registry *Registry
	log      *logger.Logger
}

// NewSuggester creates a Suggester.
func NewSuggester(registry *Registry, log *logger.Logger) *Suggester {
	return &Suggester{registry: registry, log: log}
}

// Suggest returns the choices for the focused option of inv, capped at
// the platform limit.
func (s *Suggester) Suggest(ctx context.Context, inv *Invocation, option string) []Choice {
	group := s.registry.Group(inv.Group)
	if group == nil {
		return nil
	}
	cmd := group.Command(inv.Command)
	if cmd == nil {
		return nil
	}
	opt := cmd.Option(option)
	if opt == nil || opt.Suggest == nil {
		return nil
	}

	choices, err := opt.Suggest(ctx, inv)
	if err != nil {
		s.log.Warn("Autocomplete provider failed",
			zap.String("group", inv.Group),
			zap.String("command", inv.Command),
			zap.String("option", option),
			zap.Error(err))
		return nil
	}
	if len(choices) > maxSuggestions {
		choices = choices[:maxSuggestions]
	}
	return choices
}
