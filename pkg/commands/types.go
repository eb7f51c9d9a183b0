// Package commands holds the platform-neutral command surface: the
// registry of groups and actions, the dispatcher that validates and runs
// invocations, and the handlers talking to the OVHcloud API and ansible.
// Channel adapters translate platform events into Invocations and
// render the resulting envelopes.
package commands

import (
	"context"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

// Identity is the resolved caller of an invocation. Roles are role
// names, already resolved by the channel adapter.
type Identity struct {
	DisplayName string
	Roles       []string
}

// Invocation is one parsed command call.
type Invocation struct {
	Group   string
	Command string
	Action  string
	Options map[string]string
	Caller  Identity
}

// Option returns an option value, empty when absent.
func (inv *Invocation) Option(name string) string {
	return inv.Options[name]
}

// HasOption reports whether the caller provided the option.
func (inv *Invocation) HasOption(name string) bool {
	_, ok := inv.Options[name]
	return ok
}

// Choice is one autocomplete suggestion or select-menu entry.
type Choice struct {
	Name  string
	Value string
}

// SelectPrompt asks the caller to pick values from dropdown menus. The
// channel adapter renders it with native components and routes the
// picks back through the flow manager.
type SelectPrompt struct {
	FlowID  string
	Title   string
	Selects []Select
}

// Select is one dropdown inside a SelectPrompt.
type Select struct {
	Field       string
	Placeholder string
	Choices     []Choice
}

// Responder delivers responses for one invocation. Defer acknowledges
// within the platform deadline; Edit replaces the deferred response.
type Responder interface {
	Defer(ctx context.Context) error
	Edit(ctx context.Context, env *render.Envelope) error
	Prompt(ctx context.Context, env *render.Envelope, prompt *SelectPrompt) error
}

// HandlerFunc runs one action. A nil envelope with a nil error means
// the handler already responded through the Responder (interactive
// flows do this).
type HandlerFunc func(ctx context.Context, inv *Invocation, resp Responder) (*render.Envelope, error)

// SuggestFunc returns autocomplete choices for one option. The partial
// value the user typed so far is in inv.Options under the option's own
// name.
type SuggestFunc func(ctx context.Context, inv *Invocation) ([]Choice, error)
