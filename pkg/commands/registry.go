package commands

import (
	"fmt"
	"sort"
	"sync"
)

// Option declares one command option. Declaration order is the order
// options are registered with the platform and the order missing ones
// are reported in.
type Option struct {
	Name        string
	Description string
	// Choices, when set, restricts the option to a fixed list.
	Choices []Choice
	// Suggest, when set, marks the option autocompleted and provides
	// its choices dynamically. Mutually exclusive with Choices.
	Suggest SuggestFunc
}

// Action is one verb of a command. Required lists the option names the
// action needs; Role names the role required to run it, empty for open
// actions.
type Action struct {
	Name        string
	Description string
	Required    []string
	Role        string
	Handler     HandlerFunc
}

// Command is one slash subcommand: a resource with an action choice and
// a shared option set.
type Command struct {
	Name        string
	Description string
	Options     []Option
	Actions     []*Action
}

// Action finds an action by name, nil when unknown.
func (c *Command) Action(name string) *Action {
	for _, a := range c.Actions {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// ActionNames returns the action names in registration order.
func (c *Command) ActionNames() []string {
	names := make([]string, len(c.Actions))
	for i, a := range c.Actions {
		names[i] = a.Name
	}
	return names
}

// Option finds an option by name, nil when unknown.
func (c *Command) Option(name string) *Option {
	for i := range c.Options {
		if c.Options[i].Name == name {
			return &c.Options[i]
		}
	}
	return nil
}

// Group is one top-level slash command holding related subcommands.
type Group struct {
	Name        string
	Description string
	Commands    []*Command
}

// Command finds a subcommand by name, nil when unknown.
func (g *Group) Command(name string) *Command {
	for _, c := range g.Commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Registry holds every command group. Registration happens once at
// startup; lookups are concurrent.
type Registry struct {
	mu     sync.RWMutex
	groups map[string]*Group
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{groups: make(map[string]*Group)}
}

// AddGroup registers a group. Duplicate names are a wiring bug.
func (r *Registry) AddGroup(g *Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[g.Name]; exists {
		return fmt.Errorf("command group %q already registered", g.Name)
	}
	r.groups[g.Name] = g
	return nil
}

// Group returns a registered group, nil when unknown.
func (r *Registry) Group(name string) *Group {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.groups[name]
}

// Groups returns every group sorted by name.
func (r *Registry) Groups() []*Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
