package commands

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/logger"
	"github.com/RemyAtOVH/imabot/pkg/rbac"
	"github.com/RemyAtOVH/imabot/pkg/render"
)

// Dispatcher validates invocations and runs their handlers. Validation
// is strictly ordered: action existence, then required options, then
// the role gate. Nothing with side effects runs before the gate.
type Dispatcher struct {
	registry *Registry
	log      *logger.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(registry *Registry, log *logger.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, log: log}
}

// Dispatch runs one invocation end to end and delivers the outcome
// through resp. It never returns handler errors to the caller; they are
// rendered so the user always gets a reply.
func (d *Dispatcher) Dispatch(ctx context.Context, inv *Invocation, resp Responder) {
	env := d.dispatch(ctx, inv, resp)
	if env == nil {
		return
	}
	if err := resp.Edit(ctx, env); err != nil {
		d.log.Error("Failed to deliver response",
			zap.String("group", inv.Group),
			zap.String("command", inv.Command),
			zap.Error(err))
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, inv *Invocation, resp Responder) *render.Envelope {
	group := d.registry.Group(inv.Group)
	if group == nil {
		return render.Error("Unknown command").
			WithDescription(fmt.Sprintf("Command group `%s` is not registered.", inv.Group))
	}
	cmd := group.Command(inv.Command)
	if cmd == nil {
		return render.Error("Unknown command").
			WithDescription(fmt.Sprintf("`/%s %s` is not registered.", inv.Group, inv.Command))
	}

	action := cmd.Action(inv.Action)
	if action == nil {
		return render.Error(title(inv)).
			WithDescription(fmt.Sprintf("Action `%s` does not exist. Available actions: %s.",
				inv.Action, strings.Join(cmd.ActionNames(), ", ")))
	}

	// Report every missing option at once, in declaration order.
	var missing []string
	for _, opt := range cmd.Options {
		if required(action, opt.Name) && inv.Option(opt.Name) == "" {
			missing = append(missing, opt.Name)
		}
	}
	if len(missing) > 0 {
		var sb strings.Builder
		sb.WriteString("Check that you provided all variables:\n")
		for _, name := range missing {
			sb.WriteString("- `" + name + "`\n")
		}
		return render.Warning(title(inv)).WithDescription(sb.String())
	}

	// The gate runs before the handler so no mutation can precede it.
	if !rbac.Authorized(inv.Caller.Roles, action.Role) {
		d.log.Warn("Refused elevated action",
			zap.String("group", inv.Group),
			zap.String("command", inv.Command),
			zap.String("action", inv.Action),
			zap.String("caller", inv.Caller.DisplayName))
		return render.Warning(title(inv)).
			WithDescription(fmt.Sprintf("You need the @%s role to run this action.", action.Role))
	}

	// Acknowledge before doing any slow work.
	if err := resp.Defer(ctx); err != nil {
		d.log.Error("Failed to defer response", zap.Error(err))
		return nil
	}

	d.log.Info("Running command",
		zap.String("group", inv.Group),
		zap.String("command", inv.Command),
		zap.String("action", inv.Action),
		zap.String("caller", inv.Caller.DisplayName))

	env, err := action.Handler(ctx, inv, resp)
	if err != nil {
		d.log.Error("Command failed",
			zap.String("group", inv.Group),
			zap.String("command", inv.Command),
			zap.String("action", inv.Action),
			zap.Error(err))
		return render.Error(title(inv)).
			WithDescription(fmt.Sprintf("API calls KO [%v]", err))
	}
	return env
}

func required(a *Action, option string) bool {
	for _, name := range a.Required {
		if name == option {
			return true
		}
	}
	return false
}

func title(inv *Invocation) string {
	return fmt.Sprintf("/%s %s %s", inv.Group, inv.Command, inv.Action)
}
