package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

func (d *Deps) hpcUserCommand() *Command {
	return &Command{
		Name:        "user",
		Description: "Users of a Hosted Private Cloud service",
		Options: []Option{
			{Name: "service", Description: "Service", Suggest: d.suggestService},
			{Name: "user", Description: "User", Suggest: d.suggestHPCUser},
		},
		Actions: []*Action{
			{
				Name:        "list",
				Description: "List the users of a service",
				Required:    []string{"service"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.hpcUserList,
			},
			{
				Name:        "show",
				Description: "Show one user",
				Required:    []string{"service", "user"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.hpcUserShow,
			},
		},
	}
}

func (d *Deps) hpcUserList(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	svc, guard, err := d.guardService(ctx, inv.Option("service"))
	if err != nil || guard != nil {
		return guard, err
	}

	ids, err := d.API.HPCUserIDs(ctx, svc.ServiceName)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		user, err := d.API.HPCUser(ctx, svc.ServiceName, id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{
			strconv.FormatInt(user.UserID, 10),
			user.Login,
			user.State,
			user.ActivationState,
		})
	}

	env := render.Info("Users of " + svc.ServiceName).
		WithFooter(fmt.Sprintf("%d user(s)", len(rows)))
	if len(rows) == 0 {
		env.Description = "No user on this service."
	} else {
		env.Description = render.Table([]string{"ID", "Login", "State", "Activation"}, rows)
	}
	return env, nil
}

func (d *Deps) hpcUserShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	svc, guard, err := d.guardService(ctx, inv.Option("service"))
	if err != nil || guard != nil {
		return guard, err
	}

	userID, err := parseUserID(inv.Option("user"))
	if err != nil {
		return nil, err
	}
	user, err := d.API.HPCUser(ctx, svc.ServiceName, userID)
	if err != nil {
		return nil, err
	}

	return render.Info("User " + user.Login).
		WithDescription(render.JSONBlock(user)), nil
}
