package commands

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

func (d *Deps) cloudUserCommand() *Command {
	return &Command{
		Name:        "user",
		Description: "OpenStack users of a project",
		Options: []Option{
			{Name: "project", Description: "Project", Suggest: d.suggestProject},
			{Name: "user", Description: "User", Suggest: d.suggestCloudUser},
		},
		Actions: []*Action{
			{
				Name:        "list",
				Description: "List the users of a project",
				Required:    []string{"project"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.cloudUserList,
			},
			{
				Name:        "show",
				Description: "Show one user",
				Required:    []string{"project", "user"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.cloudUserShow,
			},
			{
				Name:        "delete",
				Description: "Delete a user",
				Required:    []string{"project", "user"},
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.cloudUserDelete,
			},
		},
	}
}

// parseUserID parses the user option, which carries the numeric ID.
func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return id, nil
}

func (d *Deps) cloudUserList(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	project, guard, err := d.guardProject(ctx, inv.Option("project"))
	if err != nil || guard != nil {
		return guard, err
	}

	users, err := d.API.CloudUsers(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{strconv.FormatInt(u.ID, 10), u.Username, u.Description})
	}

	env := render.Info("Users of " + project.Description).
		WithFooter(fmt.Sprintf("%d user(s)", len(rows)))
	if len(rows) == 0 {
		env.Description = "No user in this project."
	} else {
		env.Description = render.Table([]string{"ID", "Username", "Description"}, rows)
	}
	return env, nil
}

func (d *Deps) cloudUserShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	project, guard, err := d.guardProject(ctx, inv.Option("project"))
	if err != nil || guard != nil {
		return guard, err
	}

	userID, err := parseUserID(inv.Option("user"))
	if err != nil {
		return nil, err
	}
	user, err := d.API.CloudUser(ctx, project.ID, userID)
	if err != nil {
		return nil, err
	}

	return render.Info("User " + user.Username).
		WithDescription(render.JSONBlock(user)), nil
}

func (d *Deps) cloudUserDelete(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	project, guard, err := d.guardProject(ctx, inv.Option("project"))
	if err != nil || guard != nil {
		return guard, err
	}

	userID, err := parseUserID(inv.Option("user"))
	if err != nil {
		return nil, err
	}
	user, err := d.API.CloudUser(ctx, project.ID, userID)
	if err != nil {
		return nil, err
	}

	if err := d.API.DeleteCloudUser(ctx, project.ID, userID); err != nil {
		return nil, err
	}

	d.Log.Info("Cloud user deleted",
		zap.String("project", project.ID),
		zap.Int64("user", userID),
		zap.String("caller", inv.Caller.DisplayName))

	return render.Success("User delete").
		WithDescription(fmt.Sprintf("User `%s` has been deleted.", user.Username)).
		WithFooter("Project ID: " + project.ID), nil
}
