package commands

import (
	"context"
	"fmt"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

func (d *Deps) projectCommand() *Command {
	return &Command{
		Name:        "project",
		Description: "Public Cloud projects",
		Options: []Option{
			{Name: "project", Description: "Project", Suggest: d.suggestProject},
		},
		Actions: []*Action{
			{
				Name:        "list",
				Description: "List every project",
				Role:        d.Config.Roles.TechRead,
				Handler:     d.projectList,
			},
			{
				Name:        "show",
				Description: "Show one project",
				Required:    []string{"project"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.projectShow,
			},
		},
	}
}

func (d *Deps) projectList(ctx context.Context, inv *Invocation, resp Responder) (*render.Envelope, error) {
	ids, err := d.API.ProjectIDs(ctx)
	if err != nil {
		return nil, err
	}

	headers := []string{"ID", "Description", "Status"}
	rows := make([][]string, 0, len(ids))
	for i, id := range ids {
		project, err := d.API.Project(ctx, id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{project.ID, project.Description, project.Status})
		// Grow the deferred message as projects come in.
		if len(ids) > 1 && i+1 < len(ids) {
			_ = resp.Edit(ctx, render.Info("Projects").
				WithDescription(render.Table(headers, rows)).
				WithFooter(fmt.Sprintf("%d of %d project(s)...", i+1, len(ids))))
		}
	}

	env := render.Info("Projects").
		WithFooter(fmt.Sprintf("%d project(s)", len(rows)))
	if len(rows) == 0 {
		env.Description = "No project on this account."
	} else {
		env.Description = render.Table(headers, rows)
	}
	return env, nil
}

func (d *Deps) projectShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	project, err := d.API.Project(ctx, inv.Option("project"))
	if err != nil {
		return nil, err
	}

	env := render.Info("Project " + project.ID).
		WithDescription(render.JSONBlock(project))
	if project.Suspended() {
		env.Kind = render.KindWarning
		env.Footer = "This project is suspended."
	}
	return env, nil
}
