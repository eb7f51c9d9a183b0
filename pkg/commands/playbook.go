package commands

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/ansible"
	"github.com/RemyAtOVH/imabot/pkg/render"
)

func (d *Deps) playbookCommand() *Command {
	return &Command{
		Name:        "playbook",
		Description: "Ansible playbooks",
		Options: []Option{
			{Name: "playbook", Description: "Playbook", Suggest: d.suggestPlaybook},
		},
		Actions: []*Action{
			{
				Name:        "list",
				Description: "List the available playbooks",
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.playbookList,
			},
			{
				Name:        "show",
				Description: "Show a playbook's content",
				Required:    []string{"playbook"},
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.playbookShow,
			},
			{
				Name:        "hosts",
				Description: "List the hosts a playbook would touch",
				Required:    []string{"playbook"},
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.playbookRun(ansible.ModeListHosts),
			},
			{
				Name:        "check",
				Description: "Dry-run a playbook",
				Required:    []string{"playbook"},
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.playbookRun(ansible.ModeCheck),
			},
			{
				Name:        "run",
				Description: "Run a playbook",
				Required:    []string{"playbook"},
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.playbookRun(ansible.ModeApply),
			},
		},
	}
}

func (d *Deps) playbookList(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	names, err := d.Playbooks.List()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return render.Info("Playbooks").
			WithDescription("No playbook in the playbook folder."), nil
	}
	return render.Info("Playbooks").
		WithDescription("- " + strings.Join(names, "\n- ")).
		WithFooter(fmt.Sprintf("%d playbook(s)", len(names))), nil
}

func (d *Deps) playbookShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	name := inv.Option("playbook")
	content, err := d.Playbooks.Read(name)
	if err != nil {
		return nil, err
	}
	return render.Info("Playbook " + name).
		WithDescription(render.CodeBlock("yaml", render.Truncate(content, 4000))), nil
}

func (d *Deps) playbookRun(mode ansible.PlaybookMode) HandlerFunc {
	return func(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
		name := inv.Option("playbook")
		path, err := d.Playbooks.Path(name)
		if err != nil {
			return nil, err
		}

		d.Log.Info("Running playbook",
			zap.String("playbook", name),
			zap.String("mode", string(mode)),
			zap.String("caller", inv.Caller.DisplayName))

		res, err := d.Runner.Playbook(ctx, path, mode)
		title := fmt.Sprintf("Playbook %s (%s)", name, mode)
		if err != nil {
			return render.Error(title).
				WithDescription(render.CodeBlock("", render.Truncate(res.Output(), 4000))).
				WithFooter(fmt.Sprintf("exit code %d", res.ExitCode)), nil
		}
		return render.Success(title).
			WithDescription(render.CodeBlock("", render.Truncate(res.Output(), 4000))), nil
	}
}
