package commands

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

// nodepoolMarker identifies instances managed by a Kubernetes nodepool.
// They come and go on their own, so the bot never lists or touches them.
const nodepoolMarker = "nodepool"

func managedByNodepool(name string) bool {
	return strings.Contains(strings.ToLower(name), nodepoolMarker)
}

func (d *Deps) instanceCommand() *Command {
	return &Command{
		Name:        "instance",
		Description: "Public Cloud instances",
		Options: []Option{
			{Name: "project", Description: "Project", Suggest: d.suggestProject},
			{Name: "instance", Description: "Instance", Suggest: d.suggestInstance},
			{Name: "sshkey", Description: "SSH key for creation", Suggest: d.suggestSSHKey},
		},
		Actions: []*Action{
			{
				Name:        "list",
				Description: "List the instances of a project",
				Required:    []string{"project"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.instanceList,
			},
			{
				Name:        "show",
				Description: "Show one instance",
				Required:    []string{"project", "instance"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.instanceShow,
			},
			{
				Name:        "create",
				Description: "Create an instance",
				Required:    []string{"project"},
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.instanceCreate,
			},
			{
				Name:        "delete",
				Description: "Delete an instance",
				Required:    []string{"project", "instance"},
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.instanceDelete,
			},
		},
	}
}

func (d *Deps) instanceList(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	project, guard, err := d.guardProject(ctx, inv.Option("project"))
	if err != nil || guard != nil {
		return guard, err
	}

	instances, err := d.API.Instances(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	hidden := 0
	for _, inst := range instances {
		if managedByNodepool(inst.Name) {
			hidden++
			continue
		}
		rows = append(rows, []string{inst.Name, inst.Region, inst.Flavor.Name, inst.Status})
	}

	footer := fmt.Sprintf("%d instance(s)", len(rows))
	if hidden > 0 {
		footer += fmt.Sprintf(", %d nodepool instance(s) hidden", hidden)
	}

	env := render.Info("Instances of " + project.Description).
		WithFooter(footer)
	if len(rows) == 0 {
		env.Description = "No instance in this project."
	} else {
		env.Description = render.Table([]string{"Name", "Region", "Flavor", "Status"}, rows)
	}
	return env, nil
}

func (d *Deps) instanceShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	project, guard, err := d.guardProject(ctx, inv.Option("project"))
	if err != nil || guard != nil {
		return guard, err
	}

	inst, err := d.API.Instance(ctx, project.ID, inv.Option("instance"))
	if err != nil {
		return nil, err
	}

	return render.Info("Instance " + inst.Name).
		WithDescription(render.JSONBlock(inst)), nil
}

func (d *Deps) instanceCreate(ctx context.Context, inv *Invocation, resp Responder) (*render.Envelope, error) {
	project, guard, err := d.guardProject(ctx, inv.Option("project"))
	if err != nil || guard != nil {
		return guard, err
	}

	prompt := d.Flows.Begin(project.ID, inv.Caller, inv.Option("sshkey"), resp)
	env := render.Info("Instance creation").
		WithDescription(fmt.Sprintf("Pick a region, flavor and image for project `%s`. The prompt expires after %s.",
			project.Description, FlowTimeout))
	if err := resp.Prompt(ctx, env, prompt); err != nil {
		return nil, err
	}
	return nil, nil
}

func (d *Deps) instanceDelete(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	project, guard, err := d.guardProject(ctx, inv.Option("project"))
	if err != nil || guard != nil {
		return guard, err
	}

	instanceID := inv.Option("instance")
	inst, err := d.API.Instance(ctx, project.ID, instanceID)
	if err != nil {
		return nil, err
	}
	if managedByNodepool(inst.Name) {
		return render.Warning("Instance delete").
			WithDescription(fmt.Sprintf("`%s` belongs to a Kubernetes nodepool and is not managed here.", inst.Name)), nil
	}

	if err := d.API.DeleteInstance(ctx, project.ID, instanceID); err != nil {
		return nil, err
	}

	d.Log.Info("Instance deleted",
		zap.String("project", project.ID),
		zap.String("instance", instanceID),
		zap.String("caller", inv.Caller.DisplayName))
	return render.Success("Instance delete").
		WithDescription(fmt.Sprintf("Instance `%s` has been deleted.", inst.Name)).
		WithFooter("Project ID: " + project.ID), nil
}
