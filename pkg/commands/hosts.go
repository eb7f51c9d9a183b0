package commands

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

func (d *Deps) hostsCommand() *Command {
	return &Command{
		Name:        "hosts",
		Description: "The ansible inventory",
		Options: []Option{
			{Name: "host", Description: "Host name", Suggest: d.suggestHost},
			{Name: "section", Description: "Inventory section", Suggest: d.suggestSection},
		},
		Actions: []*Action{
			{
				Name:        "show",
				Description: "Show the inventory file contents",
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.hostsShow,
			},
			{
				Name:        "graph",
				Description: "Show the inventory graph",
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.hostsGraph,
			},
			{
				Name:        "ping",
				Description: "Ping every inventory host",
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.hostsPing,
			},
			{
				Name:        "assign",
				Description: "Add a host to a section",
				Required:    []string{"host", "section"},
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.hostsAssign,
			},
			{
				Name:        "remove",
				Description: "Remove a host from a section",
				Required:    []string{"host", "section"},
				Role:        d.Config.Roles.TechWrite,
				Handler:     d.hostsRemove,
			},
		},
	}
}

func (d *Deps) hostsShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	groups, err := d.Inventory.Groups()
	if err != nil {
		return nil, err
	}

	env := render.Info("Inventory")
	if len(groups) == 0 {
		env.Description = "The inventory is empty."
		return env, nil
	}
	for _, g := range groups {
		hosts, err := d.Inventory.Hosts(g)
		if err != nil {
			return nil, err
		}
		env.WithField(g, render.CodeBlock("", strings.Join(hosts, "\n")))
	}
	return env.WithFooter(fmt.Sprintf("%d section(s)", len(groups))), nil
}

func (d *Deps) hostsGraph(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	res, err := d.Runner.Graph(ctx)
	if err != nil {
		return render.Error("Inventory graph").
			WithDescription(render.CodeBlock("", render.Truncate(res.Output(), 4000))), nil
	}
	return render.Info("Inventory graph").
		WithDescription(render.CodeBlock("", render.Truncate(res.Output(), 4000))), nil
}

func (d *Deps) hostsPing(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	res, err := d.Runner.Ping(ctx)
	env := render.Success("Ansible ping")
	if err != nil {
		env = render.Error("Ansible ping").
			WithFooter(fmt.Sprintf("exit code %d", res.ExitCode))
	}
	return env.WithDescription(render.CodeBlock("", render.Truncate(res.Output(), 4000))), nil
}

func (d *Deps) hostsAssign(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	host, section := inv.Option("host"), inv.Option("section")
	if err := d.Inventory.Assign(host, section); err != nil {
		return render.Warning("Inventory assign").
			WithDescription(err.Error()), nil
	}

	d.Log.Info("Host assigned",
		zap.String("host", host),
		zap.String("section", section),
		zap.String("caller", inv.Caller.DisplayName))

	return render.Success("Inventory assign").
		WithDescription(fmt.Sprintf("Host `%s` added to section `%s`.", host, section)), nil
}

func (d *Deps) hostsRemove(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	host, section := inv.Option("host"), inv.Option("section")
	if err := d.Inventory.Remove(host, section); err != nil {
		return render.Warning("Inventory remove").
			WithDescription(err.Error()), nil
	}

	d.Log.Info("Host removed",
		zap.String("host", host),
		zap.String("section", section),
		zap.String("caller", inv.Caller.DisplayName))

	return render.Success("Inventory remove").
		WithDescription(fmt.Sprintf("Host `%s` removed from section `%s`.", host, section)), nil
}
