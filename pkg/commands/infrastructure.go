package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

// parseComposite parses a "datacenterId/resourceId" pair. Both parts
// must be present and made of digits only (no sign); anything else is
// rejected so a stale autocomplete value never hits the wrong resource.
func parseComposite(raw string) (int64, int64, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid value %q, expected datacenterId/resourceId", raw)
	}
	dc, err := parseDigits(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid datacenter id in %q", raw)
	}
	id, err := parseDigits(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid resource id in %q", raw)
	}
	return dc, id, nil
}

func parseDigits(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a digit: %q", r)
		}
	}
	return strconv.ParseInt(s, 10, 64)
}

func (d *Deps) infrastructureCommand() *Command {
	return &Command{
		Name:        "infrastructure",
		Description: "Hosted Private Cloud services",
		Options: []Option{
			{Name: "service", Description: "Service", Suggest: d.suggestService},
		},
		Actions: []*Action{
			{
				Name:        "list",
				Description: "List every service",
				Role:        d.Config.Roles.TechRead,
				Handler:     d.infrastructureList,
			},
			{
				Name:        "show",
				Description: "Show one service",
				Required:    []string{"service"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.infrastructureShow,
			},
		},
	}
}

func (d *Deps) infrastructureList(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	names, err := d.API.DedicatedCloudNames(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		svc, err := d.API.DedicatedCloud(ctx, name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{svc.ServiceName, svc.Location, svc.State, svc.Version.Major})
	}

	env := render.Info("Hosted Private Cloud services").
		WithFooter(fmt.Sprintf("%d service(s)", len(rows)))
	if len(rows) == 0 {
		env.Description = "No Hosted Private Cloud service on this account."
	} else {
		env.Description = render.Table([]string{"Service", "Location", "State", "Version"}, rows)
	}
	return env, nil
}

func (d *Deps) infrastructureShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	svc, err := d.API.DedicatedCloud(ctx, inv.Option("service"))
	if err != nil {
		return nil, err
	}

	env := render.Info("Service " + svc.ServiceName).
		WithDescription(render.JSONBlock(svc))
	if !svc.Queryable() {
		env.Kind = render.KindWarning
		env.Footer = fmt.Sprintf("Service is in state %s; sub-resources are unavailable.", svc.State)
	}
	return env, nil
}
