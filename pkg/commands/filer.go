package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

func (d *Deps) filerCommand() *Command {
	return &Command{
		Name:        "filer",
		Description: "Datastores of a Hosted Private Cloud service",
		Options: []Option{
			{Name: "service", Description: "Service", Suggest: d.suggestService},
			{Name: "filer", Description: "Filer", Suggest: d.suggestFiler},
		},
		Actions: []*Action{
			{
				Name:        "list",
				Description: "List the filers of a service",
				Required:    []string{"service"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.filerList,
			},
			{
				Name:        "show",
				Description: "Show one filer",
				Required:    []string{"service", "filer"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.filerShow,
			},
		},
	}
}

func (d *Deps) filerList(ctx context.Context, inv *Invocation, resp Responder) (*render.Envelope, error) {
	svc, guard, err := d.guardService(ctx, inv.Option("service"))
	if err != nil || guard != nil {
		return guard, err
	}

	dcIDs, err := d.API.DatacenterIDs(ctx, svc.ServiceName)
	if err != nil {
		return nil, err
	}

	headers := []string{"DC", "Name", "Size", "Used", "Free"}
	var rows [][]string
	for i, dcID := range dcIDs {
		filerIDs, err := d.API.FilerIDs(ctx, svc.ServiceName, dcID)
		if err != nil {
			return nil, err
		}
		for _, filerID := range filerIDs {
			filer, err := d.API.Filer(ctx, svc.ServiceName, dcID, filerID)
			if err != nil {
				return nil, err
			}
			rows = append(rows, []string{
				strconv.FormatInt(dcID, 10),
				filer.Name,
				fmt.Sprintf("%.2f %s", filer.Size.Value, filer.Size.Unit),
				fmt.Sprintf("%.2f", filer.SpaceUsed),
				fmt.Sprintf("%.2f", filer.SpaceFree),
			})
		}
		// Grow the deferred message after each datacenter.
		if len(dcIDs) > 1 && i+1 < len(dcIDs) && len(rows) > 0 {
			_ = resp.Edit(ctx, render.Info("Filers of "+svc.ServiceName).
				WithDescription(render.Table(headers, rows)).
				WithFooter(fmt.Sprintf("%d of %d datacenter(s)...", i+1, len(dcIDs))))
		}
	}

	env := render.Info("Filers of " + svc.ServiceName).
		WithFooter(fmt.Sprintf("%d filer(s)", len(rows)))
	if len(rows) == 0 {
		env.Description = "No filer on this service."
	} else {
		env.Description = render.Table(headers, rows)
	}
	return env, nil
}

func (d *Deps) filerShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	svc, guard, err := d.guardService(ctx, inv.Option("service"))
	if err != nil || guard != nil {
		return guard, err
	}

	dcID, filerID, err := parseComposite(inv.Option("filer"))
	if err != nil {
		return nil, err
	}
	filer, err := d.API.Filer(ctx, svc.ServiceName, dcID, filerID)
	if err != nil {
		return nil, err
	}

	return render.Info("Filer " + filer.Name).
		WithDescription(render.JSONBlock(filer)), nil
}
