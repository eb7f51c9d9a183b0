package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

func (d *Deps) voucherCommand() *Command {
	return &Command{
		Name:        "voucher",
		Description: "Credits and vouchers of a project",
		Options: []Option{
			{Name: "project", Description: "Project", Suggest: d.suggestProject},
			{Name: "voucher", Description: "Voucher", Suggest: d.suggestVoucher},
		},
		Actions: []*Action{
			{
				Name:        "list",
				Description: "List the vouchers of a project",
				Required:    []string{"project"},
				Role:        d.Config.Roles.Accounting,
				Handler:     d.voucherList,
			},
			{
				Name:        "show",
				Description: "Show one voucher",
				Required:    []string{"project", "voucher"},
				Role:        d.Config.Roles.Accounting,
				Handler:     d.voucherShow,
			},
		},
	}
}

func (d *Deps) voucherList(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	project, guard, err := d.guardProject(ctx, inv.Option("project"))
	if err != nil || guard != nil {
		return guard, err
	}

	ids, err := d.API.CreditIDs(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		credit, err := d.API.Credit(ctx, project.ID, id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{
			strconv.FormatInt(credit.ID, 10),
			credit.Description,
			credit.AvailableCredit.Text,
			credit.UsedCredit.Text,
		})
	}

	env := render.Info("Vouchers of " + project.Description).
		WithFooter(fmt.Sprintf("%d voucher(s)", len(rows)))
	if len(rows) == 0 {
		env.Description = "No voucher in this project."
	} else {
		env.Description = render.Table([]string{"ID", "Description", "Available", "Used"}, rows)
	}
	return env, nil
}

func (d *Deps) voucherShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	project, guard, err := d.guardProject(ctx, inv.Option("project"))
	if err != nil || guard != nil {
		return guard, err
	}

	id, err := strconv.ParseInt(inv.Option("voucher"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid voucher id %q", inv.Option("voucher"))
	}
	credit, err := d.API.Credit(ctx, project.ID, id)
	if err != nil {
		return nil, err
	}

	return render.Info(fmt.Sprintf("Voucher %d", credit.ID)).
		WithDescription(render.JSONBlock(credit)), nil
}
