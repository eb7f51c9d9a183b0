package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/RemyAtOVH/imabot/pkg/ovhapi"
	"github.com/RemyAtOVH/imabot/pkg/render"
)

// defaultDebtPeriodDays is the lookback window when the caller gives
// no period.
const defaultDebtPeriodDays = 365

func (d *Deps) billingCommand() *Command {
	return &Command{
		Name:        "billing",
		Description: "Debts and orders of the account",
		Options: []Option{
			{
				Name:        "debt_status",
				Description: "Debt status filter",
				Choices: []Choice{
					{Name: "unpaid", Value: ovhapi.DebtStatusUnpaid},
					{Name: "all", Value: "ALL"},
				},
			},
			{
				Name:        "debt_period",
				Description: "Lookback window in days",
				Choices: []Choice{
					{Name: "30 days", Value: "30"},
					{Name: "60 days", Value: "60"},
					{Name: "90 days", Value: "90"},
					{Name: "365 days", Value: "365"},
				},
			},
			{Name: "order", Description: "Order", Suggest: d.suggestOrder},
		},
		Actions: []*Action{
			{
				Name:        "debts",
				Description: "List account debts",
				Role:        d.Config.Roles.Accounting,
				Handler:     d.billingDebts,
			},
			{
				Name:        "order",
				Description: "Show the details of one order",
				Required:    []string{"order"},
				Role:        d.Config.Roles.Accounting,
				Handler:     d.billingOrder,
			},
		},
	}
}

func (d *Deps) billingDebts(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	status := inv.Option("debt_status")
	if status == "" {
		status = ovhapi.DebtStatusUnpaid
	}

	days := defaultDebtPeriodDays
	if raw := inv.Option("debt_period"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid period %q, expected a positive number of days", raw)
		}
		days = parsed
	}
	since := time.Now().AddDate(0, 0, -days)

	ids, err := d.API.DebtIDs(ctx)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	matched := 0
	for _, id := range ids {
		debt, err := d.API.Debt(ctx, id)
		if err != nil {
			return nil, err
		}
		if debt.Date.Before(since) {
			continue
		}
		if status != "ALL" && debt.Status != status {
			continue
		}
		matched++
		rows = append(rows, []string{
			strconv.FormatInt(debt.ID, 10),
			strconv.FormatInt(debt.OrderID, 10),
			debt.Date.Format("2006-01-02"),
			debt.Status,
		})
	}

	env := render.Info("Debts")
	if len(rows) == 0 {
		env.Description = fmt.Sprintf("No debt with status `%s` in the last %d day(s).", status, days)
	} else {
		env.Description = render.Table([]string{"Debt", "Order", "Date", "Status"}, rows)
	}
	env.Footer = fmt.Sprintf("%d of %d debt(s) matching, status %s, last %d day(s)",
		matched, len(ids), status, days)
	return env, nil
}

func (d *Deps) billingOrder(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	orderID, err := strconv.ParseInt(inv.Option("order"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid order id %q", inv.Option("order"))
	}

	detailIDs, err := d.API.OrderDetailIDs(ctx, orderID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(detailIDs))
	for _, id := range detailIDs {
		detail, err := d.API.OrderDetail(ctx, orderID, id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{
			detail.Domain,
			render.Truncate(detail.Description, 60),
			strconv.FormatInt(detail.Quantity, 10),
			detail.TotalPrice.Text,
		})
	}

	return render.Info(fmt.Sprintf("Order %d", orderID)).
		WithDescription(render.Table([]string{"Domain", "Description", "Qty", "Total"}, rows)).
		WithFooter(fmt.Sprintf("%d line(s)", len(rows))), nil
}
