package commands

import (
	"context"
	"fmt"
	"strconv"
)

// Autocomplete providers. Each returns the full matching set; the
// Suggester enforces the platform cap. Providers whose scope option is
// still unset return nothing rather than guessing.

func (d *Deps) suggestProject(ctx context.Context, inv *Invocation) ([]Choice, error) {
	partial := inv.Option("project")

	ids, err := d.API.ProjectIDs(ctx)
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, id := range ids {
		project, err := d.API.Project(ctx, id)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("%s (%s)", project.Description, project.ID)
		if matchesPartial(label, partial) {
			choices = append(choices, Choice{Name: label, Value: project.ID})
		}
	}
	return choices, nil
}

func (d *Deps) suggestInstance(ctx context.Context, inv *Invocation) ([]Choice, error) {
	projectID := inv.Option("project")
	if projectID == "" {
		return nil, nil
	}
	partial := inv.Option("instance")

	instances, err := d.API.Instances(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, inst := range instances {
		if managedByNodepool(inst.Name) {
			continue
		}
		if matchesPartial(inst.Name, partial) {
			choices = append(choices, Choice{Name: inst.Name, Value: inst.ID})
		}
	}
	return choices, nil
}

func (d *Deps) suggestSSHKey(ctx context.Context, inv *Invocation) ([]Choice, error) {
	projectID := inv.Option("project")
	if projectID == "" {
		return nil, nil
	}
	partial := inv.Option("sshkey")

	keys, err := d.API.SSHKeys(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, key := range keys {
		if matchesPartial(key.Name, partial) {
			choices = append(choices, Choice{Name: key.Name, Value: key.ID})
		}
	}
	return choices, nil
}

func (d *Deps) suggestCloudUser(ctx context.Context, inv *Invocation) ([]Choice, error) {
	projectID := inv.Option("project")
	if projectID == "" {
		return nil, nil
	}
	partial := inv.Option("user")

	users, err := d.API.CloudUsers(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, u := range users {
		if matchesPartial(u.Username, partial) {
			choices = append(choices, Choice{Name: u.Username, Value: strconv.FormatInt(u.ID, 10)})
		}
	}
	return choices, nil
}

func (d *Deps) suggestVoucher(ctx context.Context, inv *Invocation) ([]Choice, error) {
	projectID := inv.Option("project")
	if projectID == "" {
		return nil, nil
	}
	partial := inv.Option("voucher")

	ids, err := d.API.CreditIDs(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, id := range ids {
		credit, err := d.API.Credit(ctx, projectID, id)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("%d (%s)", credit.ID, credit.Description)
		if matchesPartial(label, partial) {
			choices = append(choices, Choice{Name: label, Value: strconv.FormatInt(credit.ID, 10)})
		}
	}
	return choices, nil
}

func (d *Deps) suggestOrder(ctx context.Context, inv *Invocation) ([]Choice, error) {
	partial := inv.Option("order")

	ids, err := d.API.DebtIDs(ctx)
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, id := range ids {
		debt, err := d.API.Debt(ctx, id)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("order %d (%s, %s)", debt.OrderID, debt.Status, debt.Date.Format("2006-01-02"))
		if matchesPartial(label, partial) {
			choices = append(choices, Choice{Name: label, Value: strconv.FormatInt(debt.OrderID, 10)})
		}
	}
	return choices, nil
}

func (d *Deps) suggestService(ctx context.Context, inv *Invocation) ([]Choice, error) {
	partial := inv.Option("service")

	names, err := d.API.DedicatedCloudNames(ctx)
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, name := range names {
		if matchesPartial(name, partial) {
			choices = append(choices, Choice{Name: name, Value: name})
		}
	}
	return choices, nil
}

func (d *Deps) suggestFiler(ctx context.Context, inv *Invocation) ([]Choice, error) {
	serviceName := inv.Option("service")
	if serviceName == "" {
		return nil, nil
	}
	partial := inv.Option("filer")

	dcIDs, err := d.API.DatacenterIDs(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, dcID := range dcIDs {
		filerIDs, err := d.API.FilerIDs(ctx, serviceName, dcID)
		if err != nil {
			return nil, err
		}
		for _, filerID := range filerIDs {
			filer, err := d.API.Filer(ctx, serviceName, dcID, filerID)
			if err != nil {
				return nil, err
			}
			label := fmt.Sprintf("%s (dc %d)", filer.Name, dcID)
			if matchesPartial(label, partial) {
				choices = append(choices, Choice{
					Name:  label,
					Value: fmt.Sprintf("%d/%d", dcID, filerID),
				})
			}
		}
	}
	return choices, nil
}

func (d *Deps) suggestHPCUser(ctx context.Context, inv *Invocation) ([]Choice, error) {
	serviceName := inv.Option("service")
	if serviceName == "" {
		return nil, nil
	}
	partial := inv.Option("user")

	ids, err := d.API.HPCUserIDs(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, id := range ids {
		user, err := d.API.HPCUser(ctx, serviceName, id)
		if err != nil {
			return nil, err
		}
		if matchesPartial(user.Login, partial) {
			choices = append(choices, Choice{Name: user.Login, Value: strconv.FormatInt(user.UserID, 10)})
		}
	}
	return choices, nil
}

func (d *Deps) suggestVM(ctx context.Context, inv *Invocation) ([]Choice, error) {
	serviceName := inv.Option("service")
	if serviceName == "" {
		return nil, nil
	}
	partial := inv.Option("vm")

	dcIDs, err := d.API.DatacenterIDs(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, dcID := range dcIDs {
		vmIDs, err := d.API.VMIDs(ctx, serviceName, dcID)
		if err != nil {
			return nil, err
		}
		for _, vmID := range vmIDs {
			vm, err := d.API.VM(ctx, serviceName, dcID, vmID)
			if err != nil {
				return nil, err
			}
			if matchesPartial(vm.Name, partial) {
				choices = append(choices, Choice{
					Name:  vm.Name,
					Value: fmt.Sprintf("%d/%d", dcID, vmID),
				})
			}
		}
	}
	return choices, nil
}

func (d *Deps) suggestSection(ctx context.Context, inv *Invocation) ([]Choice, error) {
	partial := inv.Option("section")

	groups, err := d.Inventory.Groups()
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, g := range groups {
		if matchesPartial(g, partial) {
			choices = append(choices, Choice{Name: g, Value: g})
		}
	}
	return choices, nil
}

func (d *Deps) suggestHost(ctx context.Context, inv *Invocation) ([]Choice, error) {
	partial := inv.Option("host")

	// Scope to the section when it is already picked; otherwise offer
	// every known host so remove still completes.
	groups, err := d.Inventory.Groups()
	if err != nil {
		return nil, err
	}
	if g := inv.Option("section"); g != "" {
		groups = []string{g}
	}

	seen := make(map[string]bool)
	var choices []Choice
	for _, g := range groups {
		hosts, err := d.Inventory.Hosts(g)
		if err != nil {
			continue
		}
		for _, h := range hosts {
			if seen[h] || !matchesPartial(h, partial) {
				continue
			}
			seen[h] = true
			choices = append(choices, Choice{Name: h, Value: h})
		}
	}
	return choices, nil
}

func (d *Deps) suggestPlaybook(ctx context.Context, inv *Invocation) ([]Choice, error) {
	partial := inv.Option("playbook")

	names, err := d.Playbooks.List()
	if err != nil {
		return nil, err
	}

	var choices []Choice
	for _, name := range names {
		if matchesPartial(name, partial) {
			choices = append(choices, Choice{Name: name, Value: name})
		}
	}
	return choices, nil
}
