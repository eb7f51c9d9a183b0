package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/RemyAtOVH/imabot/pkg/ovhapi"
	"github.com/RemyAtOVH/imabot/pkg/render"
)

func (d *Deps) vmCommand() *Command {
	return &Command{
		Name:        "vm",
		Description: "Virtual machines of a Hosted Private Cloud service",
		Options: []Option{
			{Name: "service", Description: "Service", Suggest: d.suggestService},
			{Name: "vm", Description: "Virtual machine", Suggest: d.suggestVM},
		},
		Actions: []*Action{
			{
				Name:        "list",
				Description: "List the VMs grouped by cluster and host",
				Required:    []string{"service"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.vmList,
			},
			{
				Name:        "show",
				Description: "Show one VM",
				Required:    []string{"service", "vm"},
				Role:        d.Config.Roles.TechRead,
				Handler:     d.vmShow,
			},
		},
	}
}

// collectVMs fetches every VM of a service across its datacenters. Each
// datacenter can take a while, so progress is published after each one
// to keep the deferred message alive.
func (d *Deps) collectVMs(ctx context.Context, serviceName string, progress func(done, total int)) ([]ovhapi.VM, error) {
	dcIDs, err := d.API.DatacenterIDs(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	var vms []ovhapi.VM
	for i, dcID := range dcIDs {
		ids, err := d.API.VMIDs(ctx, serviceName, dcID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			vm, err := d.API.VM(ctx, serviceName, dcID, id)
			if err != nil {
				return nil, err
			}
			vms = append(vms, *vm)
		}
		if progress != nil {
			progress(i+1, len(dcIDs))
		}
	}
	return vms, nil
}

func (d *Deps) vmList(ctx context.Context, inv *Invocation, resp Responder) (*render.Envelope, error) {
	svc, guard, err := d.guardService(ctx, inv.Option("service"))
	if err != nil || guard != nil {
		return guard, err
	}

	vms, err := d.collectVMs(ctx, svc.ServiceName, func(done, total int) {
		if total < 2 || done == total {
			return
		}
		_ = resp.Edit(ctx, render.Info("VMs of "+svc.ServiceName).
			WithDescription(fmt.Sprintf("Collecting... %d of %d datacenter(s) done.", done, total)))
	})
	if err != nil {
		return nil, err
	}

	// Group cluster -> host -> vm names so the output mirrors the
	// vSphere topology.
	byCluster := make(map[string]map[string][]string)
	for _, vm := range vms {
		cluster := vm.ClusterName
		if cluster == "" {
			cluster = "unclustered"
		}
		host := vm.HostName
		if host == "" {
			host = "unknown host"
		}
		if byCluster[cluster] == nil {
			byCluster[cluster] = make(map[string][]string)
		}
		byCluster[cluster][host] = append(byCluster[cluster][host], vm.Name)
	}

	clusters := make([]string, 0, len(byCluster))
	for name := range byCluster {
		clusters = append(clusters, name)
	}
	sort.Strings(clusters)

	env := render.Info("VMs of " + svc.ServiceName).
		WithFooter(fmt.Sprintf("%d VM(s)", len(vms)))
	for _, cluster := range clusters {
		hosts := make([]string, 0, len(byCluster[cluster]))
		for host := range byCluster[cluster] {
			hosts = append(hosts, host)
		}
		sort.Strings(hosts)

		var sb strings.Builder
		for _, host := range hosts {
			names := byCluster[cluster][host]
			sort.Strings(names)
			sb.WriteString(host + "\n")
			for _, name := range names {
				sb.WriteString("  " + name + "\n")
			}
		}
		env.WithField(cluster, render.CodeBlock("", render.Truncate(sb.String(), 1000)))
	}
	if len(vms) == 0 {
		env.Description = "No VM on this service."
	}
	return env, nil
}

func (d *Deps) vmShow(ctx context.Context, inv *Invocation, _ Responder) (*render.Envelope, error) {
	svc, guard, err := d.guardService(ctx, inv.Option("service"))
	if err != nil || guard != nil {
		return guard, err
	}

	dcID, vmID, err := parseComposite(inv.Option("vm"))
	if err != nil {
		return nil, err
	}
	vm, err := d.API.VM(ctx, svc.ServiceName, dcID, vmID)
	if err != nil {
		return nil, err
	}

	return render.Info("VM " + vm.Name).
		WithDescription(render.JSONBlock(vm)), nil
}
