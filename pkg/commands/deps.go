package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/RemyAtOVH/imabot/pkg/ansible"
	"github.com/RemyAtOVH/imabot/pkg/config"
	"github.com/RemyAtOVH/imabot/pkg/logger"
	"github.com/RemyAtOVH/imabot/pkg/ovhapi"
	"github.com/RemyAtOVH/imabot/pkg/render"
)

// Deps bundles everything handlers need. One instance is shared by all
// registered actions.
type Deps struct {
	API       *ovhapi.Client
	Inventory *ansible.Inventory
	Playbooks *ansible.PlaybookStore
	Runner    *ansible.Runner
	Flows     *FlowManager
	Config    *config.Config
	Log       *logger.Logger
}

// guardProject fetches a project and refuses to go further when it is
// suspended. Handlers call it before touching any project sub-resource.
func (d *Deps) guardProject(ctx context.Context, projectID string) (*ovhapi.Project, *render.Envelope, error) {
	project, err := d.API.Project(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	if project.Suspended() {
		env := render.Warning("Project suspended").
			WithDescription(fmt.Sprintf("Project `%s` (%s) is suspended; its resources cannot be queried.",
				project.ID, project.Description))
		return nil, env, nil
	}
	return project, nil, nil
}

// guardService fetches a Hosted Private Cloud service and refuses to go
// further until it has been delivered.
func (d *Deps) guardService(ctx context.Context, serviceName string) (*ovhapi.DedicatedCloud, *render.Envelope, error) {
	svc, err := d.API.DedicatedCloud(ctx, serviceName)
	if err != nil {
		return nil, nil, err
	}
	if !svc.Queryable() {
		env := render.Warning("Service not delivered").
			WithDescription(fmt.Sprintf("Service `%s` is in state `%s`; its resources cannot be queried until it is delivered.",
				svc.ServiceName, svc.State))
		return nil, env, nil
	}
	return svc, nil, nil
}

// matchesPartial reports whether a candidate matches what the user has
// typed so far. Empty input matches everything.
func matchesPartial(candidate, partial string) bool {
	if partial == "" {
		return true
	}
	return strings.Contains(strings.ToLower(candidate), strings.ToLower(partial))
}
