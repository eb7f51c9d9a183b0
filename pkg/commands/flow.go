package commands

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RemyAtOVH/imabot/pkg/config"
	"github.com/RemyAtOVH/imabot/pkg/logger"
	"github.com/RemyAtOVH/imabot/pkg/ovhapi"
	"github.com/RemyAtOVH/imabot/pkg/render"
)

// FlowTimeout is how long a creation prompt stays open.
const FlowTimeout = 30 * time.Second

// Flow select fields.
const (
	FieldRegion = "region"
	FieldFlavor = "flavor"
	FieldImage  = "image"
)

type flowState struct {
	id        string
	projectID string
	caller    Identity
	sshKeyID  string
	resp      Responder

	region string
	flavor string
	image  string

	timer *time.Timer
}

func (f *flowState) complete() bool {
	return f.region != "" && f.flavor != "" && f.image != ""
}

// FlowManager tracks pending instance-creation prompts. Each flow waits
// for three dropdown picks, then resolves the platform IDs and creates
// the instance. An expired flow tells the caller instead of going
// silent.
type FlowManager struct {
	mu    sync.Mutex
	flows map[string]*flowState

	api     *ovhapi.Client
	cloud   config.CloudConfig
	log     *logger.Logger
	timeout time.Duration
}

// NewFlowManager creates a FlowManager with the default timeout.
func NewFlowManager(api *ovhapi.Client, cloud config.CloudConfig, log *logger.Logger) *FlowManager {
	return newFlowManager(api, cloud, log, FlowTimeout)
}

func newFlowManager(api *ovhapi.Client, cloud config.CloudConfig, log *logger.Logger, timeout time.Duration) *FlowManager {
	return &FlowManager{
		flows:   make(map[string]*flowState),
		api:     api,
		cloud:   cloud,
		log:     log,
		timeout: timeout,
	}
}

// Begin opens a flow for projectID and returns the prompt to show the
// caller. sshKeyID may be empty, in which case the project's first key
// is used at creation time.
func (m *FlowManager) Begin(projectID string, caller Identity, sshKeyID string, resp Responder) *SelectPrompt {
	flow := &flowState{
		id:        uuid.NewString(),
		projectID: projectID,
		caller:    caller,
		sshKeyID:  sshKeyID,
		resp:      resp,
	}

	m.mu.Lock()
	m.flows[flow.id] = flow
	flow.timer = time.AfterFunc(m.timeout, func() { m.expire(flow.id) })
	m.mu.Unlock()

	return &SelectPrompt{
		FlowID: flow.id,
		Title:  "Instance creation",
		Selects: []Select{
			{Field: FieldRegion, Placeholder: "Select a region", Choices: m.regionChoices()},
			{Field: FieldFlavor, Placeholder: "Select a flavor", Choices: m.labelChoices(m.cloud.Flavors)},
			{Field: FieldImage, Placeholder: "Select an image", Choices: m.labelChoices(m.cloud.Images)},
		},
	}
}

// HandleSelect records one dropdown pick. When the last field arrives
// the instance is created and the outcome replaces the prompt. Picks
// for unknown or expired flows are dropped.
func (m *FlowManager) HandleSelect(ctx context.Context, flowID, field, value string) {
	m.mu.Lock()
	flow, ok := m.flows[flowID]
	if !ok {
		m.mu.Unlock()
		return
	}

	switch field {
	case FieldRegion:
		flow.region = value
	case FieldFlavor:
		flow.flavor = value
	case FieldImage:
		flow.image = value
	default:
		m.mu.Unlock()
		m.log.Warn("Unknown flow field", zap.String("field", field))
		return
	}

	if !flow.complete() {
		m.mu.Unlock()
		return
	}

	delete(m.flows, flowID)
	flow.timer.Stop()
	m.mu.Unlock()

	m.finalize(ctx, flow)
}

// Pending reports whether a flow is still open.
func (m *FlowManager) Pending(flowID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.flows[flowID]
	return ok
}

func (m *FlowManager) expire(flowID string) {
	m.mu.Lock()
	flow, ok := m.flows[flowID]
	if ok {
		delete(m.flows, flowID)
	}
	m.mu.Unlock()
	if !ok {
		return
	}

	m.log.Info("Instance creation timed out",
		zap.String("project", flow.projectID),
		zap.String("caller", flow.caller.DisplayName))

	env := render.Warning("Instance creation").
		WithDescription(fmt.Sprintf("Timed out after %s without a complete selection. Run the command again to retry.", m.timeout))
	if err := flow.resp.Edit(context.Background(), env); err != nil {
		m.log.Error("Failed to deliver timeout notice", zap.Error(err))
	}
}

func (m *FlowManager) finalize(ctx context.Context, flow *flowState) {
	env := m.create(ctx, flow)
	if err := flow.resp.Edit(ctx, env); err != nil {
		m.log.Error("Failed to deliver creation outcome", zap.Error(err))
	}
}

func (m *FlowManager) create(ctx context.Context, flow *flowState) *render.Envelope {
	flavorID := m.cloud.Flavors[flow.region][flow.flavor]
	imageID := m.cloud.Images[flow.region][flow.image]
	if flavorID == "" || imageID == "" {
		return render.Error("Instance creation").
			WithDescription(fmt.Sprintf("No %s / %s available in region %s.", flow.flavor, flow.image, flow.region))
	}

	sshKeyID := flow.sshKeyID
	if sshKeyID == "" {
		keys, err := m.api.SSHKeys(ctx, flow.projectID)
		if err != nil || len(keys) == 0 {
			if err == nil {
				err = fmt.Errorf("project has no SSH key")
			}
			m.log.Error("Instance creation failed", zap.String("project", flow.projectID), zap.Error(err))
			return render.Error("Instance creation").
				WithDescription(fmt.Sprintf("API calls KO [%v]", err))
		}
		sshKeyID = keys[0].ID
	}

	inst, err := m.api.CreateInstance(ctx, flow.projectID, ovhapi.InstanceCreation{
		FlavorID:       flavorID,
		ImageID:        imageID,
		MonthlyBilling: false,
		Name:           flow.flavor + "-imabot",
		Region:         flow.region,
		SSHKeyID:       sshKeyID,
	})
	if err != nil {
		m.log.Error("Instance creation failed", zap.String("project", flow.projectID), zap.Error(err))
		return render.Error("Instance creation").
			WithDescription(fmt.Sprintf("API calls KO [%v]", err))
	}

	m.log.Info("Instance created",
		zap.String("project", flow.projectID),
		zap.String("instance", inst.ID),
		zap.String("region", flow.region))

	return render.Success("Instance creation").
		WithDescription("Instance is being built.").
		WithInlineField("Name", inst.Name).
		WithInlineField("Region", flow.region).
		WithInlineField("Status", inst.Status).
		WithField("ID", inst.ID)
}

func (m *FlowManager) regionChoices() []Choice {
	choices := make([]Choice, 0, len(m.cloud.Regions))
	for _, r := range m.cloud.Regions {
		choices = append(choices, Choice{Name: r.Label, Value: r.Value})
	}
	return choices
}

// labelChoices returns the union of labels across regions, sorted, so
// the dropdown is stable regardless of which region gets picked.
func (m *FlowManager) labelChoices(table map[string]map[string]string) []Choice {
	seen := make(map[string]bool)
	for _, byLabel := range table {
		for label := range byLabel {
			seen[label] = true
		}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	choices := make([]Choice, len(labels))
	for i, label := range labels {
		choices[i] = Choice{Name: label, Value: label}
	}
	return choices
}
