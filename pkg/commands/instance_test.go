package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

func TestInstanceList_HidesNodepoolInstances(t *testing.T) {
	env := newTestEnv(t)
	env.stubProject("p1", "prod")
	env.transport.on("GET /cloud/project/p1/instance", `[
		{"id": "i1", "name": "web-1", "status": "ACTIVE", "region": "GRA9", "flavor": {"name": "d2-2"}},
		{"id": "i2", "name": "nodepool-abc123-node-0", "status": "ACTIVE", "region": "GRA9", "flavor": {"name": "b2-7"}},
		{"id": "i3", "name": "db-1", "status": "ACTIVE", "region": "GRA9", "flavor": {"name": "d2-4"}}
	]`)
	resp := &spyResponder{}

	inv := invocation("public-cloud", "instance", "list", techCaller(), map[string]string{"project": "p1"})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	out := resp.lastEdit(t)
	if strings.Contains(out.Description, "nodepool") {
		t.Errorf("nodepool instance leaked into listing:\n%s", out.Description)
	}
	for _, want := range []string{"web-1", "db-1"} {
		if !strings.Contains(out.Description, want) {
			t.Errorf("listing missing %q:\n%s", want, out.Description)
		}
	}
	if !strings.Contains(out.Footer, "1 nodepool instance(s) hidden") {
		t.Errorf("footer should count hidden instances, got %q", out.Footer)
	}
}

func TestInstanceList_SuspendedProjectShortCircuits(t *testing.T) {
	env := newTestEnv(t)
	env.stubSuspendedProject("p1", "prod")
	resp := &spyResponder{}

	inv := invocation("public-cloud", "instance", "list", techCaller(), map[string]string{"project": "p1"})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	out := resp.lastEdit(t)
	if out.Kind != render.KindWarning {
		t.Errorf("kind = %v, want warning", out.Kind)
	}
	if !strings.Contains(out.Description, "suspended") {
		t.Errorf("expected suspension notice:\n%s", out.Description)
	}
	for _, call := range env.transport.Calls() {
		if strings.Contains(call, "/instance") {
			t.Errorf("suspended project must not be queried further, got %s", call)
		}
	}
}

func TestInstanceDelete_RefusesNodepoolInstance(t *testing.T) {
	env := newTestEnv(t)
	env.stubProject("p1", "prod")
	env.transport.on("GET /cloud/project/p1/instance/i2",
		`{"id": "i2", "name": "nodepool-abc123-node-0", "status": "ACTIVE", "region": "GRA9"}`)
	resp := &spyResponder{}

	inv := invocation("public-cloud", "instance", "delete", techCaller(), map[string]string{
		"project":  "p1",
		"instance": "i2",
	})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	out := resp.lastEdit(t)
	if out.Kind != render.KindWarning {
		t.Errorf("kind = %v, want warning", out.Kind)
	}
	for _, call := range env.transport.Calls() {
		if strings.HasPrefix(call, "DELETE") {
			t.Errorf("nodepool instance must never be deleted, got %s", call)
		}
	}
}

func TestInstanceDelete_DeletesAndConfirms(t *testing.T) {
	env := newTestEnv(t)
	env.stubProject("p1", "prod")
	env.transport.on("GET /cloud/project/p1/instance/i1",
		`{"id": "i1", "name": "web-1", "status": "ACTIVE", "region": "GRA9"}`)
	env.transport.on("DELETE /cloud/project/p1/instance/i1", "")
	resp := &spyResponder{}

	inv := invocation("public-cloud", "instance", "delete", techCaller(), map[string]string{
		"project":  "p1",
		"instance": "i1",
	})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	out := resp.lastEdit(t)
	if out.Kind != render.KindSuccess {
		t.Errorf("kind = %v, want success", out.Kind)
	}
	if !strings.Contains(out.Description, "web-1") {
		t.Errorf("confirmation must name the instance:\n%s", out.Description)
	}
	if !strings.Contains(out.Footer, "Project ID: p1") {
		t.Errorf("footer must carry the scoping project, got %q", out.Footer)
	}
	found := false
	for _, call := range env.transport.Calls() {
		if call == "DELETE /cloud/project/p1/instance/i1" {
			found = true
		}
	}
	if !found {
		t.Errorf("delete call not issued, calls: %v", env.transport.Calls())
	}
}

func TestInstanceCreate_OpensPromptWithThreeSelects(t *testing.T) {
	env := newTestEnv(t)
	env.stubProject("p1", "prod")
	resp := &spyResponder{}

	inv := invocation("public-cloud", "instance", "create", techCaller(), map[string]string{"project": "p1"})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	if len(resp.prompts) != 1 {
		t.Fatalf("got %d prompts, want 1", len(resp.prompts))
	}
	prompt := resp.prompts[0]
	if prompt.FlowID == "" {
		t.Error("prompt must carry a flow id")
	}
	if len(prompt.Selects) != 3 {
		t.Fatalf("got %d selects, want 3", len(prompt.Selects))
	}
	fields := []string{prompt.Selects[0].Field, prompt.Selects[1].Field, prompt.Selects[2].Field}
	want := []string{FieldRegion, FieldFlavor, FieldImage}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("select %d = %q, want %q", i, fields[i], want[i])
		}
	}
	if !env.deps.Flows.Pending(prompt.FlowID) {
		t.Error("flow should be pending after the prompt")
	}
}
