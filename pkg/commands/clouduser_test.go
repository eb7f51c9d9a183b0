package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/RemyAtOVH/imabot/pkg/render"
)

func TestCloudUserDelete_DeletesAndConfirms(t *testing.T) {
	env := newTestEnv(t)
	env.stubProject("p1", "prod")
	env.transport.on("GET /cloud/project/p1/user/7",
		`{"id": 7, "username": "svc-backup", "description": "backup runner"}`)
	env.transport.on("DELETE /cloud/project/p1/user/7", "")
	resp := &spyResponder{}

	inv := invocation("public-cloud", "user", "delete", techCaller(), map[string]string{
		"project": "p1",
		"user":    "7",
	})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	out := resp.lastEdit(t)
	if out.Kind != render.KindSuccess {
		t.Errorf("kind = %v, want success", out.Kind)
	}
	if !strings.Contains(out.Description, "svc-backup") {
		t.Errorf("confirmation must name the user:\n%s", out.Description)
	}
	if !strings.Contains(out.Footer, "Project ID: p1") {
		t.Errorf("footer must carry the scoping project, got %q", out.Footer)
	}
}

func TestCloudUserDelete_RejectsNonNumericID(t *testing.T) {
	env := newTestEnv(t)
	env.stubProject("p1", "prod")
	resp := &spyResponder{}

	inv := invocation("public-cloud", "user", "delete", techCaller(), map[string]string{
		"project": "p1",
		"user":    "svc-backup",
	})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	if out := resp.lastEdit(t); !strings.Contains(out.Description, "API calls KO [") {
		t.Errorf("expected failure, got:\n%s", out.Description)
	}
	for _, call := range env.transport.Calls() {
		if strings.HasPrefix(call, "DELETE") {
			t.Errorf("invalid id must never reach a delete call, got %s", call)
		}
	}
}
