package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHostsAssignShowRemove(t *testing.T) {
	env := newTestEnv(t)
	resp := &spyResponder{}

	inv := invocation("ansible", "hosts", "assign", techCaller(), map[string]string{
		"host":    "web-1",
		"section": "web",
	})
	env.dispatcher.Dispatch(context.Background(), inv, resp)
	if out := resp.lastEdit(t); !strings.Contains(out.Description, "added to section `web`") {
		t.Fatalf("assign outcome: %s", out.Description)
	}

	resp = &spyResponder{}
	inv = invocation("ansible", "hosts", "show", techCaller(), nil)
	env.dispatcher.Dispatch(context.Background(), inv, resp)
	out := resp.lastEdit(t)
	if len(out.Fields) != 1 || out.Fields[0].Name != "web" {
		t.Fatalf("show fields = %+v, want one per section", out.Fields)
	}
	if !strings.Contains(out.Fields[0].Value, "web-1") {
		t.Errorf("section field missing the host: %s", out.Fields[0].Value)
	}

	resp = &spyResponder{}
	inv = invocation("ansible", "hosts", "remove", techCaller(), map[string]string{
		"host":    "web-1",
		"section": "web",
	})
	env.dispatcher.Dispatch(context.Background(), inv, resp)
	if out := resp.lastEdit(t); !strings.Contains(out.Description, "removed from section `web`") {
		t.Fatalf("remove outcome: %s", out.Description)
	}

	resp = &spyResponder{}
	inv = invocation("ansible", "hosts", "show", techCaller(), nil)
	env.dispatcher.Dispatch(context.Background(), inv, resp)
	if out := resp.lastEdit(t); !strings.Contains(out.Description, "empty") {
		t.Errorf("expected empty inventory, got: %s", out.Description)
	}
}

func TestHostsAssignDuplicateWarns(t *testing.T) {
	env := newTestEnv(t)
	opts := map[string]string{"host": "db-1", "section": "db"}

	resp := &spyResponder{}
	env.dispatcher.Dispatch(context.Background(), invocation("ansible", "hosts", "assign", techCaller(), opts), resp)

	resp = &spyResponder{}
	env.dispatcher.Dispatch(context.Background(), invocation("ansible", "hosts", "assign", techCaller(), opts), resp)
	if out := resp.lastEdit(t); !strings.Contains(out.Description, "already") {
		t.Errorf("duplicate assign must warn, got: %s", out.Description)
	}
}

func TestHostsWriteActionsNeedWriteRole(t *testing.T) {
	env := newTestEnv(t)
	resp := &spyResponder{}

	inv := invocation("ansible", "hosts", "assign", readOnlyCaller(), map[string]string{
		"host":    "web-1",
		"section": "web",
	})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	if out := resp.lastEdit(t); !strings.Contains(out.Description, "@Tech Lead") {
		t.Errorf("refusal must name the write role: %s", out.Description)
	}
}

func TestPlaybookListAndShow(t *testing.T) {
	env := newTestEnv(t)
	folder := env.deps.Config.Ansible.PlaybookFolder
	content := "- hosts: web\n  tasks: []\n"
	if err := os.WriteFile(filepath.Join(folder, "deploy.yml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(folder, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	resp := &spyResponder{}
	env.dispatcher.Dispatch(context.Background(), invocation("ansible", "playbook", "list", techCaller(), nil), resp)
	out := resp.lastEdit(t)
	if !strings.Contains(out.Description, "deploy.yml") {
		t.Errorf("listing missing deploy.yml: %s", out.Description)
	}
	if strings.Contains(out.Description, "notes.txt") {
		t.Errorf("non-playbook file leaked into listing: %s", out.Description)
	}

	resp = &spyResponder{}
	env.dispatcher.Dispatch(context.Background(),
		invocation("ansible", "playbook", "show", techCaller(), map[string]string{"playbook": "deploy.yml"}), resp)
	if out := resp.lastEdit(t); !strings.Contains(out.Description, "hosts: web") {
		t.Errorf("show missing playbook content: %s", out.Description)
	}
}

func TestPlaybookShowRejectsTraversal(t *testing.T) {
	env := newTestEnv(t)
	resp := &spyResponder{}

	inv := invocation("ansible", "playbook", "show", techCaller(), map[string]string{
		"playbook": "../../etc/passwd",
	})
	env.dispatcher.Dispatch(context.Background(), inv, resp)

	if out := resp.lastEdit(t); !strings.Contains(out.Description, "API calls KO [") {
		t.Errorf("traversal must fail, got: %s", out.Description)
	}
}
