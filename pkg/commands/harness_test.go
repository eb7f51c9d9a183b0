package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/RemyAtOVH/imabot/pkg/ansible"
	"github.com/RemyAtOVH/imabot/pkg/config"
	"github.com/RemyAtOVH/imabot/pkg/logger"
	"github.com/RemyAtOVH/imabot/pkg/ovhapi"
	"github.com/RemyAtOVH/imabot/pkg/render"
)

// stubTransport serves canned JSON per "METHOD path" key and records
// every call so tests can assert what did and did not hit the API.
type stubTransport struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func newStubTransport() *stubTransport {
	return &stubTransport{
		responses: make(map[string]string),
		errs:      make(map[string]error),
	}
}

func (s *stubTransport) on(key, body string) { s.responses[key] = body }

func (s *stubTransport) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *stubTransport) serve(method, path string, out any) error {
	s.mu.Lock()
	key := method + " " + path
	s.calls = append(s.calls, key)
	err, hasErr := s.errs[key]
	body, hasBody := s.responses[key]
	s.mu.Unlock()

	if hasErr {
		return err
	}
	if !hasBody {
		return &ovhapi.Error{Kind: ovhapi.KindNotFound, Method: method, Path: path, Err: fmt.Errorf("no fixture for %s", key)}
	}
	if out == nil || body == "" {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

func (s *stubTransport) Get(_ context.Context, path string, out any) error {
	return s.serve("GET", path, out)
}

func (s *stubTransport) Post(_ context.Context, path string, body any, out any) error {
	return s.serve("POST", path, out)
}

func (s *stubTransport) Delete(_ context.Context, path string) error {
	return s.serve("DELETE", path, nil)
}

// spyResponder records every delivery.
type spyResponder struct {
	mu       sync.Mutex
	deferred int
	edits    []*render.Envelope
	prompts  []*SelectPrompt
}

func (r *spyResponder) Defer(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deferred++
	return nil
}

func (r *spyResponder) Edit(_ context.Context, env *render.Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edits = append(r.edits, env)
	return nil
}

func (r *spyResponder) Prompt(_ context.Context, env *render.Envelope, p *SelectPrompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, p)
	return nil
}

func (r *spyResponder) lastEdit(t *testing.T) *render.Envelope {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.edits) == 0 {
		t.Fatal("no response was delivered")
	}
	return r.edits[len(r.edits)-1]
}

// testEnv bundles everything a dispatcher test needs.
type testEnv struct {
	transport  *stubTransport
	deps       *Deps
	registry   *Registry
	dispatcher *Dispatcher
	suggester  *Suggester
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	transport := newStubTransport()
	cfg := config.DefaultConfig()
	cfg.Ansible.HostsFile = t.TempDir() + "/hosts"
	cfg.Ansible.PlaybookFolder = t.TempDir()
	log := logger.Nop()
	api := ovhapi.New(transport)

	deps := &Deps{
		API:       api,
		Inventory: ansible.NewInventory(cfg.Ansible.HostsFile),
		Playbooks: ansible.NewPlaybookStore(cfg.Ansible.PlaybookFolder),
		Runner:    ansible.NewRunner(cfg.Ansible.HostsFile, cfg.Ansible.RemoteUser),
		Flows:     NewFlowManager(api, cfg.Cloud, log),
		Config:    cfg,
		Log:       log,
	}

	registry := NewRegistry()
	if err := RegisterAll(registry, deps); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	return &testEnv{
		transport:  transport,
		deps:       deps,
		registry:   registry,
		dispatcher: NewDispatcher(registry, log),
		suggester:  NewSuggester(registry, log),
	}
}

// techCaller has every role.
func techCaller() Identity {
	return Identity{
		DisplayName: "alice",
		Roles:       []string{"Tech", "Tech Lead", "Accounting"},
	}
}

// readOnlyCaller has only the read tier.
func readOnlyCaller() Identity {
	return Identity{DisplayName: "bob", Roles: []string{"Tech"}}
}

func invocation(group, command, action string, caller Identity, opts map[string]string) *Invocation {
	if opts == nil {
		opts = make(map[string]string)
	}
	return &Invocation{
		Group:   group,
		Command: command,
		Action:  action,
		Options: opts,
		Caller:  caller,
	}
}

// stubProject registers a healthy project fixture.
func (e *testEnv) stubProject(id, description string) {
	e.transport.on("GET /cloud/project/"+id,
		fmt.Sprintf(`{"project_id": %q, "description": %q, "status": "ok"}`, id, description))
}

// stubSuspendedProject registers a suspended project fixture.
func (e *testEnv) stubSuspendedProject(id, description string) {
	e.transport.on("GET /cloud/project/"+id,
		fmt.Sprintf(`{"project_id": %q, "description": %q, "status": "suspended"}`, id, description))
}
