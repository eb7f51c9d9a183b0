package ansible

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result captures one finished CLI invocation.
type Result struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Output returns stdout, falling back to stderr when stdout is empty.
// The ansible tools write usage errors to stderr only.
func (r *Result) Output() string {
	if strings.TrimSpace(r.Stdout) != "" {
		return r.Stdout
	}
	return r.Stderr
}

// PlaybookMode selects how a playbook run behaves.
type PlaybookMode string

const (
	// ModeApply runs the playbook for real.
	ModeApply PlaybookMode = "apply"
	// ModeCheck runs the playbook in dry-run mode.
	ModeCheck PlaybookMode = "check"
	// ModeListHosts only lists the hosts the playbook would target.
	ModeListHosts PlaybookMode = "list-hosts"
)

// Runner shells out to the ansible CLI tools with the configured
// inventory and remote user.
type Runner struct {
	hostsFile  string
	remoteUser string
}

// NewRunner creates a Runner.
func NewRunner(hostsFile, remoteUser string) *Runner {
	return &Runner{hostsFile: hostsFile, remoteUser: remoteUser}
}

// Graph runs ansible-inventory --graph over the inventory.
func (r *Runner) Graph(ctx context.Context) (*Result, error) {
	return r.run(ctx, "ansible-inventory",
		"--inventory-file="+r.hostsFile,
		"--graph",
	)
}

// Ping runs the ansible ping module against every inventory host.
func (r *Runner) Ping(ctx context.Context) (*Result, error) {
	return r.run(ctx, "ansible",
		"--inventory-file="+r.hostsFile,
		"all",
		"--module-name=ping",
		"--user="+r.remoteUser,
	)
}

// Playbook runs ansible-playbook on path in the given mode.
func (r *Runner) Playbook(ctx context.Context, path string, mode PlaybookMode) (*Result, error) {
	args := []string{
		"--inventory-file=" + r.hostsFile,
		"--user=" + r.remoteUser,
	}
	switch mode {
	case ModeCheck:
		args = append(args, "--check")
	case ModeListHosts:
		args = append(args, "--list-hosts")
	case ModeApply:
	default:
		return nil, fmt.Errorf("unknown playbook mode %q", mode)
	}
	args = append(args, path)
	return r.run(ctx, "ansible-playbook", args...)
}

// run executes one command, capturing both streams. A non-zero exit is
// returned as an error with the Result still populated so callers can
// show the tool's own diagnostics.
func (r *Runner) run(ctx context.Context, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Command: name + " " + strings.Join(args, " "),
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, fmt.Errorf("%s exited with code %d", name, res.ExitCode)
		}
		res.ExitCode = -1
		return res, fmt.Errorf("running %s: %w", name, err)
	}
	return res, nil
}
