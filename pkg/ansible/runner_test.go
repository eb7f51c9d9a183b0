package ansible

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_OutputPrefersStdout(t *testing.T) {
	r := &Result{Stdout: "all good\n", Stderr: "warning: noise\n"}
	assert.Equal(t, "all good\n", r.Output())
}

func TestResult_OutputFallsBackToStderr(t *testing.T) {
	r := &Result{Stdout: "  \n", Stderr: "ERROR! the playbook could not be found"}
	assert.Equal(t, "ERROR! the playbook could not be found", r.Output())
}

func TestRunner_PlaybookRejectsUnknownMode(t *testing.T) {
	r := NewRunner("/etc/ansible/hosts", "ansible")

	_, err := r.Playbook(context.Background(), "/tmp/deploy.yml", PlaybookMode("bogus"))
	assert.Error(t, err)
}

func TestRunner_MissingBinaryReportsError(t *testing.T) {
	r := &Runner{hostsFile: "/etc/ansible/hosts", remoteUser: "ansible"}

	res, err := r.run(context.Background(), "imabot-no-such-binary")
	assert.Error(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, -1, res.ExitCode)
	}
}

func TestRunner_CapturesExitCodeAndStreams(t *testing.T) {
	r := &Runner{}

	res, err := r.run(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")
	assert.Error(t, err)
	if assert.NotNil(t, res) {
		assert.Equal(t, 3, res.ExitCode)
		assert.Equal(t, "out\n", res.Stdout)
		assert.Equal(t, "err\n", res.Stderr)
	}
}
