package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOsRunnerSuccess(t *testing.T) {
	r := NewOsRunner()
	err := r.Run(context.Background(), "sh", []string{"-c", "exit 0"}, t.TempDir())
	assert.NoError(t, err)
}

func TestOsRunnerNonzeroExit(t *testing.T) {
	r := NewOsRunner()
	err := r.Run(context.Background(), "sh", []string{"-c", "exit 3"}, t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 3")
}

func TestOsRunnerMissingProgram(t *testing.T) {
	r := NewOsRunner()
	err := r.Run(context.Background(), "definitely-not-a-real-binary", nil, t.TempDir())
	assert.Error(t, err)
}

func TestOsRunnerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewOsRunner()
	err := r.Run(ctx, "sh", []string{"-c", "sleep 5"}, t.TempDir())
	assert.Error(t, err)
}
