//go:build integration

package hooks

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestExecCommandRunner_Output(t *testing.T) {
	runner := NewCommandRunner()

	output, err := runner.Run(context.Background(), "echo hello from $PRFLOW_HOOK", t.TempDir(),
		[]string{"PATH=/usr/bin:/bin", "PRFLOW_HOOK=pre-branch"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.TrimSpace(output) != "hello from pre-branch" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestExecCommandRunner_NonZeroExit(t *testing.T) {
	runner := NewCommandRunner()

	_, err := runner.Run(context.Background(), "exit 3", t.TempDir(), []string{"PATH=/usr/bin:/bin"})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
}

func TestExecCommandRunner_KilledOnTimeout(t *testing.T) {
	runner := NewCommandRunner()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := runner.Run(ctx, "sleep 10", t.TempDir(), []string{"PATH=/usr/bin:/bin"})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected error after timeout")
	}
	if elapsed > 5*time.Second {
		t.Errorf("subprocess not killed on timeout, took %s", elapsed)
	}
}
