package config_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/dimaq12/minefield/config"
)

func TestExitCode(t *testing.T) {
	_, helpErr := config.Load("minefield", []string{"-h"})
	_, usageErr := config.Load("minefield", []string{"-ui", "web"})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: config.ExitOK},
		{name: "help", err: helpErr, want: config.ExitOK},
		{name: "bad ui", err: usageErr, want: config.ExitUsage},
		{name: "wrapped usage", err: fmt.Errorf("start: %w", config.ErrInvalidConfig), want: config.ExitUsage},
		{name: "other", err: errors.New("open layout: no such file"), want: config.ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.ExitCode(tt.err); got != tt.want {
				t.Fatalf("expected exit code %d, got %d (err %v)", tt.want, got, tt.err)
			}
		})
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	code := config.Report(&buf, "minefield", errors.New("build board: layout has no cells"))
	if code != config.ExitError {
		t.Fatalf("expected exit code %d, got %d", config.ExitError, code)
	}
	if buf.String() != "minefield: build board: layout has no cells\n" {
		t.Fatalf("unexpected report %q", buf.String())
	}

	buf.Reset()
	_, helpErr := config.Load("minefield", []string{"-help"})
	if code := config.Report(&buf, "minefield", helpErr); code != config.ExitOK || buf.Len() != 0 {
		t.Fatalf("expected silent clean exit for help, got code %d output %q", code, buf.String())
	}
}

// Exit calls os.Exit, so it runs in a child test process.
func TestExitUsesUsageCode(t *testing.T) {
	if os.Getenv("TEST_EXIT_SUBPROCESS") == "1" {
		_, err := config.Load("minefield", []string{"-level", "9"})
		config.Exit("minefield", err)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitUsesUsageCode$")
	cmd.Env = append(os.Environ(), "TEST_EXIT_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != config.ExitUsage {
		t.Fatalf("expected exit code %d, got %d", config.ExitUsage, exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "minefield: invalid config: level 9 outside 0-5") {
		t.Fatalf("expected stderr to name the bad level, got %q", string(out))
	}
}
