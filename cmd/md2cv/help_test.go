package main

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunHelp - Per-command usage
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{args: nil, want: "Usage: md2cv <command>"},
		{args: []string{"convert"}, want: "MD2CV_FORMATS"},
		{args: []string{"check"}, want: "--strict"},
		{args: []string{"extract"}, want: "--embed-source"},
		{args: []string{"init"}, want: "--asset-path"},
		{args: []string{"config"}, want: "--config"},
		{args: []string{"version"}, want: "Usage: md2cv version"},
		{args: []string{"help"}, want: "Usage: md2cv help"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(append([]string{"help"}, tt.args...), " "), func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(t)
			runHelp(tt.args, env)

			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout = %q, want substring %q", stdout, tt.want)
			}
			if stderr.Len() != 0 {
				t.Errorf("stderr = %q, want empty", stderr)
			}
		})
	}
}

func TestRunHelp_UnknownCommand(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := testEnv(t)
	runHelp([]string{"publish"}, env)

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr.String(), "Unknown command: publish") {
		t.Errorf("stderr = %q, want unknown command message", stderr)
	}
}
