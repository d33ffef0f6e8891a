package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).
// - getCommands: we test the command definitions match the parsers' FlagSets.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_md2cv()",
				"complete -o filenames -F _md2cv md2cv",
				`-f|--format) COMPREPLY=($(compgen -W "docx pdf html" -- "$cur")); return ;;`,
				"--asset-path) COMPREPLY=($(compgen -d",
				"'!*.@(yaml|yml)'",
				"'!*.@(pdf)'",
				"--embed-source",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef md2cv",
				"_describe 'command' commands",
				"'(-f --format)'{-f,--format}'[output formats\\: docx, pdf, html (default docx,pdf)]:format:(docx pdf html)'",
				"'--strict[fail when any hint is reported]'",
				"'*:file:_files -g \"*.(md|markdown)\"'",
				"compdef _md2cv md2cv",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c md2cv -f",
				"-n __fish_use_subcommand -a convert",
				"-n '__fish_seen_subcommand_from convert' -s f -l format -x -a 'docx pdf html'",
				"-n '__fish_seen_subcommand_from init' -l asset-path -x -a '(__fish_complete_directories)'",
				"-n '__fish_seen_subcommand_from extract' -k -a '(__fish_complete_suffix .pdf)'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}

			script := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(script, want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
			for _, cmd := range commands {
				if !strings.Contains(script, cmd) {
					t.Errorf("%s script missing command %q", tt.shell, cmd)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("powershell"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("GenerateCompletion() error = %v, want ErrUnsupportedShell", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion - Command entry point
// ---------------------------------------------------------------------------

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	t.Run("no args prints usage", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(t)
		if err := runCompletion(nil, env); err != nil {
			t.Fatalf("runCompletion() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "Usage: md2cv completion <shell>") {
			t.Errorf("stdout = %q, want usage", stdout)
		}
	})

	t.Run("via runMain", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(t)
		if code := runMain([]string{"md2cv", "completion", "bash"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
		}
		if !strings.HasPrefix(stdout.String(), "# bash completion for md2cv") {
			t.Errorf("stdout starts with %q", firstLine(stdout.String()))
		}
	})

	t.Run("invalid shell", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv(t)
		if code := runMain([]string{"md2cv", "completion", "tcsh"}, env); code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "supported: bash, zsh, fish") {
			t.Errorf("stderr = %q, want supported shells", stderr)
		}
	})
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command registry
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()

	var names []string
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff(commands, names); diff != "" {
		t.Errorf("getCommands() names mismatch (-want +got):\n%s", diff)
	}

	flags := map[string]flagDef{}
	for _, c := range cmds {
		for _, f := range c.Flags {
			flags[c.Name+" --"+f.Long] = f
		}
	}

	tests := []struct {
		key  string
		want flagDef
	}{
		{key: "convert --format", want: flagDef{Long: "format", Short: "f", Type: flagEnum, Values: []string{"docx", "pdf", "html"}}},
		{key: "convert --workers", want: flagDef{Long: "workers", Short: "w", Type: flagInt}},
		{key: "convert --hints", want: flagDef{Long: "hints", Type: flagBool}},
		{key: "convert --config", want: flagDef{Long: "config", Short: "c", Type: flagFile, Exts: []string{"yaml", "yml"}}},
		{key: "convert --output", want: flagDef{Long: "output", Short: "o", Type: flagString}},
		{key: "init --template", want: flagDef{Long: "template", Short: "t", Type: flagEnum, Values: []string{"en", "es"}}},
		{key: "init --asset-path", want: flagDef{Long: "asset-path", Type: flagDir}},
		{key: "check --strict", want: flagDef{Long: "strict", Type: flagBool}},
	}

	for _, tt := range tests {
		got, ok := flags[tt.key]
		if !ok {
			t.Errorf("flag %s not registered", tt.key)
			continue
		}
		got.Desc = ""
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.key, diff)
		}
	}
}
