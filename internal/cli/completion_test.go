package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompletionCommand_DisablesDefault(t *testing.T) {
	root := NewRootCmd(Options{})
	if !root.CompletionOptions.DisableDefaultCmd {
		t.Error("expected Cobra default completion command to be disabled")
	}
}

func TestCompletionCommand_NoArgsShowsHelp(t *testing.T) {
	out, err := runCLI(t, nil, "completion")
	if err != nil {
		t.Fatalf("completion with no args should show help, not error: %v", err)
	}
	if !strings.Contains(out, "Supported shells") {
		t.Errorf("help output = %q", out)
	}
}

func TestCompletionCommand_Scripts(t *testing.T) {
	tests := map[string]string{
		"bash":       "__start_taskmanager",
		"zsh":        "#compdef taskmanager",
		"fish":       "complete -c taskmanager",
		"powershell": "Register-ArgumentCompleter",
	}
	for shell, want := range tests {
		t.Run(shell, func(t *testing.T) {
			out, err := runCLI(t, nil, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out, want) {
				t.Errorf("%s script missing %q", shell, want)
			}
		})
	}
}

func TestCompletionCommand_UnsupportedShell(t *testing.T) {
	if _, err := runCLI(t, nil, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestCompletionCommand_Install(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := runCLI(t, nil, "completion", "fish", "--install")
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	target := filepath.Join(home, ".config", "fish", "completions", "taskmanager.fish")
	if !strings.Contains(out, target) {
		t.Errorf("output = %q, want mention of %s", out, target)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading installed file: %v", err)
	}
	if !strings.Contains(string(data), "taskmanager") {
		t.Error("installed script does not mention taskmanager")
	}
}

func TestCompletionTarget_PowerShellUnsupported(t *testing.T) {
	if _, err := completionTarget("/home/x", "powershell"); err == nil {
		t.Error("expected error for powershell install")
	}
}
