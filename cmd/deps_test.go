package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nonzeroday/nzd/internal/config"
)

func TestDefaultDeps_MalformedConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	configPath, err := config.GetConfigPath()
	if err != nil {
		t.Fatalf("failed to resolve config path: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("timezone = [not valid toml"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	d := DefaultDeps()
	if d.Services != nil {
		t.Error("expected nil Services for a malformed config file")
	}
	if d.InitErr == nil {
		t.Error("expected InitErr to carry the parse failure")
	}
}

func TestRunLog_MalformedConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	configPath, err := config.GetConfigPath()
	if err != nil {
		t.Fatalf("failed to resolve config path: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("timezone = [not valid toml"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	d := DefaultDeps()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	exitCode := -1
	d.Stdout = stdout
	d.Stderr = stderr
	d.Stdin = strings.NewReader("")
	d.Exit = func(code int) { exitCode = code }
	SetDeps(d)
	defer ResetDeps()

	runLog(logCmd, []string{"did a thing"})

	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(stderr.String(), "Failed to initialize services") {
		t.Errorf("expected initialization error on stderr, got: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "invalid config file") {
		t.Errorf("expected the parse failure cause on stderr, got: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), filepath.Join("nzd", config.ConfigFile)) {
		t.Errorf("expected the config path hint on stderr, got: %s", stderr.String())
	}
}

func TestCommandsWithoutServices(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"status", runStatus},
		{"log", func() { runLog(logCmd, []string{"did a thing"}) }},
		{"history", runHistory},
		{"stats", runStats},
		{"spark", runSpark},
		{"reflect", runReflect},
		{"reset", runReset},
		{"restore", runRestore},
		{"validate", runValidate},
		{"config show", runConfigShow},
		{"config set", func() { runConfigSet("theme", "nord") }},
		{"tui", runTUI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := &bytes.Buffer{}
			exitCode := -1
			SetDeps(&Deps{
				Stdout:  &bytes.Buffer{},
				Stderr:  stderr,
				Stdin:   strings.NewReader(""),
				Exit:    func(code int) { exitCode = code },
				InitErr: errors.New("invalid config file"),
			})
			defer ResetDeps()

			tt.run()

			if exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", exitCode)
			}
			if !strings.Contains(stderr.String(), "Failed to initialize services") {
				t.Errorf("expected initialization error on stderr, got: %s", stderr.String())
			}
		})
	}
}
