package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	cfg "github.com/toeirei/passbuilder/internal/config"
)

// isolate points the user config dir at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	got, used, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if used != "" {
		t.Fatalf("expected no config file, got %q", used)
	}
	if got.Log.Level != "info" || got.Output != "text" || got.Copy || !got.TUI.ShowPlaybook {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	yaml := "log:\n  level: debug\noutput: json\ntui:\n  show_playbook: false\n"
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, used, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if used != file {
		t.Fatalf("expected %s used, got %q", file, used)
	}
	if got.Log.Level != "debug" || got.Output != "json" || got.TUI.ShowPlaybook {
		t.Fatalf("file values not applied: %+v", got)
	}
}

func TestLoadConfig_EnvAndFlagPrecedence(t *testing.T) {
	isolate(t)
	t.Setenv("PASSBUILDER_OUTPUT", "yaml")
	t.Setenv("PASSBUILDER_LOG_LEVEL", "warn")

	cmd := &cobra.Command{}
	cmd.Flags().String("log-level", "", "")
	cmd.Flags().Bool("copy", false, "")
	if err := cmd.Flags().Set("log-level", "error"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, _, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Output != "yaml" {
		t.Fatalf("expected env output yaml, got %q", got.Output)
	}
	if got.Log.Level != "error" {
		t.Fatalf("expected flag to beat env for log level, got %q", got.Log.Level)
	}
	if got.Copy {
		t.Fatalf("unchanged flag must not override default")
	}
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(file, []byte("log: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, _, err := cfg.LoadConfig[cfg.Config](nil, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)

	c := cfg.Config{Output: "json", Copy: true}
	c.Log.Level = "debug"
	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	want, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != want {
		t.Fatalf("wrote %s, expected %s", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "output: json") {
		t.Fatalf("unexpected file content:\n%s", data)
	}

	got, used, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if used != path || got.Output != "json" || !got.Copy || got.Log.Level != "debug" {
		t.Fatalf("round trip mismatch: used=%q cfg=%+v", used, got)
	}
}
