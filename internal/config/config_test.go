package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoad_EmptyPathAndMissingFileUseDefaults(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")

	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope.yaml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", path, err)
		}
		if diff := cmp.Diff(Default(), cfg); diff != "" {
			t.Fatalf("Load(%q) mismatch (-want +got):\n%s", path, diff)
		}
	}
	if got, want := Default().Log.Dir, filepath.Join("/state", "xx"); got != want {
		t.Fatalf("log dir=%q, want %q", got, want)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	path := writeConfig(t, `
show_line_numbers: true
show_status: false
initial_text: "hello\nworld"
keys:
  quit: [ctrl+q, alt+q]
log:
  enabled: true
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Config{
		ShowLineNumbers: true,
		ShowStatus:      false,
		InitialText:     "hello\nworld",
		Keys:            map[string][]string{"quit": {"ctrl+q", "alt+q"}},
		Log: LogConfig{
			Enabled: true,
			Level:   "debug",
			Dir:     filepath.Join("/state", "xx"),
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "malformed yaml", body: "show_status: [", want: "parse config"},
		{name: "bad level", body: "log:\n  level: loud\n", want: "log.level"},
		{name: "empty key list", body: "keys:\n  quit: []\n", want: "keys.quit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error=%q, want it to mention %q", err, tc.want)
			}
		})
	}
}
