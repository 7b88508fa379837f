package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testConfigYAML = `git:
  binary: /opt/git/bin/git
  dir: /srv/repos/widget
browser:
  command: firefox --new-window
remote:
  preferred: origin
logging:
  level: info
  format: json
`

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile returned error: %v", err)
	}

	want := &Config{
		Git:     GitConfig{Binary: "/opt/git/bin/git", Dir: "/srv/repos/widget"},
		Browser: BrowserConfig{Command: "firefox --new-window"},
		Remote:  RemoteConfig{Preferred: "origin"},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(Config{}, boolFlags{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if !IsFileError(err) {
		t.Fatalf("error = %v, want FileError", err)
	}
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("git: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadFromFile(path)
	if !IsFileError(err) {
		t.Fatalf("error = %v, want FileError", err)
	}
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	cfg := &Config{
		Git:     GitConfig{Binary: "git"},
		Browser: BrowserConfig{Command: "open"},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
	}

	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile returned error: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile returned error: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded, cmp.AllowUnexported(Config{}, boolFlags{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_OmitsUnsetSections(t *testing.T) {
	data, err := Render(New())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	text := string(data)
	for _, unwanted := range []string{"binary", "command", "preferred", "verbose"} {
		if strings.Contains(text, unwanted) {
			t.Errorf("rendered zero config mentions %q:\n%s", unwanted, text)
		}
	}
}
