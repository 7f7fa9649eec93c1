package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/trovekit/trove/pkg/errors"
	"github.com/trovekit/trove/pkg/upstream"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.ListURL != upstream.DefaultListURL {
		t.Errorf("ListURL = %q", cfg.ListURL)
	}
	if cfg.VersionURL != upstream.DefaultVersionURL {
		t.Errorf("VersionURL = %q", cfg.VersionURL)
	}
	if cfg.Output != defaultOutput {
		t.Errorf("Output = %q", cfg.Output)
	}
	if time.Duration(cfg.CacheTTL) != defaultCacheTTL {
		t.Errorf("CacheTTL = %v", time.Duration(cfg.CacheTTL))
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
list_url = "https://mirror.example/classifiers"
output = "out/table_gen.go"
cache_ttl = "1h"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.ListURL != "https://mirror.example/classifiers" {
		t.Errorf("ListURL = %q", cfg.ListURL)
	}
	// Unset keys keep their defaults.
	if cfg.VersionURL != upstream.DefaultVersionURL {
		t.Errorf("VersionURL = %q", cfg.VersionURL)
	}
	if cfg.Output != "out/table_gen.go" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if time.Duration(cfg.CacheTTL) != time.Hour {
		t.Errorf("CacheTTL = %v", time.Duration(cfg.CacheTTL))
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"bad ttl", `cache_ttl = "soon"`},
		{"empty list url", `list_url = ""`},
		{"empty output", `output = ""`},
		{"not toml", `{"json": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.toml))
			if err == nil {
				t.Fatal("loadConfig succeeded, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trovegen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
