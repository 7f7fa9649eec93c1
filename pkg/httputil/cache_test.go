package httputil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"stringSlice", "classifiers", []string{"Topic :: Utilities", "Typing :: Typed"}},
		{"string", "version", "2024.10.16"},
		{"map", "meta", map[string]string{"source": "pypi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}

			var result any
			switch tt.value.(type) {
			case []string:
				result = &[]string{}
			case string:
				result = new(string)
			case map[string]string:
				result = &map[string]string{}
			}

			ok, err := c.Get(tt.key, result)
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if !ok {
				t.Fatal("Get() returned false for existing key")
			}
		})
	}
}

func TestCache_Miss(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	var result string
	ok, err := c.Get("missing", &result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Get() returned true for missing key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 10*time.Millisecond)

	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var res string
	ok, err := c.Get("key", &res)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want true, nil", ok, err)
	}

	time.Sleep(20 * time.Millisecond)

	ok, err = c.Get("key", &res)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("got error %v, want ErrExpired", err)
	}
	if ok {
		t.Error("Get() returned true for expired key")
	}
}

func TestCache_KeyStability(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	if c.keyPath("classifiers") != c.keyPath("classifiers") {
		t.Error("path should be deterministic")
	}
	if c.keyPath("classifiers") == c.keyPath("version") {
		t.Error("different keys should produce different paths")
	}
}

func TestNewCache_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	c, err := NewCache("", time.Hour)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}

	want := filepath.Join(home, ".cache", "trovegen")
	if c.Dir() != want {
		t.Errorf("got Dir = %s, want %s", c.Dir(), want)
	}
	if c.TTL() != time.Hour {
		t.Errorf("got TTL = %v, want 1h", c.TTL())
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Errorf("directory not created: %v", err)
	}
}

func TestCache_Namespace(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	classifiers := c.Namespace("classifiers:")
	version := c.Namespace("version:")

	if err := classifiers.Set("latest", "list-data"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := version.Set("latest", "2024.10.16"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var got string
	ok, err := classifiers.Get("latest", &got)
	if !ok || err != nil {
		t.Fatalf("Get() = %v, %v; want true, nil", ok, err)
	}
	if got != "list-data" {
		t.Errorf("namespace isolation violated: got %q", got)
	}

	if ns := c.Namespace("a:").Namespace("b:"); ns.Dir() != c.Dir() || ns.TTL() != c.TTL() {
		t.Error("namespaced view should share dir and TTL")
	}
}
