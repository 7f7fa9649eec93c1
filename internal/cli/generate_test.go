package cli

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/trovekit/trove/pkg/errors"
	"github.com/trovekit/trove/pkg/trove"
	"github.com/trovekit/trove/pkg/upstream"
)

func TestRunGenerate(t *testing.T) {
	server := upstreamServer(t, "Environment :: Console\nTyping :: Typed\n", "2025.3.25")
	output := filepath.Join(t.TempDir(), "table_gen.go")
	cfgPath := testConfig(t, server.URL, output)

	err := runGenerate(context.Background(), generateOpts{configPath: cfgPath})
	if err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}

	src, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read generated table: %v", err)
	}

	for _, want := range []string{
		`const CatalogVersion = "2025.3.25"`,
		"Environment__Console Classifier = iota",
		"\tTyping__Typed\n",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated table missing %q", want)
		}
	}
}

func TestRunGenerate_DryRun(t *testing.T) {
	server := upstreamServer(t, "Typing :: Typed\n", "2025.3.25")
	output := filepath.Join(t.TempDir(), "table_gen.go")
	cfgPath := testConfig(t, server.URL, output)

	err := runGenerate(context.Background(), generateOpts{configPath: cfgPath, dryRun: true})
	if err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}

	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("dry run should not write the output file")
	}
}

func TestRunGenerate_RejectsBadSnapshot(t *testing.T) {
	// Duplicate tag: the snapshot must be rejected before any write.
	server := upstreamServer(t, "Typing :: Typed\nTyping :: Typed\n", "2025.3.25")
	output := filepath.Join(t.TempDir(), "table_gen.go")
	cfgPath := testConfig(t, server.URL, output)

	err := runGenerate(context.Background(), generateOpts{configPath: cfgPath})
	if err == nil {
		t.Fatal("runGenerate succeeded on duplicate tags")
	}
	if !errors.Is(err, errors.ErrCodeInvalidSnapshot) {
		t.Errorf("error code = %v, want INVALID_SNAPSHOT", errors.GetCode(err))
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("rejected snapshot must not overwrite the table")
	}
}

func TestRunGenerate_OutputFlagOverridesConfig(t *testing.T) {
	server := upstreamServer(t, "Typing :: Typed\n", "2025.3.25")
	cfgOutput := filepath.Join(t.TempDir(), "from-config.go")
	flagOutput := filepath.Join(t.TempDir(), "from-flag.go")
	cfgPath := testConfig(t, server.URL, cfgOutput)

	err := runGenerate(context.Background(), generateOpts{configPath: cfgPath, output: flagOutput})
	if err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}

	if _, err := os.Stat(flagOutput); err != nil {
		t.Error("flag output path not written")
	}
	if _, err := os.Stat(cfgOutput); !os.IsNotExist(err) {
		t.Error("config output path should not be written when the flag overrides it")
	}
}

func TestRunGenerate_UpstreamNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)
	cfgPath := testConfig(t, server.URL, filepath.Join(t.TempDir(), "table_gen.go"))

	err := runGenerate(context.Background(), generateOpts{configPath: cfgPath})
	if got := errors.GetCode(err); got != errors.ErrCodeNotFound {
		t.Fatalf("got error %v (code %q), want %s", err, got, errors.ErrCodeNotFound)
	}
}

func TestSnapshotError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.Code
	}{
		{"notFound", fmt.Errorf("version: %w", upstream.ErrNotFound), errors.ErrCodeNotFound},
		{"network", fmt.Errorf("list: %w", upstream.ErrNetwork), errors.ErrCodeNetwork},
		{"timeout", context.DeadlineExceeded, errors.ErrCodeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetCode(snapshotError(tt.err)); got != tt.want {
				t.Errorf("got code %q, want %q", got, tt.want)
			}
		})
	}

	plain := fmt.Errorf("unexpected content type")
	if got := snapshotError(plain); got != plain {
		t.Errorf("got %v, want the error passed through unchanged", got)
	}
}

func TestDiffAgainstCatalog(t *testing.T) {
	var sample []string
	for c := range trove.All() {
		sample = append(sample, c.String())
	}
	dropped := sample[0]
	sample = append(sample, "Not :: Yet :: Known")
	sample = slices.Delete(sample, 0, 1)

	added, removed := diffAgainstCatalog(sample)

	if len(added) != 1 || added[0] != "Not :: Yet :: Known" {
		t.Errorf("added = %v, want the one unknown tag", added)
	}
	if len(removed) != 1 || removed[0] != dropped {
		t.Errorf("removed = %v, want %q", removed, dropped)
	}
}

func TestDiffAgainstCatalog_UpToDate(t *testing.T) {
	var sample []string
	for c := range trove.All() {
		sample = append(sample, c.String())
	}

	added, removed := diffAgainstCatalog(sample)
	if len(added) != 0 || len(removed) != 0 {
		t.Errorf("expected no drift, got added=%d removed=%d", len(added), len(removed))
	}
}

// upstreamServer serves a fixed classifier list and version, mimicking the
// two PyPI endpoints.
func upstreamServer(t *testing.T, list, version string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/json") {
			fmt.Fprintf(w, `{"info":{"version":%q}}`, version)
			return
		}
		fmt.Fprint(w, list)
	}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(t *testing.T, serverURL, output string) string {
	t.Helper()
	return writeConfig(t, fmt.Sprintf(`
list_url = %q
version_url = %q
output = %q
cache_dir = %q
cache_ttl = "1h"
`, serverURL+"/list", serverURL+"/trove-classifiers/json", output, t.TempDir()))
}
