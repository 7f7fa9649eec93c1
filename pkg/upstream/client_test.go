package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trovekit/trove/pkg/httputil"
)

const classifierList = "Development Status :: 1 - Planning\n" +
	"Programming Language :: Rust\n" +
	"Typing :: Typed\n"

func TestClient_FetchSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.RawQuery == "%3Aaction=list_classifiers":
			fmt.Fprint(w, classifierList)
		case r.URL.Path == "/pypi/trove-classifiers/json":
			fmt.Fprint(w, `{"info":{"version":"2024.10.16"}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	snap, err := c.FetchSnapshot(context.Background(), true)
	if err != nil {
		t.Fatalf("FetchSnapshot failed: %v", err)
	}

	if snap.Version != "2024.10.16" {
		t.Errorf("Version = %q, want 2024.10.16", snap.Version)
	}
	if len(snap.Tags) != 3 {
		t.Fatalf("expected 3 tags, got %d: %v", len(snap.Tags), snap.Tags)
	}
	if snap.Tags[0] != "Development Status :: 1 - Planning" {
		t.Errorf("first tag = %q", snap.Tags[0])
	}
	if snap.Tags[2] != "Typing :: Typed" {
		t.Errorf("last tag = %q", snap.Tags[2])
	}
}

func TestClient_FetchSnapshot_SortsTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery == "%3Aaction=list_classifiers" {
			fmt.Fprint(w, "Typing :: Typed\nEnvironment :: Console\n")
			return
		}
		fmt.Fprint(w, `{"info":{"version":"2024.10.16"}}`)
	}))
	defer server.Close()

	snap, err := testClient(t, server.URL).FetchSnapshot(context.Background(), true)
	if err != nil {
		t.Fatalf("FetchSnapshot failed: %v", err)
	}
	if snap.Tags[0] != "Environment :: Console" || snap.Tags[1] != "Typing :: Typed" {
		t.Errorf("tags not sorted: %v", snap.Tags)
	}
}

func TestClient_FetchSnapshot_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := testClient(t, server.URL).FetchSnapshot(context.Background(), true)
	if err == nil {
		t.Fatal("expected error for missing endpoints")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchSnapshot_UsesCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.RawQuery == "%3Aaction=list_classifiers" {
			fmt.Fprint(w, classifierList)
			return
		}
		fmt.Fprint(w, `{"info":{"version":"2024.10.16"}}`)
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	if _, err := c.FetchSnapshot(context.Background(), false); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	after := hits
	if _, err := c.FetchSnapshot(context.Background(), false); err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if hits != after {
		t.Errorf("second fetch hit the server %d more times, want 0", hits-after)
	}

	if _, err := c.FetchSnapshot(context.Background(), true); err != nil {
		t.Fatalf("refresh fetch failed: %v", err)
	}
	if hits == after {
		t.Error("refresh should bypass the cache")
	}
}

func TestClient_FetchSnapshot_EmptyVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"info":{}}`)
	}))
	defer server.Close()

	_, err := testClient(t, server.URL).FetchSnapshot(context.Background(), true)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("expected ErrNetwork for empty version, got %v", err)
	}
}

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	cache, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return NewClientWithURLs(cache,
		serverURL+"/pypi?%3Aaction=list_classifiers",
		serverURL+"/pypi/trove-classifiers/json")
}
