package gen

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/trovekit/trove/pkg/errors"
	"github.com/trovekit/trove/pkg/trove"
	"github.com/trovekit/trove/pkg/upstream"
)

func TestMangle(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"Development Status :: 1 - Planning", "DevelopmentStatus__1Planning"},
		{"Development Status :: 5 - Production/Stable", "DevelopmentStatus__5ProductionStable"},
		{"Programming Language :: C#", "ProgrammingLanguage__CSharp"},
		{"Programming Language :: Python :: 3 :: Only", "ProgrammingLanguage__Python__3__Only"},
		{"Framework :: AWS CDK :: 1", "Framework__AWSCDK__1"},
		{"Topic :: Text Processing :: Markup :: reStructuredText", "Topic__TextProcessing__Markup__reStructuredText"},
		{
			"License :: OSI Approved :: GNU General Public License v3 or later (GPLv3+)",
			"License__OSIApproved__GNUGeneralPublicLicensev3orlaterGPLv3Plus",
		},
		{
			"License :: OSI Approved :: CEA CNRS Inria Logiciel Libre License, version 2.1 (CeCILL-2.1)",
			"License__OSIApproved__CEACNRSInriaLogicielLibreLicenseversion2_1CeCILL2_1",
		},
	}

	for _, tt := range tests {
		if got := Mangle(tt.tag); got != tt.want {
			t.Errorf("Mangle(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := func() *upstream.Snapshot {
		return &upstream.Snapshot{
			Version: "2024.10.16",
			Tags:    []string{"Topic :: Utilities", "Typing :: Typed"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*upstream.Snapshot)
		wantOK bool
	}{
		{"valid", func(s *upstream.Snapshot) {}, true},
		{"empty tags", func(s *upstream.Snapshot) { s.Tags = nil }, false},
		{"empty version", func(s *upstream.Snapshot) { s.Version = "  " }, false},
		{"duplicate tag", func(s *upstream.Snapshot) { s.Tags = append(s.Tags, "Typing :: Typed") }, false},
		{"empty segment", func(s *upstream.Snapshot) { s.Tags = append(s.Tags, "Topic ::  :: Shells") }, false},
		{"trailing delimiter", func(s *upstream.Snapshot) { s.Tags = append(s.Tags, "Topic :: Shells :: ") }, false},
		{"identifier collision", func(s *upstream.Snapshot) {
			s.Tags = append(s.Tags, "Typing :: Ty-ped") // hyphen is dropped by mangling
		}, false},
		{"unexported identifier", func(s *upstream.Snapshot) {
			s.Tags = append(s.Tags, "typed :: lowercase")
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := valid()
			tt.mutate(snap)
			err := Validate(snap)
			if tt.wantOK && err != nil {
				t.Fatalf("Validate() failed: %v", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("Validate() succeeded, want error")
				}
				if !errors.Is(err, errors.ErrCodeInvalidSnapshot) {
					t.Errorf("error code = %v, want INVALID_SNAPSHOT", errors.GetCode(err))
				}
			}
		})
	}
}

func TestValidate_NilSnapshot(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Fatal("Validate(nil) succeeded, want error")
	}
}

func TestEmit(t *testing.T) {
	snap := &upstream.Snapshot{
		Version: "2025.1.1",
		Tags: []string{
			"Typing :: Typed",
			"Environment :: Console",
		},
	}

	src := string(Emit(snap))

	for _, want := range []string{
		"// Code generated by trovegen; DO NOT EDIT.",
		"package trove",
		`const CatalogVersion = "2025.1.1"`,
		"\tEnvironment__Console Classifier = iota\n",
		"\tTyping__Typed\n",
		"\t\"Environment :: Console\",\n",
		"\t\"Typing :: Typed\",\n",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("emitted source missing %q", want)
		}
	}

	// Sorted order: Environment before Typing even though the input is reversed.
	if strings.Index(src, "Environment__Console") > strings.Index(src, "Typing__Typed") {
		t.Error("constants not emitted in sorted tag order")
	}
}

func TestEmit_Deterministic(t *testing.T) {
	snap := &upstream.Snapshot{
		Version: "2025.1.1",
		Tags:    []string{"Typing :: Typed", "Environment :: Console"},
	}
	if !bytes.Equal(Emit(snap), Emit(snap)) {
		t.Error("Emit is not deterministic")
	}
}

// TestEmit_MatchesGeneratedTable regenerates the table from the catalog built
// into pkg/trove and checks it is byte-identical to the checked-in file. A
// failure means table_gen.go was edited by hand or the emitter drifted.
func TestEmit_MatchesGeneratedTable(t *testing.T) {
	snap := &upstream.Snapshot{Version: trove.CatalogVersion}
	for c := range trove.All() {
		snap.Tags = append(snap.Tags, c.String())
	}
	if err := Validate(snap); err != nil {
		t.Fatalf("embedded catalog fails validation: %v", err)
	}

	want, err := os.ReadFile("../../pkg/trove/table_gen.go")
	if err != nil {
		t.Fatalf("read table_gen.go: %v", err)
	}

	if got := Emit(snap); !bytes.Equal(got, want) {
		t.Error("Emit(embedded catalog) differs from pkg/trove/table_gen.go; regenerate with trovegen generate")
	}
}
