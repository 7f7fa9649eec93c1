package trove

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestParse_RoundTrip(t *testing.T) {
	for c := range All() {
		got, err := Parse(c.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c.String(), err)
		}
		if got != c {
			t.Fatalf("Parse(%q) = %d, want %d", c.String(), got, c)
		}
	}
}

func TestString_Injective(t *testing.T) {
	seen := make(map[string]Classifier, Count())
	for c := range All() {
		tag := c.String()
		if tag == "" {
			t.Fatalf("classifier %d has empty tag", c)
		}
		if prev, dup := seen[tag]; dup {
			t.Fatalf("classifiers %d and %d share tag %q", prev, c, tag)
		}
		seen[tag] = c
	}
	if len(seen) != Count() {
		t.Errorf("expected %d distinct tags, got %d", Count(), len(seen))
	}
}

func TestParse_UnknownTag(t *testing.T) {
	tests := []string{
		"",
		"not a real classifier",
		"programming language :: rust",            // case matters
		" Programming Language :: Rust",           // no trimming
		"Programming Language::Rust",              // delimiter is padded
		"Programming Language :: Rust :: Nightly", // no prefix matching
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", input)
			}
			if !errors.Is(err, ErrUnknownTag) {
				t.Errorf("Parse(%q) error = %v, want ErrUnknownTag", input, err)
			}
			var ute *UnknownTagError
			if !errors.As(err, &ute) {
				t.Fatalf("Parse(%q) error type = %T, want *UnknownTagError", input, err)
			}
			if ute.Tag != input {
				t.Errorf("UnknownTagError.Tag = %q, want %q", ute.Tag, input)
			}
		})
	}
}

func TestParse_ExactMatch(t *testing.T) {
	c, err := Parse("Programming Language :: Rust")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c != ProgrammingLanguage__Rust {
		t.Errorf("expected ProgrammingLanguage__Rust, got %v", c)
	}
}

func TestString_PreservesPunctuation(t *testing.T) {
	tests := []struct {
		classifier Classifier
		tag        string
	}{
		{Framework__AWSCDK__1, "Framework :: AWS CDK :: 1"},
		{DevelopmentStatus__5ProductionStable, "Development Status :: 5 - Production/Stable"},
		{ProgrammingLanguage__CSharp, "Programming Language :: C#"},
		{License__OSIApproved__GNUGeneralPublicLicensev3orlaterGPLv3Plus, "License :: OSI Approved :: GNU General Public License v3 or later (GPLv3+)"},
	}

	for _, tt := range tests {
		if got := tt.classifier.String(); got != tt.tag {
			t.Errorf("String() = %q, want %q", got, tt.tag)
		}
		c, err := Parse(tt.tag)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.tag, err)
		} else if c != tt.classifier {
			t.Errorf("Parse(%q) = %v, want %v", tt.tag, c, tt.classifier)
		}
	}
}

func TestSegments(t *testing.T) {
	c := License__OSIApproved__GNUGeneralPublicLicensev3orlaterGPLv3Plus

	var segs []string
	for s := range c.Segments() {
		segs = append(segs, s)
	}

	want := []string{"License", "OSI Approved", "GNU General Public License v3 or later (GPLv3+)"}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %d: %v", len(want), len(segs), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, segs[i], want[i])
		}
	}
}

func TestSegments_RejoinEqualsTag(t *testing.T) {
	for c := range All() {
		var segs []string
		for s := range c.Segments() {
			segs = append(segs, s)
		}
		if joined := strings.Join(segs, Delimiter); joined != c.String() {
			t.Fatalf("segments of %q rejoin to %q", c.String(), joined)
		}
	}
}

func TestSegments_Restartable(t *testing.T) {
	seq := ProgrammingLanguage__Python__3__Only.Segments()

	collect := func() []string {
		var segs []string
		for s := range seq {
			segs = append(segs, s)
		}
		return segs
	}

	first, second := collect(), collect()
	if len(first) != 4 {
		t.Fatalf("expected 4 segments, got %v", first)
	}
	if !slices.Equal(first, second) {
		t.Errorf("second pass diverged: %v then %v", first, second)
	}
}

func TestSegments_EarlyBreak(t *testing.T) {
	var first string
	for s := range Topic__TextProcessing__Markup__XML.Segments() {
		first = s
		break
	}
	if first != "Topic" {
		t.Errorf("first segment = %q, want Topic", first)
	}
}

func TestIsValid(t *testing.T) {
	if !DevelopmentStatus__1Planning.IsValid() {
		t.Error("first constant should be valid")
	}
	if !Typing__Typed.IsValid() {
		t.Error("last constant should be valid")
	}
	if Classifier(-1).IsValid() {
		t.Error("negative value should be invalid")
	}
	if Classifier(Count()).IsValid() {
		t.Error("value past the table should be invalid")
	}
	if got := Classifier(-1).String(); got != "" {
		t.Errorf("String() of invalid value = %q, want empty", got)
	}
}

func TestAll_CanonicalOrder(t *testing.T) {
	var prev string
	n := 0
	for c := range All() {
		tag := c.String()
		if n > 0 && tag <= prev {
			t.Fatalf("catalog out of order: %q after %q", tag, prev)
		}
		prev = tag
		n++
	}
	if n != Count() {
		t.Errorf("All yielded %d classifiers, Count() = %d", n, Count())
	}
}

func TestCatalogVersion(t *testing.T) {
	if CatalogVersion == "" {
		t.Fatal("CatalogVersion must not be empty")
	}
	if strings.TrimSpace(CatalogVersion) != CatalogVersion {
		t.Errorf("CatalogVersion has surrounding whitespace: %q", CatalogVersion)
	}
}
