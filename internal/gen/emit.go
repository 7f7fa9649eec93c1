package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/trovekit/trove/pkg/upstream"
)

// Emit renders the complete Go source of pkg/trove's generated table from a
// validated snapshot. Tags are emitted in sorted order so the constant block
// and the tags array stay aligned and output is reproducible byte-for-byte.
//
// Emit assumes the snapshot already passed [Validate]; feeding it an
// unvalidated snapshot can produce source that doesn't compile.
func Emit(snap *upstream.Snapshot) []byte {
	tags := slices.Clone(snap.Tags)
	slices.Sort(tags)

	var b strings.Builder
	b.Grow(64 * len(tags))

	b.WriteString("// Code generated by trovegen; DO NOT EDIT.\n")
	b.WriteString("//\n")
	fmt.Fprintf(&b, "// Source: pypa/trove-classifiers %s\n", snap.Version)
	b.WriteString("// Regenerate with: trovegen generate\n")
	b.WriteString("\npackage trove\n\n")

	b.WriteString("// CatalogVersion identifies the upstream pypa/trove-classifiers snapshot\n")
	b.WriteString("// this table encodes. Consumers can compare it against the live catalog to\n")
	b.WriteString("// detect staleness.\n")
	fmt.Fprintf(&b, "const CatalogVersion = %q\n\n", snap.Version)

	b.WriteString("// One constant per known classifier, in canonical (sorted) tag order.\n")
	b.WriteString("const (\n")
	for i, tag := range tags {
		if i == 0 {
			fmt.Fprintf(&b, "\t%s Classifier = iota\n", Mangle(tag))
		} else {
			fmt.Fprintf(&b, "\t%s\n", Mangle(tag))
		}
	}
	b.WriteString(")\n\n")

	b.WriteString("// tags holds the canonical tag string for each Classifier. Entries are in\n")
	b.WriteString("// constant order: tags[c] is the tag for Classifier c.\n")
	b.WriteString("var tags = [...]string{\n")
	for _, tag := range tags {
		fmt.Fprintf(&b, "\t%q,\n", tag)
	}
	b.WriteString("}\n")

	return []byte(b.String())
}
