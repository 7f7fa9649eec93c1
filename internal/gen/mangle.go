package gen

import "strings"

// mangleReplacer rewrites a tag into its Go identifier. The delimiter maps
// to a double underscore so segment boundaries stay visible; punctuation
// that can't appear in an identifier is dropped, except "#" and "+", which
// are spelled out ("C#" → "CSharp", "GPLv3+" → "GPLv3Plus"). Argument order
// matters: " :: " must win over the bare space.
var mangleReplacer = strings.NewReplacer(
	" :: ", "__",
	".", "_",
	" ", "",
	"(", "",
	")", "",
	"/", "",
	"-", "",
	"'", "",
	",", "",
	"#", "Sharp",
	"+", "Plus",
)

// Mangle converts a classifier tag into the exported Go constant name used
// in the generated table. The scheme is stable: regenerating from the same
// tag always yields the same identifier, and distinct tags yield distinct
// identifiers (enforced by Validate, not assumed).
func Mangle(tag string) string {
	return mangleReplacer.Replace(tag)
}
