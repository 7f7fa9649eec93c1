package gen

import (
	"regexp"
	"strings"

	"github.com/trovekit/trove/pkg/errors"
	"github.com/trovekit/trove/pkg/upstream"
)

const delimiter = " :: "

var identRE = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// Validate checks that a snapshot can safely become the catalog table.
//
// It enforces the invariants pkg/trove promises its callers: a non-empty
// catalog, a non-empty version label, tag→identifier bijectivity in both
// directions, and tags whose segments are all non-empty (no leading,
// trailing, or doubled delimiter). Every finding is an
// [errors.ErrCodeInvalidSnapshot] error.
func Validate(snap *upstream.Snapshot) error {
	if snap == nil || len(snap.Tags) == 0 {
		return errors.New(errors.ErrCodeInvalidSnapshot, "snapshot has no classifiers")
	}
	if strings.TrimSpace(snap.Version) == "" {
		return errors.New(errors.ErrCodeInvalidSnapshot, "snapshot has no version label")
	}

	seenTags := make(map[string]bool, len(snap.Tags))
	seenIdents := make(map[string]string, len(snap.Tags))

	for _, tag := range snap.Tags {
		if seenTags[tag] {
			return errors.New(errors.ErrCodeInvalidSnapshot, "duplicate tag %q", tag)
		}
		seenTags[tag] = true

		for _, seg := range strings.Split(tag, delimiter) {
			if seg == "" {
				return errors.New(errors.ErrCodeInvalidSnapshot, "tag %q has an empty segment", tag)
			}
		}

		ident := Mangle(tag)
		if !identRE.MatchString(ident) {
			return errors.New(errors.ErrCodeInvalidSnapshot, "tag %q mangles to invalid identifier %q", tag, ident)
		}
		if other, dup := seenIdents[ident]; dup {
			return errors.New(errors.ErrCodeInvalidSnapshot, "tags %q and %q mangle to the same identifier %q", other, tag, ident)
		}
		seenIdents[ident] = tag
	}

	return nil
}
