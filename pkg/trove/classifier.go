package trove

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Delimiter separates the hierarchical segments of a classifier tag.
// It is reserved: no segment text ever contains it.
const Delimiter = " :: "

// ErrUnknownTag is returned by [Parse] when the input string matches no
// classifier in the catalog. It is the only failure mode in this package.
//
// Use errors.Is to detect it:
//
//	if _, err := trove.Parse(s); errors.Is(err, trove.ErrUnknownTag) {
//	    // s is not a recognized classifier
//	}
var ErrUnknownTag = errors.New("unknown classifier tag")

// UnknownTagError reports the string that failed to parse. It wraps
// [ErrUnknownTag] for errors.Is checks.
type UnknownTagError struct {
	Tag string // the input that matched no classifier
}

// Error implements the error interface.
func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown classifier tag %q", e.Tag)
}

// Unwrap returns ErrUnknownTag so errors.Is(err, ErrUnknownTag) holds.
func (e *UnknownTagError) Unwrap() error { return ErrUnknownTag }

// Classifier is one entry of the trove classifier catalog.
//
// The value space is closed: the exported constants in this package are the
// only valid values, one per tag known to the upstream snapshot. Values
// manufactured by casting arbitrary integers are out of range and report
// false from [Classifier.IsValid].
type Classifier int

// byTag is the reverse lookup, derived from the authoritative tags table so
// the two directions cannot drift.
var byTag = func() map[string]Classifier {
	m := make(map[string]Classifier, len(tags))
	for i, t := range tags {
		m[t] = Classifier(i)
	}
	return m
}()

// Parse returns the Classifier whose canonical tag is exactly s.
//
// The lookup is case-sensitive and whitespace-sensitive: no trimming, no
// normalization, no partial or fuzzy matching. If s matches no entry, Parse
// returns a *[UnknownTagError] wrapping [ErrUnknownTag].
func Parse(s string) (Classifier, error) {
	c, ok := byTag[s]
	if !ok {
		return 0, &UnknownTagError{Tag: s}
	}
	return c, nil
}

// String returns the canonical tag for c, byte-for-byte identical to the
// string it parses from. For out-of-range values it returns the empty
// string.
func (c Classifier) String() string {
	if !c.IsValid() {
		return ""
	}
	return tags[c]
}

// IsValid reports whether c is one of the catalog's constants. All values
// obtained from [Parse] or [All] are valid; only casting can produce an
// invalid one.
func (c Classifier) IsValid() bool {
	return c >= 0 && int(c) < len(tags)
}

// Segments returns the hierarchical components of c's tag, in order, as a
// lazy sequence. The sequence is restartable: it may be ranged over any
// number of times, each pass yielding the same segments.
//
// Joining the segments with [Delimiter] reproduces c.String() exactly.
func (c Classifier) Segments() iter.Seq[string] {
	// strings.SplitSeq is single-use; split afresh on every range so the
	// returned sequence really is restartable.
	return func(yield func(string) bool) {
		for s := range strings.SplitSeq(c.String(), Delimiter) {
			if !yield(s) {
				return
			}
		}
	}
}

// All returns every Classifier in the catalog in canonical tag order.
func All() iter.Seq[Classifier] {
	return func(yield func(Classifier) bool) {
		for i := range tags {
			if !yield(Classifier(i)) {
				return
			}
		}
	}
}

// Count returns the number of classifiers in the catalog.
func Count() int { return len(tags) }
