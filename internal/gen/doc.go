// Package gen turns an upstream classifier snapshot into the generated Go
// table consumed by pkg/trove.
//
// The pipeline is Validate then Emit: a snapshot must uphold the catalog's
// invariants (unique tags, unique identifiers, well-formed segments) before
// any source is written, so a bad upstream state can never replace a good
// table. Emission is deterministic — the same snapshot always produces
// byte-identical output.
package gen
