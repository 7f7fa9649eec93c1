// Package trove exposes the PyPI trove classifier catalog as a closed Go
// enumeration with exact bidirectional string conversion.
//
// Trove classifiers are the metadata tags attached to Python package
// distributions (PEP 301), e.g. "Development Status :: 5 - Production/Stable"
// or "Programming Language :: Python :: 3 :: Only". The canonical set is
// published by pypa/trove-classifiers; this package encodes one versioned
// snapshot of it, identified by [CatalogVersion].
//
// # Usage
//
//	c, err := trove.Parse("Programming Language :: Rust")
//	if err != nil {
//	    // not a classifier known to pypi.org
//	}
//	fmt.Println(c)            // Programming Language :: Rust
//	for s := range c.Segments() {
//	    fmt.Println(s)        // Programming Language, then Rust
//	}
//
// Matching is exact: case-sensitive, whitespace-sensitive, no trimming.
// "programming language :: rust" is not a classifier.
//
// The catalog is immutable and built into the binary; every function in this
// package is safe for concurrent use without coordination. Refreshing the
// catalog against upstream is an offline step: run trovegen generate and
// rebuild.
package trove
