// Package upstream fetches the authoritative trove classifier catalog from
// PyPI.
//
// Two endpoints make up the source of truth:
//
//   - the legacy list endpoint (https://pypi.org/pypi?%3Aaction=list_classifiers),
//     which returns every valid classifier as plain text, one per line
//   - the JSON API for the pypa/trove-classifiers package, whose version
//     string labels the snapshot
//
// The client caches responses on disk (see [httputil.Cache]) and retries
// transient failures with exponential backoff. It is used only by the
// offline trovegen tool; the runtime catalog in pkg/trove never touches the
// network.
package upstream
