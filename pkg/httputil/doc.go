// Package httputil provides the HTTP infrastructure used by the upstream
// catalog client: file-based response caching and retry with backoff.
//
// # Caching
//
// [Cache] stores fetched upstream responses in the filesystem
// (~/.cache/trovegen/ by default) with a configurable TTL, so repeated
// generator runs don't hammer pypi.org:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, err := cache.Get("classifiers", &list)
//	if !ok {
//	    list = fetchFromUpstream()
//	    cache.Set("classifiers", list)
//	}
//
// Keys should be namespaced per endpoint via [Cache.Namespace].
//
// # Retry
//
// [Retry] re-runs an operation on transient failures (network errors, 5xx
// responses) with exponential backoff. Only errors wrapped in
// [RetryableError] trigger another attempt; everything else fails fast.
//
// The cache directory can be cleared with `trovegen cache clear`.
package httputil
