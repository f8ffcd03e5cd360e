// Package ratelimiter implements token bucket rate limiting for the
// playground HTTP API.
//
// A Bucket holds the limits and delegates token accounting to a Store.
// MemoryStore keeps one bucket per key in process memory and evicts idle
// keys in the background. Middleware applies a Bucket to HTTP requests keyed
// by a KeyFunc, usually the client IP:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	r.Use(ratelimiter.Middleware(bucket, keyFunc, nil))
package ratelimiter
