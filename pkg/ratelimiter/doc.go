// Package ratelimiter throttles requests with a token bucket.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that would drive the
// bucket below zero is denied until the next refill.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, clientip.FromRequest))
package ratelimiter
