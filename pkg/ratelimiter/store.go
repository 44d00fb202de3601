package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Store keeps bucket state.
type Store interface {
	// ConsumeTokens refills the bucket, takes tokens and returns what is left.
	// A negative remaining count means the request must be denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

const staleAfter = time.Hour

type bucketState struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore is a process-local Store. Buckets idle for an hour are dropped
// by a background sweep.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucketState
	now     func() time.Time

	sweepInterval time.Duration
	stop          chan struct{}
	closeOnce     sync.Once
}

type MemoryStoreOption func(*MemoryStore)

// WithSweepInterval sets how often idle buckets are dropped. Zero disables the sweep.
func WithSweepInterval(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.sweepInterval = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		buckets:       make(map[string]*bucketState),
		now:           time.Now,
		sweepInterval: 5 * time.Minute,
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sweepInterval > 0 {
		go s.sweep()
	}
	return s
}

func (s *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucketState{tokens: config.Capacity, lastRefill: now}
		s.buckets[key] = b
	}

	// capped so a long idle period cannot overflow
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/config.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*config.RefillRate, config.Capacity)
		b.lastRefill = now
	}

	// a denied request does not drain the bucket
	remaining := b.tokens - tokens
	if remaining >= 0 {
		b.tokens = remaining
	}
	b.lastAccess = now

	return remaining, b.lastRefill.Add(config.RefillInterval), nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

// Close stops the sweep. It is safe to call more than once.
func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.dropIdle()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) dropIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, b := range s.buckets {
		if now.Sub(b.lastAccess) > staleAfter {
			delete(s.buckets, key)
		}
	}
}
