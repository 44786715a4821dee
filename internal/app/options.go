package app

import (
	"math/rand"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Option tweaks service construction, mostly for deterministic tests.
type Option func(*options)

type options struct {
	now        func() time.Time
	rnd        *rand.Rand
	bcryptCost int
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithSeed makes lifeline and question selection reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rnd = newRand(seed) }
}

// WithBcryptCost lowers hashing cost in tests.
func WithBcryptCost(cost int) Option {
	return func(o *options) { o.bcryptCost = cost }
}

func buildOptions(opts []Option) options {
	o := options{
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rnd == nil {
		o.rnd = newRand(o.now().UnixNano())
	}
	return o
}

// lockedSource lets one *rand.Rand be shared between request goroutines.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func newRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed)})
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}
