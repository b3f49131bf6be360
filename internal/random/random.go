package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/sylk/internal/random Source

// Source is the randomness shared by every game
type Source interface {
	// Float64 returns a uniformly distributed value in [0, 1)
	Float64() float64
}

const goldenRatio64 = 0x9e3779b97f4a7c15

// Rand is a seeded Source safe for use from timer callbacks and handlers at once
type Rand struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for reproducible draws
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	u := uint64(seed)
	return &Rand{
		random: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64))),
	}
}

// Float64 returns a uniformly distributed value in [0, 1)
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Index returns floor(src.Float64() * n), kept inside [0, n)
func Index(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Chance reports whether a single draw lands below p
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
