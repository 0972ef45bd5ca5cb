// Package seed generates and persists the synthetic dataset used to
// bootstrap development and demo environments: a self-consistent graph of
// users, providers, patients, and their dependent wellness records.
package seed

import (
	"fmt"
	"math/rand"
	"time"
)

// Rand is the single source of nondeterminism for data generation. The
// underlying generator is injected via seed so runs can be made reproducible
// in tests.
type Rand struct {
	rng *rand.Rand
}

// NewRand returns a randomness source. A seed of 0 picks a time-based seed.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniform integer in [min, max], inclusive of both
// bounds. It panics when min > max: an inverted range is caller misuse.
func (r *Rand) IntBetween(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("seed: inverted range [%d, %d]", min, max))
	}
	return min + r.rng.Intn(max-min+1)
}

// Float64 returns a uniform value in [0.0, 1.0).
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// Bool returns true with probability p.
func (r *Rand) Bool(p float64) bool {
	return r.rng.Float64() < p
}

// DateBetween returns a uniform timestamp in [start, end].
func (r *Rand) DateBetween(start, end time.Time) time.Time {
	if end.Before(start) {
		panic(fmt.Sprintf("seed: inverted date range [%s, %s]", start, end))
	}
	span := end.Sub(start)
	return start.Add(time.Duration(r.rng.Int63n(int64(span) + 1)))
}

// PastDate returns a uniform timestamp within the last daysAgo days.
func (r *Rand) PastDate(daysAgo int) time.Time {
	now := time.Now()
	return r.DateBetween(now.AddDate(0, 0, -daysAgo), now)
}

// ClockTime returns a random time of day in 24-hour HH:MM form with the hour
// in [06, 22].
func (r *Rand) ClockTime() string {
	return fmt.Sprintf("%02d:%02d", r.IntBetween(6, 22), r.IntBetween(0, 59))
}

// Choice returns one element of pool, uniformly. It panics on an empty pool.
func Choice[T any](r *Rand, pool []T) T {
	return pool[r.rng.Intn(len(pool))]
}

// Choices returns min(n, len(pool)) distinct elements of pool in random
// order, sampled without replacement via a full shuffle.
func Choices[T any](r *Rand, pool []T, n int) []T {
	shuffled := make([]T, len(pool))
	copy(shuffled, pool)
	r.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
