// Package seedrand provides the deterministic pseudo-random stream behind
// reproducible searches. A search id always derives the same seed, so a
// repeated search replays the exact itinerary choices; without an id the
// stream seeds from the clock.
package seedrand

import "time"

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

type Source struct {
	seed int64
}

// New derives a source from a search id using a char-code hash with shift
// mixing. An empty id falls back to wall-clock seeding.
func New(searchID string) *Source {
	if searchID == "" {
		return &Source{seed: time.Now().UnixNano() % lcgModulus}
	}
	var h int32
	for _, c := range searchID {
		h = (h << 5) - h + int32(c)
	}
	seed := int64(h)
	if seed < 0 {
		seed = -seed
	}
	return &Source{seed: seed}
}

// Next advances the linear-congruential recurrence and returns a value in
// [0, 1).
func (s *Source) Next() float64 {
	s.seed = (s.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.seed) / lcgModulus
}

// IntBetween returns an integer drawn uniformly from [min, max] inclusive.
func (s *Source) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(s.Next()*float64(max-min+1))
}

// Pick returns one element of choices. Empty input returns the zero value.
func Pick[T any](s *Source, choices []T) T {
	var zero T
	if len(choices) == 0 {
		return zero
	}
	return choices[int(s.Next()*float64(len(choices)))]
}
