// Package random provides the injectable uniform source that drives generation.
package random

import (
	"math/rand"
	"time"
)

// Source returns the next uniform value in [0, 1), advancing by one per call
type Source interface {
	Float64() float64
}

// New creates a seeded source
// seed == 0 이면 시계 기반 시드 (production wiring), 그 외에는 재현 가능
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Uniform draws one value in [lo, hi)
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Fixed cycles through a fixed set of values. Used to pin scenarios in tests.
type Fixed struct {
	values []float64
	next   int
}

// NewFixed creates a Fixed source; with no values it always returns 0.5 (zero noise)
func NewFixed(values ...float64) *Fixed {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &Fixed{values: values}
}

// Float64 implements Source
func (f *Fixed) Float64() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

// Draws reports how many values have been consumed
func (f *Fixed) Draws() int {
	return f.next
}

// Counting wraps a Source and counts draws
type Counting struct {
	Source
	n int
}

// NewCounting wraps src
func NewCounting(src Source) *Counting {
	return &Counting{Source: src}
}

// Float64 implements Source
func (c *Counting) Float64() float64 {
	c.n++
	return c.Source.Float64()
}

// Draws reports how many values have been consumed
func (c *Counting) Draws() int {
	return c.n
}
