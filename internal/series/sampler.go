package series

import "github.com/sentquant/analytics/internal/random"

// Sampler draws random-walk steps
type Sampler struct {
	src random.Source
}

// NewSampler creates a sampler over src
func NewSampler(src random.Source) *Sampler {
	return &Sampler{src: src}
}

// Next returns drift plus symmetric noise: drift + (u - 0.5) * volatility.
// Consumes exactly one draw.
func (s *Sampler) Next(drift, volatility float64) float64 {
	return drift + (s.src.Float64()-0.5)*volatility
}

// Uniform consumes one draw in [0, 1)
func (s *Sampler) Uniform() float64 {
	return s.src.Float64()
}
