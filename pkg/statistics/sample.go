package statistics

import (
	"math"

	"github.com/shopspring/decimal"
)

// Sample accumulates every value it is given. Unlike a moving window, nothing is ever evicted, so the
// statistics always describe the whole series.
type Sample struct {
	n      int64
	values []decimal.Decimal
	sum    decimal.Decimal
	max    decimal.Decimal
}

func NewSample(capacity int) *Sample {
	return &Sample{
		values: make([]decimal.Decimal, 0, capacity),
		sum:    decimal.Zero,
		max:    decimal.Zero,
	}
}

// NewSampleFromFloats returns a Sample holding the given values.
func NewSampleFromFloats(values ...float64) *Sample {
	s := NewSample(len(values))
	for _, val := range values {
		s.AddFloat(val)
	}
	return s
}

func (s *Sample) Add(val decimal.Decimal) {
	if s.n == 0 || val.GreaterThan(s.max) {
		s.max = val
	}

	s.sum = s.sum.Add(val)
	s.values = append(s.values, val)
	s.n += 1
}

func (s *Sample) AddFloat(val float64) {
	s.Add(decimal.NewFromFloat(val))
}

func (s *Sample) AddInt(val int64) {
	s.Add(decimal.NewFromInt(val))
}

func (s *Sample) N() int64 {
	return s.n
}

func (s *Sample) Sum() decimal.Decimal {
	return s.sum
}

// Max returns the largest value added so far, or zero for an empty sample.
func (s *Sample) Max() decimal.Decimal {
	return s.max
}

// Avg returns the arithmetic mean. The mean of an empty sample is zero.
func (s *Sample) Avg() decimal.Decimal {
	if s.n == 0 {
		return decimal.Zero
	}
	return s.sum.Div(decimal.NewFromInt(s.n))
}

// PopulationVariance computes and returns the population variance of the sample.
func (s *Sample) PopulationVariance() decimal.Decimal {
	if s.n == 0 {
		return decimal.Zero
	}
	return s.squaredDeviations().Div(decimal.NewFromInt(s.n))
}

// SampleVariance computes and returns the unbiased (n-1) variance of the sample.
// Fewer than two values yield zero.
func (s *Sample) SampleVariance() decimal.Decimal {
	if s.n < 2 {
		return decimal.Zero
	}
	return s.squaredDeviations().Div(decimal.NewFromInt(s.n - 1))
}

func (s *Sample) PopulationStandardDeviation() float64 {
	return math.Sqrt(s.PopulationVariance().InexactFloat64())
}

func (s *Sample) SampleStandardDeviation() float64 {
	return math.Sqrt(s.SampleVariance().InexactFloat64())
}

func (s *Sample) squaredDeviations() decimal.Decimal {
	avg := s.Avg()
	total := decimal.Zero

	for _, n := range s.values {
		diff := n.Sub(avg)
		total = total.Add(diff.Mul(diff))
	}

	return total
}
