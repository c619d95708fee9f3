package vmath

import (
	"errors"
	"sort"
)

var (
	ErrBreakpointCount = errors.New("vmath: input and output ranges must have equal length >= 2")
	ErrBreakpointOrder = errors.New("vmath: input range must be strictly increasing")
)

// Interpolator maps a value through a piecewise-linear breakpoint table
// Inputs outside the table clamp to the nearest endpoint output
type Interpolator struct {
	in  []float64
	out []float64
}

// NewInterpolator builds an interpolator from matching input/output ranges
func NewInterpolator(in, out []float64) (*Interpolator, error) {
	if len(in) < 2 || len(in) != len(out) {
		return nil, ErrBreakpointCount
	}
	for i := 1; i < len(in); i++ {
		if in[i] <= in[i-1] {
			return nil, ErrBreakpointOrder
		}
	}
	return &Interpolator{
		in:  append([]float64(nil), in...),
		out: append([]float64(nil), out...),
	}, nil
}

// MustInterpolator panics on an invalid table, for package-level tables
func MustInterpolator(in, out []float64) *Interpolator {
	ip, err := NewInterpolator(in, out)
	if err != nil {
		panic(err)
	}
	return ip
}

// At returns the interpolated output for x
func (ip *Interpolator) At(x float64) float64 {
	last := len(ip.in) - 1
	if x <= ip.in[0] {
		return ip.out[0]
	}
	if x >= ip.in[last] {
		return ip.out[last]
	}

	// First breakpoint >= x, segment is [i-1, i]
	i := sort.SearchFloat64s(ip.in, x)
	if ip.in[i] == x {
		return ip.out[i]
	}
	x0, x1 := ip.in[i-1], ip.in[i]
	t := (x - x0) / (x1 - x0)
	return Lerp(ip.out[i-1], ip.out[i], t)
}
