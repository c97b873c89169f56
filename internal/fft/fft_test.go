package fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 1000: 1024, 1024: 1024, 8192: 8192}
	for in, want := range cases {
		assert.Equal(t, want, NextPow2(in), "NextPow2(%d)", in)
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	n := 64
	original := make([]complex128, n)
	for i := range original {
		original[i] = complex(math.Sin(float64(i)*0.3), math.Cos(float64(i)*0.1))
	}

	data := append([]complex128(nil), original...)
	Forward(data)
	Inverse(data)

	for i := range original {
		require.InDelta(t, real(original[i]), real(data[i]), 1e-9)
		require.InDelta(t, imag(original[i]), imag(data[i]), 1e-9)
	}
}

func TestForwardKnownImpulse(t *testing.T) {
	data := make([]complex128, 8)
	data[0] = 1
	Forward(data)
	for _, v := range data {
		assert.InDelta(t, 1.0, cmplx.Abs(v), 1e-9)
	}
}

func TestForwardDCComponent(t *testing.T) {
	data := make([]complex128, 8)
	for i := range data {
		data[i] = 1
	}
	Forward(data)
	assert.InDelta(t, 8.0, real(data[0]), 1e-9)
	for i := 1; i < len(data); i++ {
		assert.InDelta(t, 0.0, cmplx.Abs(data[i]), 1e-9)
	}
}
