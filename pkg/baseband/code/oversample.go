// Package code stretches a chip sequence onto a sample-rate grid, with a
// fractional starting chip offset, by nearest-neighbor (floor) mapping.
package code

// Oversample maps a chip sequence c (length L) onto n samples at sample
// rate fs, starting at fractional chip offset phi:
//
//	s[k] = c[floor(phi + k*chipRate/fs) mod L]
//
// No interpolation is performed. phi may be negative or fractional; the
// modulo is the Euclidean remainder so negative indices wrap correctly.
func Oversample(c []int8, fs, chipRateHz, phi float64, n int) []int8 {
	l := len(c)
	out := make([]int8, n)
	step := chipRateHz / fs
	for k := 0; k < n; k++ {
		idx := floorInt(phi + float64(k)*step)
		out[k] = c[floorMod(idx, l)]
	}
	return out
}

// OversampleFloat is identical to Oversample but widens the result to
// float64, matching the ±1 bipolar chips used directly in correlator
// accumulations without per-call conversion.
func OversampleFloat(c []int8, fs, chipRateHz, phi float64, n int) []float64 {
	l := len(c)
	out := make([]float64, n)
	step := chipRateHz / fs
	for k := 0; k < n; k++ {
		idx := floorInt(phi + float64(k)*step)
		out[k] = float64(c[floorMod(idx, l)])
	}
	return out
}

func floorInt(x float64) int {
	i := int(x)
	if x < 0 && float64(i) != x {
		i--
	}
	return i
}

func floorMod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
