// Package ingest implements the external I/O stubs of spec.md §6: the
// sample-source contract (binary signed 16-bit little-endian IF samples,
// widened to floating point), a synthetic-signal generator for testing,
// and the IF/baseband I-Q conversion helpers carried over from
// original_source/utils.py. Navigation-message decoding, PVT, and
// real-time streaming ingestion remain out of scope.
package ingest

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/bramburn/gnssbaseband/pkg/baseband"
)

// roundDown16 rounds n down to the nearest multiple of 16, matching the
// source loader's sample-count rounding.
func roundDown16(n int) int {
	return (n / 16) * 16
}

// LoadFile reads up to duration seconds of signed 16-bit little-endian IF
// samples from r at sample rate fs, rounds the requested count down to a
// multiple of 16, and widens the result to float64. It returns
// ErrSampleIO if fewer samples are available than requested.
func LoadFile(r io.Reader, fs, duration float64) ([]float64, error) {
	if fs <= 0 || duration <= 0 {
		return nil, fmt.Errorf("%w: non-positive fs or duration", baseband.ErrInvalidConfiguration)
	}

	n := roundDown16(int(fs * duration))
	raw := make([]int16, n)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", baseband.ErrSampleIO, err)
	}

	samples := make([]float64, n)
	for i, v := range raw {
		samples[i] = float64(v)
	}
	return samples, nil
}

// GenerateSynthetic produces duration seconds of synthetic IF samples at
// sample rate fs and intermediate frequency fif: a weak unmodulated
// carrier plus Gaussian noise, matching
// original_source/utils.py:generate_synthetic_data. Intended for testing
// the acquisition/tracking pipeline without a captured front-end file.
func GenerateSynthetic(fs, fif, duration float64, rng *rand.Rand) []float64 {
	n := int(fs * duration)
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / fs
		noise := rng.NormFloat64() * 100
		signal := 10 * math.Cos(2*math.Pi*fif*t)
		samples[i] = signal + noise
	}
	return samples
}

// IFToBaseband down-converts real IF samples x at sample rate fs and
// intermediate frequency fif into decimated-by-2 baseband I/Q, per
// original_source/utils.py:if2iq.
func IFToBaseband(x []float64, fs, fif float64) (i, q []float64) {
	n := len(x)
	iFull := make([]float64, n)
	qFull := make([]float64, n)
	for k := 0; k < n; k++ {
		t := float64(k) / fs
		iFull[k] = x[k] * math.Sqrt2 * math.Cos(2*math.Pi*fif*t)
		qFull[k] = -x[k] * math.Sqrt2 * math.Sin(2*math.Pi*fif*t)
	}

	i = make([]float64, 0, n/2)
	q = make([]float64, 0, n/2)
	for k := 0; k < n; k += 2 {
		i = append(i, iFull[k])
		q = append(q, qFull[k])
	}
	return i, q
}

// BasebandToIF is the inverse of IFToBaseband: it interpolates baseband
// I/Q by 2 and re-modulates onto an IF carrier at fif, with the baseband
// sample rate fsBaseband, per original_source/utils.py:iq2if.
func BasebandToIF(i, q []float64, fsBaseband, fif float64) []float64 {
	n := len(i)
	fs := 2 * fsBaseband

	x := make([]float64, 2*n)
	for k := 0; k < 2*n; k++ {
		t := float64(k) / fs
		iInterp := i[k/2]
		qInterp := q[k/2]
		x[k] = iInterp*math.Sqrt2*math.Cos(2*math.Pi*fif*t) - qInterp*math.Sqrt2*math.Sin(2*math.Pi*fif*t)
	}
	return x
}
