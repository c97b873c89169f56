// Package acquisition implements the FFT-accelerated code/Doppler search
// that locates a satellite's coarse carrier Doppler, code phase, and
// carrier-to-noise density before tracking begins.
package acquisition

import (
	"fmt"
	"math"

	"github.com/bramburn/gnssbaseband/internal/fft"
	"github.com/bramburn/gnssbaseband/pkg/baseband"
	"github.com/bramburn/gnssbaseband/pkg/baseband/code"
)

// Result is the outcome of a single acquisition call: refined Doppler,
// code offset (within one code period), and estimated C/N0.
type Result struct {
	DopplerHz   float64
	CodeOffsetS float64
	CN0DBHz     float64
}

// Map is the 2-D correlation power surface produced by Acquire, kept for
// callers that want to inspect it (e.g. plotting, which is out of scope
// here but the data is exposed regardless).
type Map struct {
	Power      [][]float64 // [codeBin][dopplerBin]
	DopplerHz  []float64
	SampleRate float64
}

// Acquire searches the joint code-delay / Doppler plane for a correlation
// peak. samples are real IF samples at sample rate fs, if0 is the
// intermediate frequency, prnCode is a length-1023 bipolar PRN, ta is the
// coherent integration time, and dopplerGrid is the ordered search
// frequencies (Hz); pass nil to use baseband.DefaultDopplerGrid(ta).
func Acquire(samples []float64, if0, fs float64, prnCode []int8, ta float64, dopplerGrid []float64) (Result, error) {
	if fs <= 0 || ta <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive fs or ta", baseband.ErrInvalidConfiguration)
	}
	if len(prnCode) == 0 {
		return Result{}, fmt.Errorf("%w: empty prn code", baseband.ErrInvalidConfiguration)
	}

	var err error
	if dopplerGrid == nil {
		dopplerGrid, err = baseband.DefaultDopplerGrid(ta)
		if err != nil {
			return Result{}, err
		}
	}
	if len(dopplerGrid) == 0 {
		return Result{}, fmt.Errorf("%w: empty doppler grid", baseband.ErrInvalidConfiguration)
	}

	nCode := int(math.Round(fs * baseband.CodePeriodSec))
	nAcq := int(math.Round(fs * ta))
	nFFT := fft.NextPow2(nAcq)

	if len(samples) < nFFT {
		return Result{}, fmt.Errorf("%w: have %d samples, need %d", baseband.ErrInsufficientSamples, len(samples), nFFT)
	}

	prnF := localPRNSpectrum(prnCode, fs, ta, nAcq, nFFT)

	dataAcq := make([]complex128, nFFT)
	for i := 0; i < nAcq; i++ {
		dataAcq[i] = complex(samples[i], 0)
	}

	corrMap := make([][]float64, nCode)
	for i := range corrMap {
		corrMap[i] = make([]float64, len(dopplerGrid))
	}

	buf := make([]complex128, nFFT)
	for j, fd := range dopplerGrid {
		for n := 0; n < nFFT; n++ {
			angle := -2 * math.Pi * (if0 + fd) * float64(n) / fs
			local := complex(math.Cos(angle), math.Sin(angle))
			buf[n] = dataAcq[n] * local
		}
		fft.Forward(buf)
		for n := 0; n < nFFT; n++ {
			buf[n] *= prnF[n]
		}
		fft.Inverse(buf)
		for i := 0; i < nCode; i++ {
			m := buf[i]
			corrMap[i][j] = real(m)*real(m) + imag(m)*imag(m)
		}
	}

	peakI, peakJ, peak := argmax2D(corrMap)
	doppler := dopplerGrid[peakJ]
	codeOffset := float64(peakI) / fs

	cn0 := estimateCN0(corrMap, peakI, peakJ, peak, ta, fs)

	return Result{DopplerHz: doppler, CodeOffsetS: codeOffset, CN0DBHz: cn0}, nil
}

// localPRNSpectrum tiles prnCode to cover ta, oversamples it to nAcq
// samples, zero-pads to nFFT, and returns the conjugated forward FFT used
// as the matched filter in the frequency domain.
func localPRNSpectrum(prnCode []int8, fs, ta float64, nAcq, nFFT int) []complex128 {
	nCodes := int(math.Ceil(ta / baseband.CodePeriodSec))
	tiled := make([]int8, 0, len(prnCode)*nCodes)
	for i := 0; i < nCodes; i++ {
		tiled = append(tiled, prnCode...)
	}

	os := code.OversampleFloat(tiled, fs, baseband.ChipRateHz, 0, nAcq)

	buf := make([]complex128, nFFT)
	for i, v := range os {
		buf[i] = complex(v, 0)
	}
	fft.Forward(buf)
	for i := range buf {
		buf[i] = complex(real(buf[i]), -imag(buf[i]))
	}
	return buf
}

func argmax2D(m [][]float64) (i, j int, peak float64) {
	peak = math.Inf(-1)
	for ii := range m {
		for jj, v := range m[ii] {
			if v > peak {
				peak, i, j = v, ii, jj
			}
		}
	}
	return
}
