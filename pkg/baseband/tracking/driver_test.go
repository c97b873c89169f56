package tracking

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramburn/gnssbaseband/pkg/baseband"
	"github.com/bramburn/gnssbaseband/pkg/baseband/code"
	"github.com/bramburn/gnssbaseband/pkg/baseband/prn"
)

func synthesize(prnCode []int8, fs, fif, fd0, ts0 float64, nSamples int, snrLinear float64, rng *rand.Rand) []float64 {
	nCodes := int(math.Ceil(float64(nSamples)/fs/baseband.CodePeriodSec)) + 2
	tiled := make([]int8, 0, len(prnCode)*nCodes)
	for i := 0; i < nCodes; i++ {
		tiled = append(tiled, prnCode...)
	}
	chipInterval := baseband.CodePeriodSec / float64(len(prnCode))
	phi := -ts0 / chipInterval
	chips := code.OversampleFloat(tiled, fs, baseband.ChipRateHz, phi, nSamples)

	samples := make([]float64, nSamples)
	amp := math.Sqrt(2 * snrLinear)
	for n := 0; n < nSamples; n++ {
		tn := float64(n) / fs
		samples[n] = amp*chips[n]*math.Cos(2*math.Pi*(fif+fd0)*tn) + rng.NormFloat64()
	}
	return samples
}

func TestTrackEmitsEqualLengthArrays(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	prnCode, err := prn.Generate(1)
	require.NoError(t, err)

	fs := baseband.DefaultSampleRateHz
	ta := baseband.DefaultCoherentIntegrationSec
	fif := baseband.DefaultIFHz
	fL1 := baseband.L1FreqHz

	duration := 0.05
	n := int(fs * duration)
	cn0Linear := math.Pow(10, 48.0/10)
	samples := synthesize(prnCode, fs, fif, 1000, 0, n, cn0Linear*ta, rng)

	result, err := Track(samples, fs, fif, fL1, ta, 1000, 0, 48.0, prnCode, DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, result.DopplerHz)

	assert.Len(t, result.IPrompt, len(result.QPrompt))
	assert.Len(t, result.IPrompt, len(result.DopplerHz))
	assert.Len(t, result.IPrompt, len(result.CodePhaseS))
	assert.Len(t, result.IPrompt, len(result.CN0DBHz))
}

func TestTrackConvergesTowardTrueDoppler(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	prnCode, err := prn.Generate(1)
	require.NoError(t, err)

	fs := baseband.DefaultSampleRateHz
	ta := baseband.DefaultCoherentIntegrationSec
	fif := baseband.DefaultIFHz
	fL1 := baseband.L1FreqHz

	const trueDoppler = 1500.0
	const initDopplerErr = 40.0 // start the loop slightly off true Doppler

	duration := 0.1
	n := int(fs * duration)
	cn0Linear := math.Pow(10, 48.0/10)
	samples := synthesize(prnCode, fs, fif, trueDoppler, 0, n, cn0Linear*ta, rng)

	result, err := Track(samples, fs, fif, fL1, ta, trueDoppler+initDopplerErr, 0, 48.0, prnCode, DefaultOptions())
	require.NoError(t, err)
	require.Greater(t, len(result.DopplerHz), 20)

	errEarly := math.Abs(result.DopplerHz[5] - trueDoppler)
	errLate := math.Abs(result.DopplerHz[len(result.DopplerHz)-1] - trueDoppler)

	assert.Less(t, errLate, errEarly)
}
