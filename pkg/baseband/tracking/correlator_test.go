package tracking

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramburn/gnssbaseband/pkg/baseband"
	"github.com/bramburn/gnssbaseband/pkg/baseband/code"
	"github.com/bramburn/gnssbaseband/pkg/baseband/prn"
)

func TestCorrelatePromptPeaksAtAlignedCodePhase(t *testing.T) {
	prnCode, err := prn.Generate(1)
	require.NoError(t, err)

	fs := baseband.DefaultSampleRateHz
	ta := baseband.DefaultCoherentIntegrationSec
	n := int(fs * ta)

	tauEML := 0.5 * (baseband.CodePeriodSec / float64(len(prnCode)))

	// Build samples exactly matching the prompt code replica at ts=0,
	// with no carrier offset, so sp should peak relative to a misaligned
	// code phase.
	chipInterval := baseband.CodePeriodSec / float64(len(prnCode))
	phi := 0.0
	samples := code.OversampleFloat(prnCode, fs, baseband.ChipRateHz, phi, n)

	spAligned, _, _ := Correlate(samples, 0, 0, fs, ta, 0, 0, 0, tauEML, prnCode)
	spMisaligned, _, _ := Correlate(samples, 0, 0, fs, ta, 100*chipInterval, 0, 0, tauEML, prnCode)

	assert.Greater(t, cmplx.Abs(spAligned), cmplx.Abs(spMisaligned))
}
