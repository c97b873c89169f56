package tracking

import (
	"math"

	"github.com/bramburn/gnssbaseband/pkg/baseband"
	"github.com/bramburn/gnssbaseband/pkg/baseband/code"
)

// Correlate computes the epoch-synchronous early/prompt/late complex
// correlations of spec.md §4.4: samples against a local carrier replica
// times three code replicas offset by ±tauEML around the current code
// phase ts.
//
// t0 is the wall-time of samples[0], fif the intermediate frequency, fs
// the sample rate, ta this epoch's (possibly Doppler-adjusted)
// integration time, ts the current code phase (s), fd the current
// Doppler (Hz), theta the current carrier phase (rad), tauEML the
// early-late tap spacing (s), and prnCode the satellite's length-1023
// bipolar PRN.
func Correlate(samples []float64, t0, fif, fs, ta, ts, fd, theta, tauEML float64, prnCode []int8) (sp, se, sl complex128) {
	n := len(samples)
	chipInterval := baseband.CodePeriodSec / float64(len(prnCode))

	nCodes := int(math.Ceil(ta / baseband.CodePeriodSec))
	tiled := make([]int8, 0, len(prnCode)*nCodes)
	for i := 0; i < nCodes; i++ {
		tiled = append(tiled, prnCode...)
	}

	phiP := (t0 - ts) / chipInterval
	phiE := (t0 - (ts - tauEML)) / chipInterval
	phiL := (t0 - (ts + tauEML)) / chipInterval

	codeP := code.OversampleFloat(tiled, fs, baseband.ChipRateHz, phiP, n)
	codeE := code.OversampleFloat(tiled, fs, baseband.ChipRateHz, phiE, n)
	codeL := code.OversampleFloat(tiled, fs, baseband.ChipRateHz, phiL, n)

	for k := 0; k < n; k++ {
		tk := t0 + float64(k)/fs
		angle := 2*math.Pi*(fif*tk+fd*(tk-t0)) + theta
		local := complex(math.Cos(-angle), math.Sin(-angle))
		sample := complex(samples[k], 0) * local

		sp += sample * complex(codeP[k], 0)
		se += sample * complex(codeE[k], 0)
		sl += sample * complex(codeL[k], 0)
	}
	return sp, se, sl
}
