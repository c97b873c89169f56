package acquisition

import (
	"math"

	"github.com/bramburn/gnssbaseband/pkg/baseband"
)

// estimateCN0 derives the carrier-to-noise density (dB-Hz) from the
// correlation map by masking out a neighborhood of the peak on both axes
// and averaging the remaining power as the noise floor.
//
// The Doppler-axis exclusion width reproduces source behavior literally:
// max(1, floor(2 / (ta * nDoppler/1000))) bins, an expression whose
// "approximately 2 Hz exclusion at default grid density" intent is
// documented in spec.md §9 but not otherwise motivated; it is not
// simplified here.
func estimateCN0(corrMap [][]float64, peakI, peakJ int, peak, ta, fs float64) float64 {
	nCode := len(corrMap)
	nDoppler := len(corrMap[0])

	codeWidth := int(math.Ceil(fs * baseband.CodePeriodSec / baseband.ChipsPerCode))
	dopplerWidth := int(math.Max(1, math.Floor(2/(ta*float64(nDoppler)/1000))))

	loCode := clamp(peakI-codeWidth, 0, nCode-1)
	hiCode := clamp(peakI+codeWidth, 0, nCode-1)
	loDoppler := clamp(peakJ-dopplerWidth, 0, nDoppler-1)
	hiDoppler := clamp(peakJ+dopplerWidth, 0, nDoppler-1)

	var sum float64
	var count int
	for i := 0; i < nCode; i++ {
		for j := 0; j < nDoppler; j++ {
			inCodeBand := i >= loCode && i <= hiCode && j == peakJ
			inDopplerBand := i == peakI && j >= loDoppler && j <= hiDoppler
			if inCodeBand || inDopplerBand {
				continue
			}
			sum += corrMap[i][j]
			count++
		}
	}

	noiseFloor := sum / float64(count)
	signalPower := peak - noiseFloor
	return 10 * math.Log10(signalPower/(noiseFloor*ta))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
