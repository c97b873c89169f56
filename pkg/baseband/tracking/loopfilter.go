package tracking

import "math"

// PLLState is the 3rd-order carrier loop state-space filter of spec.md
// §4.5: discrete state-transition matrix A (2x2), input vector B, output
// vector C, feed-through scalar D, and the internal state vector X. It is
// mutated exclusively by Update.
type PLLState struct {
	A [2][2]float64
	B [2]float64
	C [2]float64
	D float64
	X [2]float64

	Ip, Qp float64 // most recent prompt correlator output
}

// NewPLLState builds the 3rd-order loop filter with natural gains derived
// from bandwidth bn over integration step ta, and initializes the state
// vector from the acquisition Doppler estimate fdInit (Hz).
func NewPLLState(bn, ta, fdInit float64) PLLState {
	a := 1.2 * bn
	// a^2/2 is computed by the source as an intermediate natural-frequency
	// gain but never folds into A/B/C/D; K is the only gain that matters.
	k := 2 * a

	x0 := 2 * math.Pi * fdInit
	return PLLState{
		A: [2][2]float64{{1, ta}, {0, 1}},
		B: [2]float64{k*ta + k*ta*ta/2, k * ta},
		C: [2]float64{1, 0},
		D: k,
		X: [2]float64{x0, x0},
	}
}

// Update runs one PLL epoch given the epoch's prompt correlator output.
// It returns vk, the loop's angular velocity output (rad/s); the caller
// derives the new Doppler estimate as vk/(2*pi).
func (s *PLLState) Update(ip, qp float64) (vk float64) {
	s.Ip, s.Qp = ip, qp

	e := math.Atan2(qp, ip)

	vk = s.C[0]*s.X[0] + s.C[1]*s.X[1] + s.D*e

	x0 := s.A[0][0]*s.X[0] + s.A[0][1]*s.X[1] + s.B[0]*e
	x1 := s.A[1][0]*s.X[0] + s.A[1][1]*s.X[1] + s.B[1]*e
	s.X[0], s.X[1] = x0, x1

	return vk
}

// DLLState is the first-order, noise-normalized code loop of spec.md
// §4.5. SigmaIQ is frozen at construction from the acquisition C/N0
// estimate and held constant thereafter (source behavior; adaptive
// re-estimation is an open question left unresolved, see DESIGN.md).
type DLLState struct {
	BandwidthHz float64
	SigmaIQ     float64
	TauEMLSec   float64
}

// NewDLLState builds the DLL state, deriving SigmaIQ from the
// acquisition-time C/N0 estimate (dB-Hz) and integration time ta.
func NewDLLState(bandwidthHz, cn0InitDBHz, ta, tauEMLSec float64) DLLState {
	sigmaIQ := math.Pow(10, cn0InitDBHz/20) / math.Sqrt(2*ta)
	return DLLState{BandwidthHz: bandwidthHz, SigmaIQ: sigmaIQ, TauEMLSec: tauEMLSec}
}

// CodeRateCorrection computes v_code given the epoch's early/prompt/late
// correlator outputs, the current Doppler fd (Hz), the PLL's angular
// velocity vk for this epoch (used to carrier-aid the code loop), and
// the L1 carrier frequency fL1.
func (d DLLState) CodeRateCorrection(sp, se, sl complex128, fd, vk, fL1 float64) float64 {
	p := real(sp)*real(sp) + imag(sp)*imag(sp)
	ep := real(se)*real(sp) + imag(se)*imag(sp)
	lp := real(sl)*real(sp) + imag(sl)*imag(sp)

	tcEff := d.TauEMLSec * (1 - fd/fL1)
	gain := (tcEff / 2) / (p - 2*d.SigmaIQ*d.SigmaIQ)
	epsilon := gain * (ep - lp)

	return 4*d.BandwidthHz*epsilon + vk/(2*math.Pi*fL1)
}
