package baseband

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Reference constants (spec.md §6).
const (
	// ChipRateHz is the GPS L1 C/A chipping rate f_c.
	ChipRateHz = 1.023e6
	// CodePeriodSec is the C/A code period T_c.
	CodePeriodSec = 1e-3
	// ChipsPerCode is the number of chips in one C/A code period.
	ChipsPerCode = 1023
	// L1FreqHz is the GPS L1 carrier frequency f_L1.
	L1FreqHz = 154 * 10.23e6

	// DefaultSampleRateHz is the reference front-end sample rate.
	DefaultSampleRateHz = 40e6 / 7
	// DefaultIFHz is the reference intermediate frequency.
	DefaultIFHz = 1610476.19

	// DefaultCoherentIntegrationSec is the default acquisition/tracking
	// integration time.
	DefaultCoherentIntegrationSec = 1e-3
	// FineAcquisitionIntegrationSec is the integration time used for
	// fine acquisition.
	FineAcquisitionIntegrationSec = 10e-3

	// DefaultPLLBandwidthHz is the default carrier loop bandwidth B_n.
	DefaultPLLBandwidthHz = 10.0
	// DefaultDLLBandwidthHz is the default code loop bandwidth B_n.
	DefaultDLLBandwidthHz = 0.1

	// EarlyLateSpacingChips is τ_eml expressed in chips.
	EarlyLateSpacingChips = 0.5
)

// validate caches reflection info across calls, per validator's own
// recommendation (see de-bkg-gognss/pkg/site for the same pattern).
var validate = validator.New()

// Config holds the receiver-wide numeric configuration shared by
// acquisition and tracking. Zero-value Config is invalid; use
// DefaultConfig or populate and call Validate.
type Config struct {
	SampleRateHz float64 `validate:"required,gt=0"`
	IFHz         float64 `validate:"gte=0"`
	L1FreqHz     float64 `validate:"required,gt=0"`

	CoherentIntegrationSec float64 `validate:"required,gt=0"`
	FineIntegrationSec     float64 `validate:"required,gt=0"`

	PLLBandwidthHz float64 `validate:"required,gt=0"`
	DLLBandwidthHz float64 `validate:"required,gt=0"`

	EarlyLateSpacingChips float64 `validate:"required,gt=0"`
}

// DefaultConfig returns the reference configuration of spec.md §6.
func DefaultConfig() Config {
	return Config{
		SampleRateHz:           DefaultSampleRateHz,
		IFHz:                   DefaultIFHz,
		L1FreqHz:               L1FreqHz,
		CoherentIntegrationSec: DefaultCoherentIntegrationSec,
		FineIntegrationSec:     FineAcquisitionIntegrationSec,
		PLLBandwidthHz:         DefaultPLLBandwidthHz,
		DLLBandwidthHz:         DefaultDLLBandwidthHz,
		EarlyLateSpacingChips:  EarlyLateSpacingChips,
	}
}

// Validate checks c against its struct tags and reports any violation as
// ErrInvalidConfiguration wrapping the underlying validator error.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

// DopplerGrid returns an ordered slice of Doppler search frequencies (Hz)
// spanning [lo, hi] with the given step, matching spec.md's
// np.arange(lo, hi, step) semantics (half-open on the upper bound, except
// that a final point within half a step of hi is included to mirror the
// default grid described in §4.3).
func DopplerGrid(lo, hi, step float64) ([]float64, error) {
	if step <= 0 || hi <= lo {
		return nil, fmt.Errorf("%w: empty or malformed doppler grid", ErrInvalidConfiguration)
	}
	n := int((hi-lo)/step) + 1
	grid := make([]float64, 0, n)
	for f := lo; f <= hi+step/2; f += step {
		grid = append(grid, f)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty doppler grid", ErrInvalidConfiguration)
	}
	return grid, nil
}

// DefaultDopplerGrid returns the default acquisition search grid of
// spec.md §4.3: [-7000, +7000] Hz in steps of 1/(4*Ta).
func DefaultDopplerGrid(ta float64) ([]float64, error) {
	if ta <= 0 {
		return nil, fmt.Errorf("%w: non-positive integration time", ErrInvalidConfiguration)
	}
	return DopplerGrid(-7000, 7000, 1/(4*ta))
}
