package baseband

// Error is a simple string-constant error type, mirroring the teacher's
// pkg/caster.Error, used for the fixed error kinds of the baseband core.
type Error string

func (e Error) Error() string { return string(e) }

// Error kinds. Numeric degeneracies (log of a non-positive value, a zero
// DLL gain denominator) are not errors: they propagate as non-finite
// values in output arrays, per design.
const (
	// ErrInsufficientSamples is returned when an acquisition buffer is
	// smaller than the required FFT length, or tracking cannot complete
	// a single epoch.
	ErrInsufficientSamples Error = "baseband: insufficient samples"

	// ErrInvalidSatelliteID is returned when PRN generation is requested
	// for an id outside [1,32].
	ErrInvalidSatelliteID Error = "baseband: invalid satellite id"

	// ErrInvalidConfiguration is returned for a non-positive sample rate
	// or integration time, or an empty Doppler search grid.
	ErrInvalidConfiguration Error = "baseband: invalid configuration"

	// ErrSampleIO is returned when the underlying sample source cannot
	// deliver the requested sample count.
	ErrSampleIO Error = "baseband: sample i/o error"
)
