// Package tracking implements the epoch-synchronous correlator, PLL/DLL
// loop filters, and the tracking driver that continuously follows an
// acquired GPS L1 C/A signal to completion of the sample buffer.
package tracking

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bramburn/gnssbaseband/pkg/baseband"
)

// Result holds the five equal-length arrays emitted by Track, one entry
// per coherent integration epoch.
type Result struct {
	IPrompt    []float64
	QPrompt    []float64
	DopplerHz  []float64
	CodePhaseS []float64
	CN0DBHz    []float64
}

// Options configures a Track call beyond the acquisition-derived initial
// state.
type Options struct {
	PLLBandwidthHz        float64
	DLLBandwidthHz        float64
	EarlyLateSpacingChips float64
	Log                   *logrus.Entry // optional; defaults to an entry on logrus's standard logger
}

// DefaultOptions returns the reference PLL/DLL bandwidths of spec.md §6.
func DefaultOptions() Options {
	return Options{
		PLLBandwidthHz:        baseband.DefaultPLLBandwidthHz,
		DLLBandwidthHz:        baseband.DefaultDLLBandwidthHz,
		EarlyLateSpacingChips: baseband.EarlyLateSpacingChips,
	}
}

// Track runs the tracking driver of spec.md §4.6 from the given
// acquisition-derived initial state (fdInit Hz, tsInit s, cn0InitDBHz
// dB-Hz) against samples sampled at fs with IF fif, L1 frequency fL1, and
// nominal coherent integration time ta, for as long as the next epoch's
// samples end strictly before the end of the buffer.
func Track(samples []float64, fs, fif, fL1, ta, fdInit, tsInit, cn0InitDBHz float64, prnCode []int8, opts Options) (Result, error) {
	if fs <= 0 || ta <= 0 || fL1 <= 0 {
		return Result{}, fmt.Errorf("%w: non-positive fs, ta, or fL1", baseband.ErrInvalidConfiguration)
	}

	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	runID := uuid.New()
	log = log.WithField("run_id", runID.String())

	tauEML := opts.EarlyLateSpacingChips * (baseband.CodePeriodSec / float64(len(prnCode)))

	pll := NewPLLState(opts.PLLBandwidthHz, ta, fdInit)
	dll := NewDLLState(opts.DLLBandwidthHz, cn0InitDBHz, ta, tauEML)

	ts := tsInit
	theta := 0.0
	fd := fdInit
	idx := int(ts * fs)

	var res Result

	for {
		taAdj := ta / (1 + fd/fL1)
		nAcqAdj := int(fs * taAdj)

		if idx+nAcqAdj >= len(samples) {
			break
		}
		if nAcqAdj <= 0 {
			break
		}

		seg := samples[idx : idx+nAcqAdj]
		t0 := float64(idx) / fs

		sp, se, sl := Correlate(seg, t0, fif, fs, taAdj, ts, fd, theta, tauEML, prnCode)

		ip, qp := real(sp), imag(sp)
		res.IPrompt = append(res.IPrompt, ip)
		res.QPrompt = append(res.QPrompt, qp)

		vk := pll.Update(ip, qp)
		fdNew := vk / (2 * math.Pi)

		vCode := dll.CodeRateCorrection(sp, se, sl, fd, vk, fL1)

		res.DopplerHz = append(res.DopplerHz, fdNew)
		res.CodePhaseS = append(res.CodePhaseS, ts)

		power := ip*ip + qp*qp
		cn0 := 10 * math.Log10(power/(2*dll.SigmaIQ*dll.SigmaIQ*ta))
		res.CN0DBHz = append(res.CN0DBHz, cn0)

		dt := float64(nAcqAdj) / fs
		theta += dt * vk
		ts += (1 - vCode) * baseband.CodePeriodSec
		fd = fdNew
		idx += nAcqAdj

		if len(res.DopplerHz)%1000 == 0 {
			log.WithFields(logrus.Fields{
				"epoch":      len(res.DopplerHz),
				"doppler_hz": fdNew,
				"cn0_db_hz":  cn0,
			}).Debug("tracking progress")
		}
	}

	if len(res.DopplerHz) == 0 {
		return Result{}, fmt.Errorf("%w: could not complete a single tracking epoch", baseband.ErrInsufficientSamples)
	}

	log.WithField("epochs", len(res.DopplerHz)).Info("tracking complete")
	return res, nil
}
