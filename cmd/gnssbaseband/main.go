// Command gnssbaseband drives acquisition and tracking over a captured
// IF sample file for a configured list of satellites. It is a thin
// out-of-scope-per-spec wrapper around pkg/baseband: the receiver core
// itself carries no notion of command-line arguments, file formats, or
// log sinks.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/bramburn/gnssbaseband/pkg/baseband"
	"github.com/bramburn/gnssbaseband/pkg/baseband/acquisition"
	"github.com/bramburn/gnssbaseband/pkg/baseband/ingest"
	"github.com/bramburn/gnssbaseband/pkg/baseband/prn"
	"github.com/bramburn/gnssbaseband/pkg/baseband/tracking"
)

// receiverConfig is the on-disk YAML shape for cmd/gnssbaseband; it
// carries only the fields a CLI run needs beyond pkg/baseband's own
// reference defaults.
type receiverConfig struct {
	Satellites   []int   `yaml:"satellites"`
	SampleRateHz float64 `yaml:"sample_rate_hz"`
	IFHz         float64 `yaml:"if_hz"`
	DurationSec  float64 `yaml:"duration_sec"`
}

func loadReceiverConfig(path string) (receiverConfig, error) {
	cfg := receiverConfig{
		Satellites:   []int{1, 7, 8, 11, 28, 30},
		SampleRateHz: baseband.DefaultSampleRateHz,
		IFHz:         baseband.DefaultIFHz,
		DurationSec:  1.0,
	}
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func main() {
	log := logrus.New()

	app := &cli.App{
		Name:  "gnssbaseband",
		Usage: "GPS L1 C/A acquisition and tracking over a captured IF sample file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "receiver configuration YAML file"},
			&cli.StringFlag{Name: "samples", Aliases: []string{"s"}, Usage: "path to a signed 16-bit LE IF sample file; synthetic data is used if omitted"},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("gnssbaseband failed")
	}
}

func run(c *cli.Context, log *logrus.Logger) error {
	cfg, err := loadReceiverConfig(c.String("config"))
	if err != nil {
		return err
	}

	var samples []float64
	if path := c.String("samples"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening samples: %w", err)
		}
		defer f.Close()
		samples, err = ingest.LoadFile(f, cfg.SampleRateHz, cfg.DurationSec)
		if err != nil {
			return err
		}
	} else {
		log.Warn("no --samples file given, generating synthetic data")
		samples = ingest.GenerateSynthetic(cfg.SampleRateHz, cfg.IFHz, cfg.DurationSec, rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	ta := baseband.DefaultCoherentIntegrationSec

	for _, id := range cfg.Satellites {
		satLog := log.WithField("prn", id)

		code, err := prn.Generate(id)
		if err != nil {
			satLog.WithError(err).Error("skipping satellite")
			continue
		}

		// Coarse acquisition: wide Doppler span at the default 1 ms
		// integration time, per original_source/main.py's coarse pass.
		coarseGrid, err := baseband.DopplerGrid(-40e3, -10e3, 1/(4*ta))
		if err != nil {
			return err
		}
		coarse, err := acquisition.Acquire(samples, cfg.IFHz, cfg.SampleRateHz, code, ta, coarseGrid)
		if err != nil {
			if errors.Is(err, baseband.ErrInsufficientSamples) {
				satLog.WithError(err).Error("not enough samples for coarse acquisition")
				continue
			}
			return err
		}
		satLog.WithFields(logrus.Fields{
			"doppler_hz": coarse.DopplerHz,
			"cn0_db_hz":  coarse.CN0DBHz,
		}).Info("coarse acquisition")

		// Fine acquisition: narrow Doppler span around the coarse
		// estimate at the longer, more selective fine integration time.
		fineTa := baseband.FineAcquisitionIntegrationSec
		fineGrid, err := baseband.DopplerGrid(coarse.DopplerHz-250, coarse.DopplerHz+250, 2)
		if err != nil {
			return err
		}
		fine, err := acquisition.Acquire(samples, cfg.IFHz, cfg.SampleRateHz, code, fineTa, fineGrid)
		if err != nil {
			if errors.Is(err, baseband.ErrInsufficientSamples) {
				satLog.WithError(err).Error("not enough samples for fine acquisition")
				continue
			}
			return err
		}
		satLog.WithField("doppler_hz", fine.DopplerHz).Info("fine acquisition")

		result, err := tracking.Track(samples, cfg.SampleRateHz, cfg.IFHz, baseband.L1FreqHz, ta,
			fine.DopplerHz, fine.CodeOffsetS, coarse.CN0DBHz, code, tracking.DefaultOptions())
		if err != nil {
			satLog.WithError(err).Error("tracking ended early")
			continue
		}

		satLog.WithField("epochs", len(result.DopplerHz)).Info("tracking complete")
	}

	return nil
}
