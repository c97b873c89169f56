// Package baseband provides the shared constants, configuration, and
// error types for the GPS L1 C/A acquisition and tracking engines in its
// subpackages.
//
// Subpackages:
//
//   - prn: GPS L1 C/A Gold code generation.
//   - code: chip-sequence oversampling onto a sample-rate grid.
//   - acquisition: FFT code/Doppler search and C/N0 estimation.
//   - tracking: early/prompt/late correlator, PLL/DLL loop filters, and
//     the epoch-synchronous tracking driver.
//   - ingest: the sample-source contract (file loading, synthetic
//     signal generation, IF/baseband conversion) specified only as an
//     external collaborator boundary.
package baseband
