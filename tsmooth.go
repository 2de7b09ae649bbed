// Package tsmooth provides time-series smoothing: moving-average and
// exponential kernels applied to strictly ordered (timestamp, value) series,
// with tabular and compressed binary export of the results.
//
// # Core Features
//
//   - Append-only series with strictly increasing timestamps
//   - Pure, stateless smoothing kernels (moving average, weighted moving
//     average, single and double exponential)
//   - Engine orchestration with optional result memoization keyed by
//     xxHash64 series fingerprints
//   - CSV/TSV and columnar binary export with optional compression
//     (None, Zstd, S2, LZ4) and delta-of-delta timestamp encoding
//   - Regression-style evaluation (R², MAE, RMSE, MAPE, ...) of smoothed
//     output against a reference series
//
// # Basic Usage
//
// Building a series and smoothing it:
//
//	import "github.com/arloliu/tsmooth"
//
//	src := tsmooth.NewSeries("cpu.usage", 10)
//	start := time.Now()
//	for i := 0; i < 10; i++ {
//	    ts := start.Add(time.Duration(i) * time.Second)
//	    if err := src.Append(ts.UnixMicro(), readCPU()); err != nil {
//	        return err
//	    }
//	}
//
//	smoothed, err := tsmooth.MovingAverage(src, 3)
//	if err != nil {
//	    return err
//	}
//
// Exporting the result:
//
//	exp, _ := export.New(export.WithType(format.ExportCSV))
//	data, err := exp.Export(smoothed)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the series,
// kernel, and engine packages, simplifying the most common use cases. For
// fine-grained control (kernel reuse, result caching, custom export
// configurations), use those packages directly.
package tsmooth

import (
	"github.com/arloliu/tsmooth/engine"
	"github.com/arloliu/tsmooth/internal/hash"
	"github.com/arloliu/tsmooth/kernel"
	"github.com/arloliu/tsmooth/series"
)

// NewSeries creates an empty series with the given name and initial capacity.
//
// Samples are appended with Append and must carry strictly increasing
// timestamps (microseconds since the Unix epoch by convention):
//
//	s := tsmooth.NewSeries("memory.bytes", 100)
//	err := s.Append(ts.UnixMicro(), value)
func NewSeries(name string, capacity int) *series.Series {
	return series.New(name, capacity)
}

// NewSeriesFromSamples creates a series from an existing sample slice,
// validating timestamp ordering.
func NewSeriesFromSamples(name string, samples []series.Sample) (*series.Series, error) {
	return series.FromSamples(name, samples)
}

// Smooth applies a kernel to a series in one shot, without configuring an
// engine. Equivalent to engine.New() followed by Run.
//
// Example:
//
//	k, _ := kernel.NewExponential(0.3)
//	smoothed, err := tsmooth.Smooth(src, k)
func Smooth(src *series.Series, k kernel.Kernel) (*series.Series, error) {
	eng, err := engine.New()
	if err != nil {
		return nil, err
	}

	return eng.Run(src, k)
}

// MovingAverage smooths src with a trailing-window mean.
//
// The first window-1 samples are skipped, so the output is window-1 samples
// shorter than the input. See kernel.MovingAverage for details.
func MovingAverage(src *series.Series, window int) (*series.Series, error) {
	k, err := kernel.NewMovingAverage(window)
	if err != nil {
		return nil, err
	}

	return Smooth(src, k)
}

// WeightedMovingAverage smooths src with a linearly weighted trailing
// window. Same warm-up policy as MovingAverage.
func WeightedMovingAverage(src *series.Series, window int) (*series.Series, error) {
	k, err := kernel.NewWeightedMovingAverage(window)
	if err != nil {
		return nil, err
	}

	return Smooth(src, k)
}

// ExponentialSmoothing smooths src with single exponential smoothing using
// coefficient alpha in (0, 1]. Output length equals input length.
func ExponentialSmoothing(src *series.Series, alpha float64) (*series.Series, error) {
	k, err := kernel.NewExponential(alpha)
	if err != nil {
		return nil, err
	}

	return Smooth(src, k)
}

// DoubleExponentialSmoothing smooths src with Holt's linear method using
// level coefficient alpha and trend coefficient beta, both in (0, 1].
func DoubleExponentialSmoothing(src *series.Series, alpha, beta float64) (*series.Series, error) {
	k, err := kernel.NewDoubleExponential(alpha, beta)
	if err != nil {
		return nil, err
	}

	return Smooth(src, k)
}

// SeriesID converts a series name to its 64-bit xxHash64 identifier.
//
// Use it when an application keys series by fixed-size IDs rather than
// names. The hash is deterministic, so the same name always maps to the
// same ID across processes.
func SeriesID(name string) uint64 {
	return hash.ID(name)
}
