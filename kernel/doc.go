// Package kernel provides the smoothing algorithms applied to a series.
//
// Each kernel is a pure, stateless strategy: it is configured once at
// construction, validates its parameters up front, and its Apply method maps
// an input series to a freshly allocated output series. The same kernel can
// be applied to any number of series, concurrently, with no shared state.
//
// # Kernels
//
//   - MovingAverage: trailing-window mean. Output shorter by window-1
//     samples (warm-up samples are skipped, not emitted as undefined).
//   - WeightedMovingAverage: linearly weighted trailing window, same
//     warm-up policy.
//   - Exponential: single exponential smoothing, output length preserved.
//   - DoubleExponential: Holt's linear method with a trend component,
//     output length preserved.
//
// # Usage
//
//	k, err := kernel.NewMovingAverage(5)
//	if err != nil {
//	    return err
//	}
//	smoothed, err := k.Apply(src)
//
// Or dynamically by type or name:
//
//	k, err := kernel.New(kernel.TypeExponential, 0.3)
//	k, err := kernel.NewByName("exponential", 0.3)
//
// Configuration errors all wrap errs.ErrInvalidConfig, so callers can match
// the whole category:
//
//	if errors.Is(err, errs.ErrInvalidConfig) { ... }
//
// For validation and orchestration (empty-input checks, result caching),
// apply kernels through the engine package instead of calling Apply directly.
package kernel
