package kernel

import (
	"fmt"

	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/series"
)

// MovingAverage smooths a series by averaging a fixed-size trailing window.
//
// Warm-up policy: the first window-1 input samples do not produce output, so
// output length is input length - window + 1. Each output sample carries the
// timestamp of the input sample that ends its window.
type MovingAverage struct {
	window int
}

var _ Kernel = (*MovingAverage)(nil)

// NewMovingAverage creates a trailing-window mean kernel.
//
// Returns errs.ErrInvalidWindowSize if window <= 0. The upper bound
// (window <= input length) is checked at Apply time since it depends on the
// input.
func NewMovingAverage(window int) (*MovingAverage, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window=%d", errs.ErrInvalidWindowSize, window)
	}

	return &MovingAverage{window: window}, nil
}

// Window returns the configured window size.
func (k *MovingAverage) Window() int {
	return k.window
}

// Apply computes the trailing-window mean of src.
//
// The sum is maintained incrementally (add the entering sample, subtract the
// leaving one) so the whole pass is O(n) regardless of window size.
//
// Returns errs.ErrInvalidWindowSize if the window exceeds src's length.
func (k *MovingAverage) Apply(src *series.Series) (*series.Series, error) {
	n := src.Len()
	if k.window > n {
		return nil, fmt.Errorf("%w: window=%d exceeds input length %d", errs.ErrInvalidWindowSize, k.window, n)
	}

	out := series.New(src.Name(), n-k.window+1)

	var sum float64
	for i := range n {
		sum += src.At(i).Val
		if i < k.window-1 {
			continue
		}
		if i >= k.window {
			sum -= src.At(i - k.window).Val
		}
		if err := out.Append(src.At(i).Ts, sum/float64(k.window)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Type returns TypeMovingAverage.
func (k *MovingAverage) Type() Type {
	return TypeMovingAverage
}

// Params returns [window].
func (k *MovingAverage) Params() []float64 {
	return []float64{float64(k.window)}
}

// String returns a human-readable description of the kernel.
func (k *MovingAverage) String() string {
	return fmt.Sprintf("moving_average(window=%d)", k.window)
}

// WeightedMovingAverage smooths a series with a linearly weighted trailing
// window: the newest sample in the window gets weight window, the oldest
// gets weight 1.
//
// Warm-up policy matches MovingAverage: output length is
// input length - window + 1.
type WeightedMovingAverage struct {
	window int
	denom  float64
}

var _ Kernel = (*WeightedMovingAverage)(nil)

// NewWeightedMovingAverage creates a linearly weighted trailing-window kernel.
//
// Returns errs.ErrInvalidWindowSize if window <= 0.
func NewWeightedMovingAverage(window int) (*WeightedMovingAverage, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window=%d", errs.ErrInvalidWindowSize, window)
	}

	return &WeightedMovingAverage{
		window: window,
		// 1 + 2 + ... + window
		denom: float64(window) * float64(window+1) / 2,
	}, nil
}

// Window returns the configured window size.
func (k *WeightedMovingAverage) Window() int {
	return k.window
}

// Apply computes the linearly weighted trailing mean of src.
//
// Returns errs.ErrInvalidWindowSize if the window exceeds src's length.
func (k *WeightedMovingAverage) Apply(src *series.Series) (*series.Series, error) {
	n := src.Len()
	if k.window > n {
		return nil, fmt.Errorf("%w: window=%d exceeds input length %d", errs.ErrInvalidWindowSize, k.window, n)
	}

	out := series.New(src.Name(), n-k.window+1)

	for i := k.window - 1; i < n; i++ {
		var weighted float64
		for j := range k.window {
			// Oldest sample in the window has weight 1, newest has weight window.
			weighted += src.At(i-k.window+1+j).Val * float64(j+1)
		}
		if err := out.Append(src.At(i).Ts, weighted/k.denom); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Type returns TypeWeightedMovingAverage.
func (k *WeightedMovingAverage) Type() Type {
	return TypeWeightedMovingAverage
}

// Params returns [window].
func (k *WeightedMovingAverage) Params() []float64 {
	return []float64{float64(k.window)}
}

// String returns a human-readable description of the kernel.
func (k *WeightedMovingAverage) String() string {
	return fmt.Sprintf("weighted_moving_average(window=%d)", k.window)
}
