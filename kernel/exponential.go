package kernel

import (
	"fmt"

	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/series"
)

// Exponential smooths a series with single exponential smoothing:
//
//	out[0] = in[0]
//	out[i] = alpha*in[i] + (1-alpha)*out[i-1]
//
// Output length equals input length; all timestamps are preserved. alpha=1
// is the identity.
type Exponential struct {
	alpha float64
}

var _ Kernel = (*Exponential)(nil)

// NewExponential creates a single exponential smoothing kernel.
//
// Returns errs.ErrInvalidAlpha unless 0 < alpha <= 1.
func NewExponential(alpha float64) (*Exponential, error) {
	if err := validateCoefficient(alpha, errs.ErrInvalidAlpha, "alpha"); err != nil {
		return nil, err
	}

	return &Exponential{alpha: alpha}, nil
}

// Alpha returns the configured smoothing coefficient.
func (k *Exponential) Alpha() float64 {
	return k.alpha
}

// Apply computes the exponentially smoothed series of src.
func (k *Exponential) Apply(src *series.Series) (*series.Series, error) {
	n := src.Len()
	out := series.New(src.Name(), n)

	var prev float64
	for i := range n {
		sample := src.At(i)
		smoothed := sample.Val
		if i > 0 {
			smoothed = k.alpha*sample.Val + (1-k.alpha)*prev
		}
		if err := out.Append(sample.Ts, smoothed); err != nil {
			return nil, err
		}
		prev = smoothed
	}

	return out, nil
}

// Type returns TypeExponential.
func (k *Exponential) Type() Type {
	return TypeExponential
}

// Params returns [alpha].
func (k *Exponential) Params() []float64 {
	return []float64{k.alpha}
}

// String returns a human-readable description of the kernel.
func (k *Exponential) String() string {
	return fmt.Sprintf("exponential(alpha=%v)", k.alpha)
}

// DoubleExponential smooths a series with Holt's linear method, tracking a
// level and a trend component:
//
//	level[i] = alpha*in[i] + (1-alpha)*(level[i-1] + trend[i-1])
//	trend[i] = beta*(level[i] - level[i-1]) + (1-beta)*trend[i-1]
//	out[i]   = level[i]
//
// The level is seeded with the first sample and the trend with the first
// difference, so out[0] = in[0]. Output length equals input length.
//
// Compared to single exponential smoothing, the trend term keeps the output
// from lagging behind series with a consistent slope.
type DoubleExponential struct {
	alpha float64
	beta  float64
}

var _ Kernel = (*DoubleExponential)(nil)

// NewDoubleExponential creates a Holt linear smoothing kernel.
//
// Returns errs.ErrInvalidAlpha or errs.ErrInvalidBeta unless both
// coefficients lie in (0, 1].
func NewDoubleExponential(alpha, beta float64) (*DoubleExponential, error) {
	if err := validateCoefficient(alpha, errs.ErrInvalidAlpha, "alpha"); err != nil {
		return nil, err
	}
	if err := validateCoefficient(beta, errs.ErrInvalidBeta, "beta"); err != nil {
		return nil, err
	}

	return &DoubleExponential{alpha: alpha, beta: beta}, nil
}

// Alpha returns the level smoothing coefficient.
func (k *DoubleExponential) Alpha() float64 {
	return k.alpha
}

// Beta returns the trend smoothing coefficient.
func (k *DoubleExponential) Beta() float64 {
	return k.beta
}

// Apply computes the Holt-smoothed series of src.
func (k *DoubleExponential) Apply(src *series.Series) (*series.Series, error) {
	n := src.Len()
	out := series.New(src.Name(), n)

	var level, trend float64
	for i := range n {
		sample := src.At(i)
		switch i {
		case 0:
			level = sample.Val
			if n > 1 {
				trend = src.At(1).Val - sample.Val
			}
		default:
			prevLevel := level
			level = k.alpha*sample.Val + (1-k.alpha)*(level+trend)
			trend = k.beta*(level-prevLevel) + (1-k.beta)*trend
		}
		if err := out.Append(sample.Ts, level); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Type returns TypeDoubleExponential.
func (k *DoubleExponential) Type() Type {
	return TypeDoubleExponential
}

// Params returns [alpha, beta].
func (k *DoubleExponential) Params() []float64 {
	return []float64{k.alpha, k.beta}
}

// String returns a human-readable description of the kernel.
func (k *DoubleExponential) String() string {
	return fmt.Sprintf("double_exponential(alpha=%v, beta=%v)", k.alpha, k.beta)
}
