package kernel

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/series"
)

// Type represents the kind of smoothing kernel.
type Type int

const (
	// TypeMovingAverage represents trailing-window mean smoothing.
	TypeMovingAverage Type = iota
	// TypeWeightedMovingAverage represents linearly weighted trailing-window smoothing.
	TypeWeightedMovingAverage
	// TypeExponential represents single exponential smoothing.
	TypeExponential
	// TypeDoubleExponential represents double exponential (Holt) smoothing.
	TypeDoubleExponential
)

// typeNames maps Type to their string representations.
var typeNames = map[Type]string{
	TypeMovingAverage:         "moving_average",
	TypeWeightedMovingAverage: "weighted_moving_average",
	TypeExponential:           "exponential",
	TypeDoubleExponential:     "double_exponential",
}

// String returns the string representation of the kernel type.
func (t Type) String() string {
	if name, exists := typeNames[t]; exists {
		return name
	}

	return "unknown"
}

// typeFromString maps string names to Type.
var typeFromString = map[string]Type{
	"moving_average":          TypeMovingAverage,
	"weighted_moving_average": TypeWeightedMovingAverage,
	"exponential":             TypeExponential,
	"double_exponential":      TypeDoubleExponential,
}

// TypeFromString returns the Type for a given string name.
// Returns Type(-1) for unknown names.
func TypeFromString(name string) Type {
	if t, exists := typeFromString[strings.ToLower(name)]; exists {
		return t
	}

	return Type(-1) // Invalid Type
}

// Kernel is a pure smoothing function over a series.
//
// Implementations hold only their configuration, never any per-invocation
// state: Apply is deterministic and safe to call concurrently on different
// inputs. Apply reads the input series and builds a fresh output series; the
// input is never modified.
type Kernel interface {
	// Apply smooths src and returns a newly allocated output series.
	// The output carries src's name and a subset (or all) of src's
	// timestamps, depending on the kernel's warm-up policy.
	Apply(src *series.Series) (*series.Series, error)
	// Type returns the kernel type.
	Type() Type
	// Params returns the kernel's configuration parameters in a canonical
	// order. Used for cache keying and diagnostics.
	Params() []float64
	// String returns a human-readable description of the configured kernel.
	String() string
}

// New creates a kernel by type and parameters.
//
// Parameter layout per type:
//   - TypeMovingAverage: [window]
//   - TypeWeightedMovingAverage: [window]
//   - TypeExponential: [alpha]
//   - TypeDoubleExponential: [alpha, beta]
//
// Returns errs.ErrInvalidKernelType for unknown types,
// errs.ErrInvalidParamCount for a wrong parameter count, and the kernel's own
// validation errors (all wrapping errs.ErrInvalidConfig) for out-of-range
// values.
//
// Example:
//
//	k, err := kernel.New(kernel.TypeMovingAverage, 5)
//	if err != nil {
//	    return err
//	}
//	smoothed, err := k.Apply(src)
func New(kernelType Type, params ...float64) (Kernel, error) {
	switch kernelType {
	case TypeMovingAverage:
		if len(params) != 1 {
			return nil, fmt.Errorf("%w: moving_average expects 1 parameter, got %d", errs.ErrInvalidParamCount, len(params))
		}

		window, err := windowParam(params[0])
		if err != nil {
			return nil, err
		}

		return NewMovingAverage(window)
	case TypeWeightedMovingAverage:
		if len(params) != 1 {
			return nil, fmt.Errorf("%w: weighted_moving_average expects 1 parameter, got %d", errs.ErrInvalidParamCount, len(params))
		}

		window, err := windowParam(params[0])
		if err != nil {
			return nil, err
		}

		return NewWeightedMovingAverage(window)
	case TypeExponential:
		if len(params) != 1 {
			return nil, fmt.Errorf("%w: exponential expects 1 parameter, got %d", errs.ErrInvalidParamCount, len(params))
		}

		return NewExponential(params[0])
	case TypeDoubleExponential:
		if len(params) != 2 {
			return nil, fmt.Errorf("%w: double_exponential expects 2 parameters, got %d", errs.ErrInvalidParamCount, len(params))
		}

		return NewDoubleExponential(params[0], params[1])
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidKernelType, kernelType)
	}
}

// NewByName creates a kernel from its string name and parameters.
// See New for the per-type parameter layout.
func NewByName(name string, params ...float64) (Kernel, error) {
	kernelType := TypeFromString(name)
	if kernelType == Type(-1) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidKernelType, name)
	}

	return New(kernelType, params...)
}

// windowParam converts a float64 window parameter to int, rejecting
// non-integral, NaN, and out-of-range values rather than truncating them.
func windowParam(v float64) (int, error) {
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: window must be an integer, got %v", errs.ErrInvalidWindowSize, v)
	}

	return int(v), nil
}

// validateCoefficient checks that a smoothing coefficient lies in (0, 1].
func validateCoefficient(value float64, sentinel error, name string) error {
	if value <= 0 || value > 1 {
		return fmt.Errorf("%w: %s=%v", sentinel, name, value)
	}

	return nil
}
