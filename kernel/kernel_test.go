package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/series"
)

func makeSeries(t *testing.T, samples []series.Sample) *series.Series {
	t.Helper()
	s, err := series.FromSamples("test", samples)
	require.NoError(t, err)

	return s
}

func rampSeries(t *testing.T, n int) *series.Series {
	t.Helper()
	s := series.New("ramp", n)
	for i := range n {
		require.NoError(t, s.Append(int64(i), float64(i+1)))
	}

	return s
}

// ==============================================================================
// Type tests
// ==============================================================================

func TestTypeString(t *testing.T) {
	require.Equal(t, "moving_average", TypeMovingAverage.String())
	require.Equal(t, "weighted_moving_average", TypeWeightedMovingAverage.String())
	require.Equal(t, "exponential", TypeExponential.String())
	require.Equal(t, "double_exponential", TypeDoubleExponential.String())
	require.Equal(t, "unknown", Type(99).String())
}

func TestTypeFromString(t *testing.T) {
	require.Equal(t, TypeMovingAverage, TypeFromString("moving_average"))
	require.Equal(t, TypeExponential, TypeFromString("EXPONENTIAL")) // case-insensitive
	require.Equal(t, Type(-1), TypeFromString("median"))
}

// ==============================================================================
// Factory tests
// ==============================================================================

func TestNew(t *testing.T) {
	t.Run("AllTypes", func(t *testing.T) {
		tests := []struct {
			kernelType Type
			params     []float64
		}{
			{TypeMovingAverage, []float64{3}},
			{TypeWeightedMovingAverage, []float64{3}},
			{TypeExponential, []float64{0.5}},
			{TypeDoubleExponential, []float64{0.5, 0.3}},
		}
		for _, tt := range tests {
			k, err := New(tt.kernelType, tt.params...)
			require.NoError(t, err)
			require.Equal(t, tt.kernelType, k.Type())
			require.Equal(t, tt.params, k.Params())
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := New(Type(99), 1)
		require.ErrorIs(t, err, errs.ErrInvalidKernelType)
	})

	t.Run("WrongParamCount", func(t *testing.T) {
		_, err := New(TypeMovingAverage)
		require.ErrorIs(t, err, errs.ErrInvalidParamCount)

		_, err = New(TypeDoubleExponential, 0.5)
		require.ErrorIs(t, err, errs.ErrInvalidParamCount)
	})

	t.Run("NonIntegralWindow", func(t *testing.T) {
		// A fractional window must be rejected, not truncated to int.
		for _, bad := range []float64{2.5, math.NaN(), math.Inf(1), 1e15} {
			_, err := New(TypeMovingAverage, bad)
			require.ErrorIs(t, err, errs.ErrInvalidWindowSize, "window %v", bad)

			_, err = New(TypeWeightedMovingAverage, bad)
			require.ErrorIs(t, err, errs.ErrInvalidWindowSize, "window %v", bad)
		}
	})

	t.Run("AllConfigErrorsWrapInvalidConfig", func(t *testing.T) {
		cases := []error{}

		_, err := New(Type(99))
		cases = append(cases, err)
		_, err = New(TypeMovingAverage, 0)
		cases = append(cases, err)
		_, err = New(TypeExponential, 1.5)
		cases = append(cases, err)
		_, err = New(TypeDoubleExponential, 0.5, 0)
		cases = append(cases, err)

		for _, err := range cases {
			require.ErrorIs(t, err, errs.ErrInvalidConfig)
		}
	})
}

func TestNewByName(t *testing.T) {
	k, err := NewByName("exponential", 0.5)
	require.NoError(t, err)
	require.Equal(t, TypeExponential, k.Type())

	_, err = NewByName("bogus", 0.5)
	require.ErrorIs(t, err, errs.ErrInvalidKernelType)
}

// ==============================================================================
// MovingAverage tests
// ==============================================================================

func TestMovingAverage(t *testing.T) {
	t.Run("InvalidWindow", func(t *testing.T) {
		_, err := NewMovingAverage(0)
		require.ErrorIs(t, err, errs.ErrInvalidWindowSize)
		_, err = NewMovingAverage(-3)
		require.ErrorIs(t, err, errs.ErrInvalidWindowSize)
	})

	t.Run("WindowExceedsInput", func(t *testing.T) {
		k, err := NewMovingAverage(5)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 1.0}, {Ts: 1, Val: 2.0}})
		_, err = k.Apply(src)
		require.ErrorIs(t, err, errs.ErrInvalidWindowSize)
	})

	t.Run("WindowOneIsIdentity", func(t *testing.T) {
		k, err := NewMovingAverage(1)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 1.0}, {Ts: 1, Val: 2.5}, {Ts: 2, Val: -3.0}})
		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, src.Samples(), out.Samples())
	})

	t.Run("WindowTwo", func(t *testing.T) {
		k, err := NewMovingAverage(2)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 1.0}, {Ts: 1, Val: 2.0}, {Ts: 2, Val: 3.0}, {Ts: 3, Val: 4.0}})
		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, []series.Sample{{Ts: 1, Val: 1.5}, {Ts: 2, Val: 2.5}, {Ts: 3, Val: 3.5}}, out.Samples())
	})

	t.Run("OutputLength", func(t *testing.T) {
		src := rampSeries(t, 10)
		for window := 1; window <= 10; window++ {
			k, err := NewMovingAverage(window)
			require.NoError(t, err)

			out, err := k.Apply(src)
			require.NoError(t, err)
			require.Equal(t, 10-window+1, out.Len(), "window=%d", window)
		}
	})

	t.Run("WindowEqualsInput", func(t *testing.T) {
		k, err := NewMovingAverage(4)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 1.0}, {Ts: 1, Val: 2.0}, {Ts: 2, Val: 3.0}, {Ts: 3, Val: 4.0}})
		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, []series.Sample{{Ts: 3, Val: 2.5}}, out.Samples())
	})

	t.Run("PreservesName", func(t *testing.T) {
		k, err := NewMovingAverage(1)
		require.NoError(t, err)

		out, err := k.Apply(makeSeries(t, []series.Sample{{Ts: 0, Val: 1.0}}))
		require.NoError(t, err)
		require.Equal(t, "test", out.Name())
	})

	t.Run("InputUnchanged", func(t *testing.T) {
		k, err := NewMovingAverage(2)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 1.0}, {Ts: 1, Val: 3.0}})
		before := src.Samples()
		_, err = k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, before, src.Samples())
	})
}

func TestMovingAverageString(t *testing.T) {
	k, err := NewMovingAverage(7)
	require.NoError(t, err)
	require.Equal(t, "moving_average(window=7)", k.String())
	require.Equal(t, 7, k.Window())
}

// ==============================================================================
// WeightedMovingAverage tests
// ==============================================================================

func TestWeightedMovingAverage(t *testing.T) {
	t.Run("InvalidWindow", func(t *testing.T) {
		_, err := NewWeightedMovingAverage(0)
		require.ErrorIs(t, err, errs.ErrInvalidWindowSize)
	})

	t.Run("WindowOneIsIdentity", func(t *testing.T) {
		k, err := NewWeightedMovingAverage(1)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 4.0}, {Ts: 1, Val: 8.0}})
		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, src.Samples(), out.Samples())
	})

	t.Run("WindowThree", func(t *testing.T) {
		k, err := NewWeightedMovingAverage(3)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 1.0}, {Ts: 1, Val: 2.0}, {Ts: 2, Val: 3.0}, {Ts: 3, Val: 4.0}})
		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, 2, out.Len())
		// (1*1 + 2*2 + 3*3) / 6
		require.InDelta(t, 14.0/6.0, out.At(0).Val, 1e-12)
		require.Equal(t, int64(2), out.At(0).Ts)
		// (2*1 + 3*2 + 4*3) / 6
		require.InDelta(t, 20.0/6.0, out.At(1).Val, 1e-12)
		require.Equal(t, int64(3), out.At(1).Ts)
	})

	t.Run("WindowExceedsInput", func(t *testing.T) {
		k, err := NewWeightedMovingAverage(10)
		require.NoError(t, err)

		_, err = k.Apply(rampSeries(t, 3))
		require.ErrorIs(t, err, errs.ErrInvalidWindowSize)
	})

	t.Run("ConstantSeriesUnchanged", func(t *testing.T) {
		k, err := NewWeightedMovingAverage(4)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 5.0}, {Ts: 1, Val: 5.0}, {Ts: 2, Val: 5.0}, {Ts: 3, Val: 5.0}, {Ts: 4, Val: 5.0}})
		out, err := k.Apply(src)
		require.NoError(t, err)
		for _, sample := range out.Samples() {
			require.InDelta(t, 5.0, sample.Val, 1e-12)
		}
	})
}

// ==============================================================================
// Exponential tests
// ==============================================================================

func TestExponential(t *testing.T) {
	t.Run("InvalidAlpha", func(t *testing.T) {
		for _, alpha := range []float64{0, -0.5, 1.1, 2} {
			_, err := NewExponential(alpha)
			require.ErrorIs(t, err, errs.ErrInvalidAlpha, "alpha=%v", alpha)
		}
	})

	t.Run("BoundaryAlphaValid", func(t *testing.T) {
		k, err := NewExponential(1)
		require.NoError(t, err)
		require.Equal(t, 1.0, k.Alpha())

		_, err = NewExponential(1e-9)
		require.NoError(t, err)
	})

	t.Run("AlphaOneIsIdentity", func(t *testing.T) {
		k, err := NewExponential(1)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 1.0}, {Ts: 1, Val: -2.0}, {Ts: 2, Val: 7.5}})
		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, src.Samples(), out.Samples())
	})

	t.Run("HalfAlpha", func(t *testing.T) {
		k, err := NewExponential(0.5)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 2.0}, {Ts: 1, Val: 4.0}})
		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, []series.Sample{{Ts: 0, Val: 2.0}, {Ts: 1, Val: 3.0}}, out.Samples())
	})

	t.Run("LengthPreserved", func(t *testing.T) {
		k, err := NewExponential(0.3)
		require.NoError(t, err)

		src := rampSeries(t, 50)
		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, src.Len(), out.Len())
		require.Equal(t, src.TimestampSlice(), out.TimestampSlice())
	})

	t.Run("Deterministic", func(t *testing.T) {
		k, err := NewExponential(0.25)
		require.NoError(t, err)

		src := rampSeries(t, 20)
		out1, err := k.Apply(src)
		require.NoError(t, err)
		out2, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, out1.Samples(), out2.Samples())
	})
}

// ==============================================================================
// DoubleExponential tests
// ==============================================================================

func TestDoubleExponential(t *testing.T) {
	t.Run("InvalidCoefficients", func(t *testing.T) {
		_, err := NewDoubleExponential(0, 0.5)
		require.ErrorIs(t, err, errs.ErrInvalidAlpha)

		_, err = NewDoubleExponential(0.5, 1.5)
		require.ErrorIs(t, err, errs.ErrInvalidBeta)
	})

	t.Run("FirstOutputEqualsFirstInput", func(t *testing.T) {
		k, err := NewDoubleExponential(0.5, 0.5)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 3.0}, {Ts: 1, Val: 5.0}, {Ts: 2, Val: 7.0}})
		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, 3.0, out.At(0).Val)
	})

	t.Run("TracksLinearTrendExactly", func(t *testing.T) {
		// For a perfectly linear series the seeded trend matches the slope,
		// so the forecast level equals the observation at every step.
		k, err := NewDoubleExponential(0.5, 0.5)
		require.NoError(t, err)

		src := series.New("linear", 10)
		for i := range 10 {
			require.NoError(t, src.Append(int64(i), 2.0+3.0*float64(i)))
		}

		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, src.Len(), out.Len())
		for i, sample := range out.Samples() {
			require.InDelta(t, src.At(i).Val, sample.Val, 1e-9, "i=%d", i)
		}
	})

	t.Run("SingleSample", func(t *testing.T) {
		k, err := NewDoubleExponential(0.5, 0.5)
		require.NoError(t, err)

		src := makeSeries(t, []series.Sample{{Ts: 0, Val: 42.0}})
		out, err := k.Apply(src)
		require.NoError(t, err)
		require.Equal(t, []series.Sample{{Ts: 0, Val: 42.0}}, out.Samples())
	})

	t.Run("Accessors", func(t *testing.T) {
		k, err := NewDoubleExponential(0.4, 0.2)
		require.NoError(t, err)
		require.Equal(t, 0.4, k.Alpha())
		require.Equal(t, 0.2, k.Beta())
		require.Equal(t, "double_exponential(alpha=0.4, beta=0.2)", k.String())
	})
}

// ==============================================================================
// Cross-kernel properties
// ==============================================================================

func TestKernelsArePure(t *testing.T) {
	src := rampSeries(t, 30)

	kernels := []Kernel{}
	for _, build := range []func() (Kernel, error){
		func() (Kernel, error) { return NewMovingAverage(5) },
		func() (Kernel, error) { return NewWeightedMovingAverage(5) },
		func() (Kernel, error) { return NewExponential(0.4) },
		func() (Kernel, error) { return NewDoubleExponential(0.4, 0.2) },
	} {
		k, err := build()
		require.NoError(t, err)
		kernels = append(kernels, k)
	}

	for _, k := range kernels {
		t.Run(k.Type().String(), func(t *testing.T) {
			before := src.Samples()
			out1, err := k.Apply(src)
			require.NoError(t, err)
			out2, err := k.Apply(src)
			require.NoError(t, err)

			require.Equal(t, out1.Samples(), out2.Samples())
			require.Equal(t, before, src.Samples())
		})
	}
}
