package tsmooth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsmooth"
	"github.com/arloliu/tsmooth/kernel"
	"github.com/arloliu/tsmooth/series"
)

func testSeries(t *testing.T) *series.Series {
	t.Helper()

	src, err := tsmooth.NewSeriesFromSamples("test.metric", []series.Sample{
		{Ts: 0, Val: 1.0},
		{Ts: 1, Val: 2.0},
		{Ts: 2, Val: 3.0},
		{Ts: 3, Val: 4.0},
	})
	require.NoError(t, err)

	return src
}

func TestNewSeries(t *testing.T) {
	s := tsmooth.NewSeries("cpu.usage", 8)
	require.Equal(t, "cpu.usage", s.Name())
	require.Equal(t, 0, s.Len())

	require.NoError(t, s.Append(100, 0.5))
	require.Equal(t, 1, s.Len())
}

func TestSmooth(t *testing.T) {
	src := testSeries(t)

	k, err := kernel.NewMovingAverage(2)
	require.NoError(t, err)

	out, err := tsmooth.Smooth(src, k)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
}

func TestMovingAverage(t *testing.T) {
	src := testSeries(t)

	out, err := tsmooth.MovingAverage(src, 2)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	require.Equal(t, series.Sample{Ts: 1, Val: 1.5}, out.At(0))
	require.Equal(t, series.Sample{Ts: 3, Val: 3.5}, out.At(2))

	_, err = tsmooth.MovingAverage(src, 0)
	require.Error(t, err)
}

func TestWeightedMovingAverage(t *testing.T) {
	src := testSeries(t)

	out, err := tsmooth.WeightedMovingAverage(src, 2)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	// (1*1 + 2*2) / 3
	require.InDelta(t, 5.0/3.0, out.At(0).Val, 1e-12)
}

func TestExponentialSmoothing(t *testing.T) {
	src := testSeries(t)

	out, err := tsmooth.ExponentialSmoothing(src, 0.5)
	require.NoError(t, err)
	require.Equal(t, src.Len(), out.Len())
	require.Equal(t, 1.0, out.At(0).Val)
	require.Equal(t, 1.5, out.At(1).Val)

	_, err = tsmooth.ExponentialSmoothing(src, 1.5)
	require.Error(t, err)
}

func TestDoubleExponentialSmoothing(t *testing.T) {
	src := testSeries(t)

	out, err := tsmooth.DoubleExponentialSmoothing(src, 0.5, 0.5)
	require.NoError(t, err)
	require.Equal(t, src.Len(), out.Len())
	// Linear input reproduces exactly under Holt smoothing.
	for i, sample := range out.Samples() {
		require.InDelta(t, float64(i+1), sample.Val, 1e-12)
	}

	_, err = tsmooth.DoubleExponentialSmoothing(src, 0.5, 0.0)
	require.Error(t, err)
}

func TestSeriesID(t *testing.T) {
	id1 := tsmooth.SeriesID("cpu.usage")
	id2 := tsmooth.SeriesID("cpu.usage")
	id3 := tsmooth.SeriesID("mem.usage")

	require.Equal(t, id1, id2)
	require.NotEqual(t, id1, id3)
}
