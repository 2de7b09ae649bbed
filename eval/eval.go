// Package eval scores a predicted (smoothed) series against a reference
// series with standard regression error metrics.
//
// The metric set matches the usual time-series evaluation battery: R², MAE,
// MSE, RMSE, RMSLE, MAPE, and SMAPE. All metrics are computed in one pass
// over the paired values.
//
// Division-prone metrics follow IEEE 754 semantics rather than guarding:
// MAPE over a zero actual yields +Inf, SMAPE over a pair of zeros yields NaN.
// RMSLE is computed only over pairs where both values are non-negative and is
// NaN when no such pair exists.
package eval

import (
	"fmt"
	"math"

	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/series"
)

// Result holds the computed error metrics of a prediction against actuals.
type Result struct {
	// R2 is the coefficient of determination (1 is a perfect fit).
	R2 float64
	// MAE is the mean absolute error.
	MAE float64
	// MSE is the mean squared error.
	MSE float64
	// RMSE is the root mean squared error.
	RMSE float64
	// RMSLE is the root mean squared logarithmic error, NaN when no sample
	// pair is non-negative.
	RMSLE float64
	// MAPE is the mean absolute percentage error, in percent.
	MAPE float64
	// SMAPE is the symmetric mean absolute percentage error, in percent.
	SMAPE float64
}

// String returns a compact single-line summary of the result.
func (r Result) String() string {
	return fmt.Sprintf("Result{R2: %.4f, MAE: %.4f, MSE: %.4f, RMSE: %.4f, RMSLE: %.4f, MAPE: %.2f%%, SMAPE: %.2f%%}",
		r.R2, r.MAE, r.MSE, r.RMSE, r.RMSLE, r.MAPE, r.SMAPE)
}

// Evaluate computes all metrics for predicted against actual.
//
// Returns errs.ErrEmptySeries when the slices are empty and
// errs.ErrLengthMismatch when their lengths differ.
func Evaluate(actual, predicted []float64) (Result, error) {
	if len(actual) == 0 || len(predicted) == 0 {
		return Result{}, errs.ErrEmptySeries
	}
	if len(actual) != len(predicted) {
		return Result{}, fmt.Errorf("%w: actual=%d, predicted=%d", errs.ErrLengthMismatch, len(actual), len(predicted))
	}

	n := float64(len(actual))

	var actualSum float64
	for _, a := range actual {
		actualSum += a
	}
	actualMean := actualSum / n

	var (
		ssRes, ssTot       float64
		absErrSum, sqErrSum float64
		sqLogErrSum        float64
		logCount           int
		mapeSum, smapeSum  float64
	)

	for i, a := range actual {
		p := predicted[i]
		diff := a - p

		ssRes += diff * diff
		ssTot += (a - actualMean) * (a - actualMean)
		absErrSum += math.Abs(diff)
		sqErrSum += diff * diff

		// RMSLE skips any pair with a negative value; log1p is undefined there.
		if a >= 0 && p >= 0 {
			logDiff := math.Log1p(a) - math.Log1p(p)
			sqLogErrSum += logDiff * logDiff
			logCount++
		}

		mapeSum += math.Abs(diff / a)
		smapeSum += 2 * math.Abs(p-a) / (math.Abs(p) + math.Abs(a))
	}

	mse := sqErrSum / n

	rmsle := math.NaN()
	if logCount > 0 {
		rmsle = math.Sqrt(sqLogErrSum / float64(logCount))
	}

	return Result{
		R2:    rSquared(ssRes, ssTot),
		MAE:   absErrSum / n,
		MSE:   mse,
		RMSE:  math.Sqrt(mse),
		RMSLE: rmsle,
		MAPE:  mapeSum / n * 100,
		SMAPE: smapeSum / n * 100,
	}, nil
}

// EvaluateSeries computes all metrics for a predicted series against an
// actual series. The two series must be aligned sample for sample: same
// length and identical timestamps.
//
// Returns errs.ErrTimestampMismatch when timestamps differ at any index.
func EvaluateSeries(actual, predicted *series.Series) (Result, error) {
	if actual.Len() == 0 || predicted.Len() == 0 {
		return Result{}, errs.ErrEmptySeries
	}
	if actual.Len() != predicted.Len() {
		return Result{}, fmt.Errorf("%w: actual=%d, predicted=%d", errs.ErrLengthMismatch, actual.Len(), predicted.Len())
	}

	for i := range actual.Len() {
		if actual.At(i).Ts != predicted.At(i).Ts {
			return Result{}, fmt.Errorf("%w: index %d: actual ts=%d, predicted ts=%d",
				errs.ErrTimestampMismatch, i, actual.At(i).Ts, predicted.At(i).Ts)
		}
	}

	return Evaluate(actual.ValueSlice(), predicted.ValueSlice())
}

// rSquared computes the coefficient of determination from the residual and
// total sums of squares. A constant actual series has no variance to
// explain: R² is 1 for a perfect fit and NaN otherwise.
func rSquared(ssRes, ssTot float64) float64 {
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}

		return math.NaN()
	}

	return 1 - ssRes/ssTot
}
