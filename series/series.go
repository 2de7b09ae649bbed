// Package series provides the ordered (timestamp, value) sample buffer that
// all tsmooth operations consume and produce.
//
// A Series enforces strictly increasing timestamps on append, so every Series
// in the system is time-ordered by construction. Smoothing never mutates a
// Series in place: kernels read an input Series and build a fresh output.
package series

import (
	"iter"

	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/internal/hash"
)

// Sample is a single observation: a timestamp in microseconds since the Unix
// epoch and a float64 value.
type Sample struct {
	Ts  int64
	Val float64
}

// Series is an append-only, time-ordered sequence of samples with an optional
// name.
//
// Invariant: timestamps are strictly increasing. Append rejects any sample
// whose timestamp is not greater than the last one, so an out-of-order input
// can never produce a partially ordered Series.
//
// A Series is not safe for concurrent mutation, but any number of goroutines
// may read a fully built Series concurrently.
type Series struct {
	name    string
	samples []Sample

	// Cached fingerprint, invalidated on append. Zero means "not computed";
	// the computed value is never zero in practice because the hash covers
	// at least the length.
	fingerprint uint64
}

// New creates an empty Series with the given name and initial capacity.
// A negative capacity is treated as zero.
func New(name string, capacity int) *Series {
	if capacity < 0 {
		capacity = 0
	}

	return &Series{
		name:    name,
		samples: make([]Sample, 0, capacity),
	}
}

// FromSamples creates a Series from an existing sample slice, validating the
// timestamp ordering. The input slice is copied.
//
// Returns errs.ErrOutOfOrderTimestamp if any timestamp is not strictly
// greater than its predecessor.
func FromSamples(name string, samples []Sample) (*Series, error) {
	s := New(name, len(samples))
	for _, sample := range samples {
		if err := s.AppendSample(sample); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FromValues creates a Series from parallel timestamp and value slices.
//
// Returns errs.ErrLengthMismatch if the slices have different lengths, or
// errs.ErrOutOfOrderTimestamp if timestamps are not strictly increasing.
func FromValues(name string, timestamps []int64, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errs.ErrLengthMismatch
	}

	s := New(name, len(timestamps))
	for i, ts := range timestamps {
		if err := s.Append(ts, values[i]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Clone returns a deep copy of the series. The copy shares no storage with
// the original, so appending to either leaves the other unchanged. The cached
// fingerprint carries over.
func (s *Series) Clone() *Series {
	out := &Series{
		name:        s.name,
		samples:     make([]Sample, len(s.samples)),
		fingerprint: s.fingerprint,
	}
	copy(out.samples, s.samples)

	return out
}

// Append adds a sample to the end of the series.
//
// Returns errs.ErrOutOfOrderTimestamp if ts is not strictly greater than the
// last timestamp; the series is left unchanged on error.
func (s *Series) Append(ts int64, val float64) error {
	if n := len(s.samples); n > 0 && ts <= s.samples[n-1].Ts {
		return errs.ErrOutOfOrderTimestamp
	}

	s.samples = append(s.samples, Sample{Ts: ts, Val: val})
	s.fingerprint = 0

	return nil
}

// AppendSample adds a sample to the end of the series, with the same ordering
// validation as Append.
func (s *Series) AppendSample(sample Sample) error {
	return s.Append(sample.Ts, sample.Val)
}

// Name returns the series name. It may be empty.
func (s *Series) Name() string {
	return s.name
}

// Len returns the number of samples in the series.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}

	return len(s.samples)
}

// At returns the sample at index i. Panics if i is out of range, matching
// slice semantics.
func (s *Series) At(i int) Sample {
	return s.samples[i]
}

// First returns the earliest sample. The second return value is false when
// the series is empty.
func (s *Series) First() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}

	return s.samples[0], true
}

// Last returns the latest sample. The second return value is false when the
// series is empty.
func (s *Series) Last() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}

	return s.samples[len(s.samples)-1], true
}

// All returns an iterator over (index, Sample) in time order.
//
// The iterator is lazy and restartable: ranging over it multiple times
// re-yields the full series each time.
//
// Example:
//
//	for i, sample := range s.All() {
//	    fmt.Printf("[%d] ts=%d, val=%f\n", i, sample.Ts, sample.Val)
//	}
func (s *Series) All() iter.Seq2[int, Sample] {
	return func(yield func(int, Sample) bool) {
		for i, sample := range s.samples {
			if !yield(i, sample) {
				return
			}
		}
	}
}

// Timestamps returns an iterator over all timestamps in time order.
func (s *Series) Timestamps() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, sample := range s.samples {
			if !yield(sample.Ts) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in time order.
func (s *Series) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, sample := range s.samples {
			if !yield(sample.Val) {
				return
			}
		}
	}
}

// Samples returns a copy of the underlying sample slice.
func (s *Series) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)

	return out
}

// ValueSlice returns a copy of all values in time order.
func (s *Series) ValueSlice() []float64 {
	out := make([]float64, len(s.samples))
	for i, sample := range s.samples {
		out[i] = sample.Val
	}

	return out
}

// TimestampSlice returns a copy of all timestamps in time order.
func (s *Series) TimestampSlice() []int64 {
	out := make([]int64, len(s.samples))
	for i, sample := range s.samples {
		out[i] = sample.Ts
	}

	return out
}

// Fingerprint returns an xxHash64 fingerprint of the series identity: its
// name, length, and every (timestamp, value) pair.
//
// Two series with identical name and contents share a fingerprint, so it can
// serve as a cache key for derived results. The fingerprint is computed
// lazily and cached until the next append.
func (s *Series) Fingerprint() uint64 {
	if s.fingerprint != 0 {
		return s.fingerprint
	}

	d := hash.NewDigest()
	d.WriteString(s.name)
	d.WriteUint64(uint64(len(s.samples)))
	for _, sample := range s.samples {
		d.WriteInt64(sample.Ts)
		d.WriteUint64(floatBits(sample.Val))
	}

	s.fingerprint = d.Sum64()

	return s.fingerprint
}
