/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"math"

	"github.com/fentec-project/discrete/internal"
	"github.com/golang/glog"
)

// sumPlaces is the number of decimal places the sum of the
// probabilities is rounded to before it is compared with 1.
const sumPlaces = 10

const (
	twoTo63 = 1 << 63
	twoTo64 = 1 << 64
)

// Number is satisfied by every integer and floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sampler samples random values of type T.
type Sampler[T Number] interface {
	Sample() (T, error)
}

// Option configures a Weighted sampler.
type Option func(*options)

type options struct {
	src Source
}

// WithSource makes the sampler draw its randomness from src instead
// of the process-wide generator. A nil src is ignored.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.src = src
		}
	}
}

// Weighted samples values from a fixed discrete probability
// distribution. Each value is paired positionally with the
// probability of drawing it. Duplicate values are allowed and
// are treated as separate entries.
type Weighted[T Number] struct {
	values  []T
	weights []float64
	src     Source
}

// NewWeighted returns an instance of the Weighted sampler.
// It accepts the values to be sampled and the probability of each
// value. Both slices are copied. An error matching ErrInvalidArgument
// is returned if some probability is not in [0, 1], if the slices
// differ in length, or if the probabilities do not sum to 1.
func NewWeighted[T Number](values []T, weights []float64, opts ...Option) (*Weighted[T], error) {
	for _, w := range weights {
		if !isProbability(w) {
			return nil, invalidArgument(MsgNotProbability)
		}
	}
	if len(values) != len(weights) {
		return nil, invalidArgument(MsgLengthMismatch)
	}
	if !sumsToOne(weights) {
		return nil, invalidArgument(MsgSumNotOne)
	}

	o := options{src: globalSource}
	for _, opt := range opts {
		opt(&o)
	}

	w := &Weighted[T]{
		values:  append([]T(nil), values...),
		weights: append([]float64(nil), weights...),
		src:     o.src,
	}
	glog.V(2).Infof("Weighted sampler over %d values", len(w.values))

	return w, nil
}

// NewWeightedFromAny returns an instance of the Weighted sampler
// for values and probabilities whose types are only known at run
// time, e.g. decoded from JSON. Every element of values and weights
// must be a Go integer or floating-point number; bool, string and nil
// elements are rejected. The values are converted to float64, and an
// integer that float64 cannot represent exactly is rejected as well.
func NewWeightedFromAny(values, weights []interface{}, opts ...Option) (*Weighted[float64], error) {
	vals := make([]float64, len(values))
	for i, v := range values {
		f, ok := toFloat(v)
		if !ok {
			return nil, invalidArgument(MsgNotNumbers)
		}
		if !exactFloat(v, f) {
			return nil, invalidArgument(MsgInexactInteger)
		}
		vals[i] = f
	}

	probs := make([]float64, len(weights))
	for i, w := range weights {
		f, ok := toFloat(w)
		if !ok || !isProbability(f) {
			return nil, invalidArgument(MsgNotProbability)
		}
		probs[i] = f
	}

	return NewWeighted(vals, probs, opts...)
}

// Next samples a value from the distribution.
//
// A uniform value r in [0, 1) is drawn and the probabilities are
// summed in the order they were given; the value at which the running
// sum first exceeds r is returned. Values with probability 0 are
// never returned.
func (w *Weighted[T]) Next() (T, error) {
	src := w.src
	if src == nil {
		src = globalSource
	}
	r := src.Float64()

	var cum float64
	for i, p := range w.weights {
		cum += p
		if r < cum {
			return w.values[i], nil
		}
	}

	var zero T
	return zero, ErrInternalInvariant
}

// Sample is equivalent to Next.
func (w *Weighted[T]) Sample() (T, error) {
	return w.Next()
}

// Len returns the number of values in the distribution.
func (w *Weighted[T]) Len() int {
	return len(w.values)
}

// Values returns a copy of the values of the distribution.
func (w *Weighted[T]) Values() []T {
	return append([]T(nil), w.values...)
}

// Weights returns a copy of the probabilities of the distribution.
func (w *Weighted[T]) Weights() []float64 {
	return append([]float64(nil), w.weights...)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1 // false for NaN
}

func sumsToOne(weights []float64) bool {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	return internal.RoundDecimal(sum, sumPlaces) == 1
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return math.NaN(), false
	}
}

// exactFloat reports whether f, obtained from the integer or float v,
// converts back to v. Float conversions are always exact.
func exactFloat(v interface{}, f float64) bool {
	switch n := v.(type) {
	case int:
		return f < twoTo63 && f >= -twoTo63 && int(f) == n
	case int64:
		return f < twoTo63 && f >= -twoTo63 && int64(f) == n
	case uint:
		return f < twoTo64 && uint(f) == n
	case uint64:
		return f < twoTo64 && uint64(f) == n
	default:
		// narrower integers fit in the 53-bit mantissa
		return true
	}
}
