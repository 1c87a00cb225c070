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

package data

import (
	"fmt"
	"strings"

	"github.com/fentec-project/discrete/sample"
)

// Vector wraps a slice of sampled values.
type Vector[T sample.Number] []T

// NewVector returns a new Vector instance.
func NewVector[T sample.Number](coordinates []T) Vector[T] {
	return Vector[T](coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector[T sample.Number](len int, sampler sample.Sampler[T]) (Vector[T], error) {
	vec := make([]T, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector[T sample.Number](len int, c T) Vector[T] {
	vec := make([]T, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector[T]) Copy() Vector[T] {
	return append(Vector[T](nil), v...)
}

// Counts returns the number of occurrences of each distinct value.
func (v Vector[T]) Counts() map[T]int {
	counts := make(map[T]int)
	for _, c := range v {
		counts[c]++
	}

	return counts
}

// Frequencies returns the share of the entries taken by
// each distinct value. Frequencies of an empty vector is empty.
func (v Vector[T]) Frequencies() map[T]float64 {
	freq := make(map[T]float64)
	for c, n := range v.Counts() {
		freq[c] = float64(n) / float64(len(v))
	}

	return freq
}

// Mean returns the arithmetic mean of the entries,
// or 0 for an empty vector.
func (v Vector[T]) Mean() float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, c := range v {
		sum += float64(c)
	}

	return sum / float64(len(v))
}

// Variance returns the population variance of the entries.
func (v Vector[T]) Variance() float64 {
	if len(v) == 0 {
		return 0
	}
	mean := v.Mean()
	var sum float64
	for _, c := range v {
		d := float64(c) - mean
		sum += d * d
	}

	return sum / float64(len(v))
}

// String produces a string representation of a vector.
func (v Vector[T]) String() string {
	vStr := make([]string, len(v))
	for i, c := range v {
		vStr[i] = fmt.Sprint(c)
	}

	return strings.Join(vStr, " ")
}
