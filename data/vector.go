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

	"github.com/envisim/gosamplr/sample"
	"gonum.org/v1/gonum/floats"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
func NewRandomVector(len int, sampler sample.Sampler) Vector {
	vec := make([]float64, len)

	for i := 0; i < len; i++ {
		vec[i] = sampler.Sample()
	}

	return NewVector(vec)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Sum returns the sum of the elements of v.
func (v Vector) Sum() float64 {
	return floats.Sum(v)
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// Quo divides v by other element-wise.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Quo(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("vectors should be of same length")
	}

	res := make(Vector, len(v))
	floats.DivTo(res, v, other)

	return res, nil
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of same length")
	}

	return floats.Dot(v, other), nil
}
