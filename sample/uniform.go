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
	"math/rand/v2"
)

// Source samples random values from the interval [0, 1).
//
// *rand.Rand from math/rand/v2 satisfies Source.
type Source interface {
	Float64() float64
}

// pcgIncrement is the second PCG seed word derived from the first.
const pcgIncrement = 0x9e3779b97f4a7c15

// NewSource returns a seeded Source backed by a PCG generator.
// Equal seeds produce equal streams.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgIncrement))
}

// Sampler draws values from some probability distribution.
type Sampler interface {
	Sample() float64
}

// Uniform samples random values from the interval [0, max).
type Uniform struct {
	src Source
	max float64
}

// NewUniform returns an instance of the Uniform sampler.
// It accepts an upper bound on the sampled values.
func NewUniform(src Source, max float64) *Uniform {
	return &Uniform{
		src: src,
		max: max,
	}
}

// Sample draws a value from [0, max).
func (u *Uniform) Sample() float64 {
	return u.src.Float64() * u.max
}
