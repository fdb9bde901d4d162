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
	"testing"

	"github.com/envisim/gosamplr/sample"
	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	l := 3
	sampler := sample.NewUniform(sample.NewSource(1), 10)

	x := NewRandomVector(l, sampler)
	y := NewRandomVector(l, sampler)

	dot, err := x.Dot(y)
	if err != nil {
		t.Fatalf("Error during dot product: %v", err)
	}
	check := 0.0
	for i := 0; i < l; i++ {
		check += x[i] * y[i]
	}
	assert.InDelta(t, check, dot, 1e-12, "dot product should be computed correctly")

	scaled := x.Apply(func(v float64) float64 { return 2 * v })
	quo, err := scaled.Quo(x)
	if err != nil {
		t.Fatalf("Error during division: %v", err)
	}
	for i := 0; i < l; i++ {
		assert.InDelta(t, 2.0, quo[i], 1e-12, "coordinates should divide correctly")
	}
	assert.NotSame(t, &scaled[0], &x[0], "Apply should not share memory")

	_, err = x.Dot(NewConstantVector(l+1, 1))
	assert.Error(t, err)
	_, err = x.Quo(NewConstantVector(l+1, 1))
	assert.Error(t, err)
}

func TestVector_Sum(t *testing.T) {
	v := NewVector([]float64{0.5, 1.5, 2})
	assert.Equal(t, 4.0, v.Sum())
	assert.Equal(t, 0.0, Vector{}.Sum())
	assert.Equal(t, Vector{0.5, -0.5, -1}, v.Apply(func(x float64) float64 { return 1 - x }))
}
