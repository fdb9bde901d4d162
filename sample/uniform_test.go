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

package sample_test

import (
	"testing"

	"github.com/envisim/gosamplr/sample"
	"github.com/stretchr/testify/assert"
)

func testSource(t *testing.T, src sample.Source) {
	n := 10000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := src.Float64()
		assert.True(t, v >= 0 && v < 1, "value %v not in [0, 1)", v)
		sum += v
	}
	mean := sum / float64(n)
	assert.InDelta(t, 0.5, mean, 0.02, "mean of uniform values should be close to 0.5")
}

func TestSources(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(3 * i)
	}

	var tests = []struct {
		name string
		src  sample.Source
	}{
		{name: "PCG", src: sample.NewSource(2018)},
		{name: "salsa20", src: sample.NewUniformDet(&key)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testSource(t, test.src)
		})
	}
}

func TestNewSource_Deterministic(t *testing.T) {
	a, b := sample.NewSource(5), sample.NewSource(5)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestUniformDet(t *testing.T) {
	var key, other [32]byte
	for i := range key {
		key[i] = byte(i)
		other[i] = byte(i + 1)
	}

	a, b, c := sample.NewUniformDet(&key), sample.NewUniformDet(&key), sample.NewUniformDet(&other)
	differs := false
	// crosses several keystream refills
	for i := 0; i < 500; i++ {
		va := a.Float64()
		assert.Equal(t, va, b.Float64())
		if va != c.Float64() {
			differs = true
		}
	}
	assert.True(t, differs, "different keys should give different streams")
}

func TestUniform(t *testing.T) {
	u := sample.NewUniform(sample.NewSource(1), 10)
	for i := 0; i < 1000; i++ {
		v := u.Sample()
		assert.True(t, v >= 0 && v < 10)
	}
}
