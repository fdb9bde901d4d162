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

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestMatrix(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("Error during matrix creation: %v", err)
	}

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))

	// gonum sees the same values
	d := mat.DenseCopyOf(m)
	assert.Equal(t, 5.0, d.At(1, 1))
	assert.Equal(t, 5.0, m.T().At(1, 1))
	assert.Equal(t, 3.0, m.T().At(2, 0))
}

func TestMatrix_Ragged(t *testing.T) {
	_, err := NewMatrix([]Vector{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestMatrix_Empty(t *testing.T) {
	var m Matrix
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
}

func TestNewConstantMatrix(t *testing.T) {
	m := NewConstantMatrix(2, 3, 0.5)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 0.5, m.At(1, 2))
}
