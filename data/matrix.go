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

	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j]. Matrix implements mat.Matrix, so it can be handed to
// anything accepting a gonum matrix.
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, fmt.Errorf("all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	res := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		res[i] = NewConstantVector(cols, c)
	}

	return res
}

// Rows returns the number of rows of matrixType m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrixType m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// Dims returns the number of rows and columns of m.
func (m Matrix) Dims() (r, c int) {
	return m.Rows(), m.Cols()
}

// At returns the element in row i and column j.
func (m Matrix) At(i, j int) float64 {
	return m[i][j]
}

// T returns the implicit transpose of m.
func (m Matrix) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}
