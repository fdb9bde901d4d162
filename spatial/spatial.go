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

package spatial

import (
	"cmp"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrCoordinates is returned when a coordinate matrix or a query
	// point cannot be indexed.
	ErrCoordinates = errors.New("invalid coordinates")
	// ErrNeighbours is returned for a non-positive neighbour count.
	ErrNeighbours = errors.New("number of neighbours must be positive")
)

// Index answers nearest neighbour queries over a fixed set of points.
// Point ids are the row numbers of the matrix the index was built from.
type Index interface {
	// Len returns the number of indexed points.
	Len() int
	// Dims returns the dimension of the indexed points.
	Dims() int
	// Point returns the coordinates of point id.
	Point(id int) []float64
	// Nearest returns the ids of the min(k, Len()) points closest to q,
	// ordered by distance and then by id. An indexed point equal to q is
	// at distance zero, so an indexed point is among its own neighbours
	// unless more than k points coincide with it. Which points win ties
	// at the k-th distance is up to the implementation.
	Nearest(q []float64, k int) ([]int, error)
}

// Builder builds an Index over the rows of a coordinate matrix.
type Builder interface {
	Build(coords mat.Matrix) (Index, error)
}

// rows copies the rows of coords, rejecting non-finite values.
func rows(coords mat.Matrix) ([][]float64, error) {
	r, c := coords.Dims()
	if r > 0 && c == 0 {
		return nil, errors.Wrap(ErrCoordinates, "points have no dimensions")
	}

	pts := make([][]float64, r)
	for i := 0; i < r; i++ {
		pts[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			v := coords.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Wrapf(ErrCoordinates, "non-finite value at (%d, %d)", i, j)
			}
			pts[i][j] = v
		}
	}

	return pts, nil
}

func checkQuery(idx Index, q []float64, k int) error {
	if k <= 0 {
		return errors.Wrapf(ErrNeighbours, "%d", k)
	}
	if len(q) != idx.Dims() {
		return errors.Wrapf(ErrCoordinates, "query has %d dimensions, index %d", len(q), idx.Dims())
	}

	return nil
}

// neighbour is a candidate answer of a query.
type neighbour struct {
	id   int
	dist float64
}

func compareNeighbours(a, b neighbour) int {
	if c := cmp.Compare(a.dist, b.dist); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

func sqDist(a, b []float64) float64 {
	d := 0.0
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}

	return d
}
