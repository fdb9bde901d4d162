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
	"slices"

	"gonum.org/v1/gonum/mat"
)

// BruteForce builds indexes answering queries by scanning every point.
type BruteForce struct{}

// Build implements Builder.
func (BruteForce) Build(coords mat.Matrix) (Index, error) {
	pts, err := rows(coords)
	if err != nil {
		return nil, err
	}
	_, c := coords.Dims()

	return &linear{pts: pts, dims: c}, nil
}

type linear struct {
	pts  [][]float64
	dims int
}

func (l *linear) Len() int               { return len(l.pts) }
func (l *linear) Dims() int              { return l.dims }
func (l *linear) Point(id int) []float64 { return l.pts[id] }

func (l *linear) Nearest(q []float64, k int) ([]int, error) {
	if err := checkQuery(l, q, k); err != nil {
		return nil, err
	}

	cand := make([]neighbour, len(l.pts))
	for i, p := range l.pts {
		cand[i] = neighbour{id: i, dist: sqDist(q, p)}
	}
	slices.SortFunc(cand, compareNeighbours)

	k = min(k, len(cand))
	ids := make([]int, k)
	for i := range ids {
		ids[i] = cand[i].id
	}

	return ids, nil
}
