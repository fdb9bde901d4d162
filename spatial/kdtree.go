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
	"gonum.org/v1/gonum/spatial/kdtree"
)

// KDTree builds k-d tree indexes.
type KDTree struct{}

// Build implements Builder.
func (KDTree) Build(coords mat.Matrix) (Index, error) {
	pts, err := rows(coords)
	if err != nil {
		return nil, err
	}
	_, c := coords.Dims()

	us := make(units, len(pts))
	for i, p := range pts {
		us[i] = unit{id: i, coords: kdtree.Point(p)}
	}

	t := &tree{pts: pts, dims: c}
	if len(us) > 0 {
		t.tree = kdtree.New(us, false)
	}

	return t, nil
}

type tree struct {
	tree *kdtree.Tree
	pts  [][]float64
	dims int
}

func (t *tree) Len() int               { return len(t.pts) }
func (t *tree) Dims() int              { return t.dims }
func (t *tree) Point(id int) []float64 { return t.pts[id] }

func (t *tree) Nearest(q []float64, k int) ([]int, error) {
	if err := checkQuery(t, q, k); err != nil {
		return nil, err
	}
	if t.tree == nil {
		return []int{}, nil
	}

	keep := kdtree.NewNKeeper(k)
	t.tree.NearestSet(keep, unit{id: -1, coords: kdtree.Point(q)})

	found := make([]neighbour, 0, k)
	for _, c := range keep.Heap {
		// the keeper starts with a sentinel holding no point
		if c.Comparable == nil {
			continue
		}
		found = append(found, neighbour{id: c.Comparable.(unit).id, dist: c.Dist})
	}
	slices.SortFunc(found, compareNeighbours)

	ids := make([]int, len(found))
	for i, n := range found {
		ids[i] = n.id
	}

	return ids, nil
}

// unit is an indexed point that remembers its row number.
type unit struct {
	id     int
	coords kdtree.Point
}

func (u unit) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return u.coords.Compare(c.(unit).coords, d)
}

func (u unit) Dims() int { return len(u.coords) }

func (u unit) Distance(c kdtree.Comparable) float64 {
	return u.coords.Distance(c.(unit).coords)
}

type units []unit

func (u units) Index(i int) kdtree.Comparable         { return u[i] }
func (u units) Len() int                              { return len(u) }
func (u units) Pivot(d kdtree.Dim) int                { return plane{units: u, dim: d}.Pivot() }
func (u units) Slice(start, end int) kdtree.Interface { return u[start:end] }

// plane orders units along one dimension for median partitioning.
type plane struct {
	units
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool { return p.units[i].coords[p.dim] < p.units[j].coords[p.dim] }
func (p plane) Pivot() int         { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.units = p.units[start:end]
	return p
}
func (p plane) Swap(i, j int) { p.units[i], p.units[j] = p.units[j], p.units[i] }
