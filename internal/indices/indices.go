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

// Package indices provides the working set of population units used
// by sequential designs.
package indices

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Indices is a mutable set of unit indices. Iteration is in ascending
// order.
type Indices struct {
	rb *roaring.Bitmap
}

// NewFilled returns a set holding 0, 1, ..., n-1.
func NewFilled(n int) *Indices {
	rb := roaring.New()
	rb.AddRange(0, uint64(n))

	return &Indices{rb: rb}
}

// Len returns the number of indices in the set.
func (s *Indices) Len() int {
	return int(s.rb.GetCardinality())
}

// Contains reports whether id is in the set.
func (s *Indices) Contains(id int) bool {
	return s.rb.Contains(uint32(id))
}

// Remove removes id from the set and reports whether it was present.
func (s *Indices) Remove(id int) bool {
	return s.rb.CheckedRemove(uint32(id))
}

// List returns the indices in ascending order.
func (s *Indices) List() []int {
	list := make([]int, 0, s.Len())
	it := s.rb.Iterator()
	for it.HasNext() {
		list = append(list, int(it.Next()))
	}

	return list
}
