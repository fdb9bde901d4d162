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

// Package testutil provides random sources with observable behaviour
// for tests.
package testutil

import (
	"github.com/envisim/gosamplr/sample"
)

// CountingSource wraps a Source and counts the values taken from it.
type CountingSource struct {
	Src   sample.Source
	Count int
}

// NewCountingSource wraps a seeded source.
func NewCountingSource(seed uint64) *CountingSource {
	return &CountingSource{Src: sample.NewSource(seed)}
}

// Float64 forwards to the wrapped source.
func (c *CountingSource) Float64() float64 {
	c.Count++
	return c.Src.Float64()
}

// SequenceSource replays a fixed list of values, cycling when the
// list is exhausted.
type SequenceSource struct {
	Values []float64
	pos    int
}

// Float64 returns the next value of the sequence.
func (s *SequenceSource) Float64() float64 {
	v := s.Values[s.pos%len(s.Values)]
	s.pos++

	return v
}
