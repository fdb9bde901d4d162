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

package unequal

import (
	"math"
	"slices"
	"sort"

	"github.com/envisim/gosamplr/sample"
)

// Pareto draws a sample using Rosén's Pareto design. The
// probabilities must sum to an integer n within opts.Eps.
//
// Every unit gets a ranking key u(1-p)/(p(1-u)) from its own uniform
// value u, and the n units with the smallest keys are selected. Units
// with p < Eps or u > 1-Eps never win a place by their key.
//
// See: B. Rosén, "A user's guide to Pareto pi-ps sampling",
// R & D Report 2000:6, Statistics Sweden.
func Pareto(src sample.Source, opts *sample.Options) ([]int, error) {
	n, err := opts.SampleSize()
	if err != nil {
		return nil, err
	}

	eps := opts.Eps
	keys := make([]float64, opts.Len())
	for i, p := range opts.Probabilities {
		u := src.Float64()

		if 1.0-eps < u || p < eps {
			keys[i] = math.Inf(1)
			continue
		}

		q := (u * (1.0 - p)) / (p * (1.0 - u))
		if math.IsNaN(q) {
			q = math.Inf(1)
		}
		keys[i] = q
	}

	units := make([]int, opts.Len())
	for i := range units {
		units[i] = i
	}
	sort.SliceStable(units, func(a, b int) bool {
		return keys[units[a]] < keys[units[b]]
	})

	s := units[:n]
	slices.Sort(s)

	return s, nil
}
