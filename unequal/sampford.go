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
	"slices"

	"github.com/envisim/gosamplr/check"
	"github.com/envisim/gosamplr/poisson"
	"github.com/envisim/gosamplr/sample"
	"gonum.org/v1/gonum/floats"
)

// Sampford draws a sample using Sampford's rejective design. The
// probabilities must sum to an integer n within opts.Eps.
//
// Each attempt draws a Poisson sample from the probabilities and an
// extra unit with probabilities normalized to sum 1. The attempt is
// accepted when the Poisson sample holds exactly n-1 units and does not
// contain the extra unit. After opts.MaxIterations rejected attempts a
// *check.MaxIterationsError is returned.
//
// Units with p exactly 1 are in every sample and units with p exactly 0
// in none, so they are set aside before the attempts and the design
// runs on the remaining units.
func Sampford(src sample.Source, opts *sample.Options) ([]int, error) {
	n, err := opts.SampleSize()
	if err != nil {
		return nil, err
	}

	s := make([]int, 0, n)
	ids := make([]int, 0, opts.Len())
	probs := make([]float64, 0, opts.Len())

	for id, p := range opts.Probabilities {
		if p == 1.0 {
			s = append(s, id)
		} else if p > 0 {
			ids = append(ids, id)
			probs = append(probs, p)
		}
	}

	m := n - len(s)
	if m <= 0 || len(ids) == 0 {
		return s, nil
	}

	psum := floats.Sum(probs)
	norm := make([]float64, len(probs))
	floats.ScaleTo(norm, 1/psum, probs)

	if m == 1 {
		s = append(s, ids[Draw(src, norm)])
		slices.Sort(s)
		return s, nil
	}

	for i := 0; i < opts.MaxIterations; i++ {
		ps := poisson.Draw(src, probs)
		if len(ps) != m-1 {
			continue
		}

		a := Draw(src, norm)

		// ps is ascending, only the first position >= a can equal a
		pos, found := slices.BinarySearch(ps, a)
		if found {
			continue
		}
		ps = slices.Insert(ps, pos, a)

		for _, j := range ps {
			s = append(s, ids[j])
		}
		slices.Sort(s)

		return s, nil
	}

	return nil, &check.MaxIterationsError{MaxIterations: opts.MaxIterations}
}
