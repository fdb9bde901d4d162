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

	"github.com/envisim/gosamplr/internal/indices"
	"github.com/envisim/gosamplr/sample"
)

// Brewer draws a sample using Brewer's sequential design. The
// probabilities must sum to an integer n within opts.Eps.
//
// Units with p <= Eps are never selected and units with p >= 1-Eps
// are always selected. The remaining units are drawn one at a time,
// unit k with probability proportional to
//
//	p_k (m - p_k) / (m - p_k r)
//
// where m is the probability mass not yet selected and r the number
// of draws left, this one included.
func Brewer(src sample.Source, opts *sample.Options) ([]int, error) {
	n, err := opts.SampleSize()
	if err != nil {
		return nil, err
	}

	eps := opts.Eps
	mass := opts.Sum()
	eligible := indices.NewFilled(opts.Len())
	s := make([]int, 0, n)

	for id, p := range opts.Probabilities {
		if p <= eps {
			eligible.Remove(id)
		} else if 1.0-eps <= p {
			eligible.Remove(id)
			s = append(s, id)
			mass -= 1.0
		}
	}

	// rounding may force more units than the sum admits
	draws := n - len(s)

	for r := draws; r > 0; r-- {
		ids := eligible.List()
		if len(ids) == 0 {
			break
		}

		q := make([]float64, len(ids))
		qsum := 0.0
		for j, id := range ids {
			p := opts.Probabilities[id]
			q[j] = p * (mass - p) / (mass - p*float64(r))
			qsum += q[j]
		}
		for j := range q {
			q[j] /= qsum
		}

		id := ids[Draw(src, q)]
		eligible.Remove(id)
		s = append(s, id)
		mass -= opts.Probabilities[id]
	}

	slices.Sort(s)

	return s, nil
}
