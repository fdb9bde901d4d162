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
	"sort"

	"github.com/envisim/gosamplr/check"
	"github.com/envisim/gosamplr/sample"
	"github.com/pkg/errors"
)

// WithReplacement draws n units with replacement, each unit i with
// probability opts.Probabilities[i]. The probabilities must sum to 1
// within opts.Eps.
//
// The n uniform values are sorted and merged with the cumulative
// probabilities in a single pass, so the result is ordered by unit
// index and may contain repeated units.
func WithReplacement(src sample.Source, opts *sample.Options, n int) ([]int, error) {
	if err := check.First(
		opts.Validate(),
		check.ApproxEqual(opts.Sum(), 1.0, opts.Eps),
	); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Wrapf(check.ErrSize, "negative sample size %d", n)
	}

	if n == 0 {
		return []int{}, nil
	}

	rvs := make([]float64, n)
	for i := range rvs {
		rvs[i] = src.Float64()
	}
	sort.Float64s(rvs)

	s := make([]int, 0, n)
	psum := 0.0
	r := 0

	// Every value in [psum, psum+p) selects unit id.
	for id, p := range opts.Probabilities {
		for r < n && rvs[r] < psum+p {
			s = append(s, id)
			r++
		}
		if r == n {
			break
		}
		psum += p
	}

	// values above the accumulated mass are lost to rounding
	for ; r < n; r++ {
		s = append(s, opts.Len()-1)
	}

	return s, nil
}

// WithReplacementN returns a sample.Design drawing n units with
// replacement.
func WithReplacementN(n int) sample.Design {
	return func(src sample.Source, opts *sample.Options) ([]int, error) {
		return WithReplacement(src, opts, n)
	}
}
