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

// Package poisson implements Poisson sampling, where every unit is
// included independently with its own inclusion probability.
//
// The realized sample size is random, with expectation equal to the
// sum of the inclusion probabilities.
package poisson

import (
	"github.com/envisim/gosamplr/sample"
)

// Draw includes unit i iff a fresh uniform value is smaller than
// probabilities[i]. Exactly one value is taken from src per unit and
// the returned indices are ascending. The probabilities are not
// validated.
func Draw(src sample.Source, probabilities []float64) []int {
	s := make([]int, 0)

	for i, p := range probabilities {
		if src.Float64() < p {
			s = append(s, i)
		}
	}

	return s
}

// Sample draws a Poisson sample after validating opts. It satisfies
// sample.Design.
func Sample(src sample.Source, opts *sample.Options) ([]int, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return Draw(src, opts.Probabilities), nil
}
