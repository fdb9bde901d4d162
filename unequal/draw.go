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
	"github.com/envisim/gosamplr/sample"
)

// Draw returns a single unit index drawn with the given probabilities,
// which must sum to 1. They are not validated.
//
// A uniform value r is drawn and the first unit with a positive
// probability whose cumulative probability reaches r is returned. When
// rounding keeps the cumulative sum below r, the last unit is
// returned, so Draw always yields a valid index.
func Draw(src sample.Source, probabilities []float64) int {
	r := src.Float64()
	psum := 0.0

	for i, p := range probabilities {
		psum += p

		if p > 0 && r <= psum {
			return i
		}
	}

	return len(probabilities) - 1
}
