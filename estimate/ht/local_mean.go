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

package ht

import (
	"github.com/envisim/gosamplr/check"
	"github.com/envisim/gosamplr/spatial"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LocalMeanVariance returns the local mean approximation of the
// variance of the estimated total. It needs no second order inclusion
// probabilities, relying on units that are close in the auxiliary
// space to be similar instead.
//
// coords holds one row of auxiliary coordinates per sampled unit.
// builder indexes them, and for every unit the k nearest units (the
// unit itself included) form its neighbourhood, which must hold at
// least two units.
//
// See: A. Grafström and L. Schelin, "How to select representative
// samples", Scandinavian Journal of Statistics 41(2), 277-290 (2014).
func LocalMeanVariance(y, probabilities []float64, coords mat.Matrix, builder spatial.Builder, k int) (float64, error) {
	rows, _ := coords.Dims()
	if err := check.First(
		check.Lengths(y, probabilities),
		errors.Wrap(check.Sizes(len(y), rows), "auxiliary rows"),
		check.Probabilities(probabilities),
	); err != nil {
		return 0, err
	}
	if k <= 0 {
		return 0, errors.Wrapf(spatial.ErrNeighbours, "%d", k)
	}

	idx, err := builder.Build(coords)
	if err != nil {
		return 0, errors.Wrap(err, "cannot build spatial index")
	}

	yp := expand(y, probabilities)
	variance := 0.0

	for i := range yp {
		neighbours, err := idx.Nearest(idx.Point(i), k)
		if err != nil {
			return 0, errors.Wrapf(err, "cannot find neighbours of unit %d", i)
		}

		l := float64(len(neighbours))
		sum := 0.0
		for _, id := range neighbours {
			sum += yp[id]
		}
		mean := sum / l
		variance += l / (l - 1.0) * mean * mean
	}

	return variance, nil
}
