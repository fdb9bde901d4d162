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

// Package ht implements Horvitz-Thompson type estimators of a
// population total and of its variance.
package ht

import (
	"math"

	"github.com/envisim/gosamplr/check"
	"github.com/envisim/gosamplr/data"
	"gonum.org/v1/gonum/mat"
)

// Estimate returns the Horvitz-Thompson estimate of the population
// total, the sum of y_i / p_i over the sample.
func Estimate(y, probabilities []float64) (float64, error) {
	if err := check.First(
		check.Lengths(y, probabilities),
		check.Probabilities(probabilities),
	); err != nil {
		return 0, err
	}

	return expand(y, probabilities).Sum(), nil
}

// Ratio returns the ratio estimate of the population total of y,
// using auxiliary values x with known population total xTotal >= 0.
func Ratio(y, x, probabilities []float64, xTotal float64) (float64, error) {
	if err := check.Range(xTotal, 0.0, math.Inf(1)); err != nil {
		return 0, err
	}

	ty, err := Estimate(y, probabilities)
	if err != nil {
		return 0, err
	}
	tx, err := Estimate(x, probabilities)
	if err != nil {
		return 0, err
	}

	return ty / tx * xTotal, nil
}

// Variance returns the Horvitz-Thompson estimate of the variance of
// the estimated total. p2 holds the second order inclusion
// probabilities of the sampled units; only off-diagonal entries are
// used, and they must be positive for the result to be finite.
func Variance(y, probabilities []float64, p2 mat.Matrix) (float64, error) {
	if err := checkSecondOrder(y, probabilities, p2); err != nil {
		return 0, err
	}

	yp := expand(y, probabilities)
	n := len(yp)
	variance := 0.0

	for i := 0; i < n; i++ {
		pi := probabilities[i]
		variance += yp[i] * yp[i] * (1.0 - pi)

		for j := i + 1; j < n; j++ {
			variance += 2.0 * yp[i] * yp[j] * (1.0 - pi*probabilities[j]/p2.At(i, j))
		}
	}

	return variance, nil
}

// SYGVariance returns the Sen-Yates-Grundy estimate of the variance
// of the estimated total. It is meant for designs of fixed size, for
// other designs it may be negative.
func SYGVariance(y, probabilities []float64, p2 mat.Matrix) (float64, error) {
	if err := checkSecondOrder(y, probabilities, p2); err != nil {
		return 0, err
	}

	yp := expand(y, probabilities)
	n := len(yp)
	variance := 0.0

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := yp[i] - yp[j]
			variance -= d * d * (1.0 - probabilities[i]*probabilities[j]/p2.At(i, j))
		}
	}

	return variance, nil
}

// DevilleVariance returns Deville's approximation of the variance of
// the estimated total. It needs no second order inclusion
// probabilities. It is undefined when every probability equals 1.
func DevilleVariance(y, probabilities []float64) (float64, error) {
	if err := check.First(
		check.Lengths(y, probabilities),
		check.Probabilities(probabilities),
	); err != nil {
		return 0, err
	}

	yp := expand(y, probabilities)
	q := data.Vector(probabilities).Apply(func(p float64) float64 { return 1.0 - p })

	qsum := q.Sum()
	qsq, _ := q.Dot(q)
	ypq, _ := yp.Dot(q)
	mean := ypq / qsum

	dsum := 0.0
	for i := range yp {
		d := yp[i] - mean
		dsum += d * d * q[i]
	}

	return dsum / (1.0 - qsq/(qsum*qsum)), nil
}

func checkSecondOrder(y, probabilities []float64, p2 mat.Matrix) error {
	return check.First(
		check.Lengths(y, probabilities),
		check.Square(p2, len(y)),
		check.Probabilities(probabilities),
		check.MatrixProbabilities(p2),
	)
}

// expand returns y_i / p_i. Lengths must already be checked.
func expand(y, probabilities []float64) data.Vector {
	yp, _ := data.Vector(y).Quo(probabilities)
	return yp
}
