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

// Package check holds the input validators shared by the sampling
// designs and the estimators.
//
// Every validator returns nil or the first violation it finds,
// wrapping one of the sentinel errors of this package. Validators are
// meant to be chained explicitly with First at the top of a public
// function, before any randomness is consumed.
package check

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// First returns the first non-nil error of errs.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// Lengths checks that a and b hold the same number of elements.
func Lengths(a, b []float64) error {
	if len(a) != len(b) {
		return errors.Wrapf(ErrLength, "%d != %d", len(a), len(b))
	}

	return nil
}

// Sizes checks that two sizes agree.
func Sizes(a, b int) error {
	if a != b {
		return errors.Wrapf(ErrSize, "%d != %d", a, b)
	}

	return nil
}

// Probability checks that p lies in [0, 1].
func Probability(p float64) error {
	if !(p >= 0.0 && p <= 1.0) {
		return errors.Wrapf(ErrProbability, "%v not in [0, 1]", p)
	}

	return nil
}

// Probabilities checks that every element of probabilities lies in [0, 1].
func Probabilities(probabilities []float64) error {
	for i, p := range probabilities {
		if err := Probability(p); err != nil {
			return errors.Wrapf(err, "at index %d", i)
		}
	}

	return nil
}

// MatrixProbabilities checks that every element of m lies in [0, 1].
func MatrixProbabilities(m mat.Matrix) error {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := Probability(m.At(i, j)); err != nil {
				return errors.Wrapf(err, "at (%d, %d)", i, j)
			}
		}
	}

	return nil
}

// Square checks that m has n rows and n columns.
func Square(m mat.Matrix, n int) error {
	r, c := m.Dims()
	return First(
		errors.Wrap(Sizes(n, r), "rows"),
		errors.Wrap(Sizes(n, c), "columns"),
	)
}

// Eps checks that a tolerance lies in [0, 1).
func Eps(eps float64) error {
	if !(eps >= 0.0 && eps < 1.0) {
		return errors.Wrapf(ErrEps, "%v not in [0, 1)", eps)
	}

	return nil
}

// Range checks that x lies in the closed interval [lo, hi].
func Range(x, lo, hi float64) error {
	if !(x >= lo && x <= hi) {
		return errors.Wrapf(ErrRange, "%v not in [%v, %v]", x, lo, hi)
	}

	return nil
}

// ApproxEqual checks that |x - target| <= eps.
func ApproxEqual(x, target, eps float64) error {
	if !(math.Abs(x-target) <= eps) {
		return errors.Wrapf(ErrProbabilitySum, "%v differs from %v by more than %v", x, target, eps)
	}

	return nil
}

// IntegerApprox checks that x is within eps of an integer.
func IntegerApprox(x, eps float64) error {
	if !(math.Abs(x-math.Round(x)) <= eps) {
		return errors.Wrapf(ErrProbabilitySum, "%v is not an integer within %v", x, eps)
	}

	return nil
}
