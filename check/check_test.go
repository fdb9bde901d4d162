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

package check_test

import (
	"math"
	"testing"

	"github.com/envisim/gosamplr/check"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestValidators(t *testing.T) {
	var tests = []struct {
		name   string
		err    error
		expect error
	}{
		{name: "lengths ok", err: check.Lengths([]float64{1}, []float64{2})},
		{name: "lengths", err: check.Lengths([]float64{1}, nil), expect: check.ErrLength},
		{name: "sizes", err: check.Sizes(2, 3), expect: check.ErrSize},
		{name: "probabilities ok", err: check.Probabilities([]float64{0, 0.5, 1})},
		{name: "probability above one", err: check.Probabilities([]float64{0.5, 1.01}), expect: check.ErrProbability},
		{name: "probability NaN", err: check.Probabilities([]float64{math.NaN()}), expect: check.ErrProbability},
		{name: "matrix probability", err: check.MatrixProbabilities(mat.NewDense(1, 2, []float64{0.5, -1})), expect: check.ErrProbability},
		{name: "square", err: check.Square(mat.NewDense(2, 3, nil), 2), expect: check.ErrSize},
		{name: "square ok", err: check.Square(mat.NewDense(2, 2, nil), 2)},
		{name: "eps ok", err: check.Eps(0)},
		{name: "eps one", err: check.Eps(1), expect: check.ErrEps},
		{name: "range", err: check.Range(-1, 0, math.Inf(1)), expect: check.ErrRange},
		{name: "range infinite", err: check.Range(math.Inf(1), 0, math.Inf(1))},
		{name: "approx equal ok", err: check.ApproxEqual(0.9999999999999999, 1, 1e-12)},
		{name: "approx equal", err: check.ApproxEqual(0.99, 1, 1e-12), expect: check.ErrProbabilitySum},
		{name: "integer ok", err: check.IntegerApprox(5.0000000000001, 1e-9)},
		{name: "integer", err: check.IntegerApprox(4.5, 1e-9), expect: check.ErrProbabilitySum},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.expect == nil {
				assert.NoError(t, test.err)
				return
			}
			assert.True(t, errors.Is(test.err, test.expect), "unexpected error %v", test.err)
		})
	}
}

func TestFirst(t *testing.T) {
	assert.NoError(t, check.First(nil, nil))

	err := check.First(nil, check.Sizes(1, 2), check.Eps(2))
	assert.True(t, errors.Is(err, check.ErrSize))
	assert.False(t, errors.Is(err, check.ErrEps))
}

func TestMaxIterationsError(t *testing.T) {
	var err error = &check.MaxIterationsError{MaxIterations: 5}
	assert.True(t, errors.Is(err, check.ErrMaxIterations))
	assert.Contains(t, err.Error(), "5")
}
