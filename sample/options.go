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

package sample

import (
	"math"

	"github.com/envisim/gosamplr/check"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultEps is the tolerance used when none is configured.
	DefaultEps = 1e-12
	// DefaultMaxIterations bounds rejective designs when no bound is
	// configured.
	DefaultMaxIterations = 1000
)

var optionsValidate = validator.New()

// Options configures a single draw of a sampling design. A design
// never mutates the Options it is given.
type Options struct {
	// Probabilities are the first order inclusion probabilities of the
	// population units, or draw probabilities for designs with
	// replacement.
	Probabilities []float64
	// Eps is the numerical tolerance used by sum checks and by designs
	// that treat probabilities close to 0 or 1 specially.
	Eps float64 `validate:"gte=0,lt=1"`
	// MaxIterations bounds the number of attempts of rejective designs.
	MaxIterations int `validate:"gt=0"`
}

// Option modifies Options built by NewOptions.
type Option func(*Options)

// WithEps sets the numerical tolerance.
func WithEps(eps float64) Option {
	return func(o *Options) {
		o.Eps = eps
	}
}

// WithMaxIterations sets the bound on attempts of rejective designs.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// NewOptions returns validated Options for the given probabilities,
// using DefaultEps and DefaultMaxIterations unless overridden.
func NewOptions(probabilities []float64, opts ...Option) (*Options, error) {
	o := &Options{
		Probabilities: probabilities,
		Eps:           DefaultEps,
		MaxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks the tolerance, the iteration bound and that every
// probability lies in [0, 1].
func (o *Options) Validate() error {
	if err := optionsValidate.Struct(o); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].StructField() {
			case "Eps":
				return check.Eps(o.Eps)
			case "MaxIterations":
				return errors.Wrapf(check.ErrIterations, "%d is not positive", o.MaxIterations)
			}
		}
		return errors.Wrap(err, "invalid options")
	}

	return check.Probabilities(o.Probabilities)
}

// Len returns the population size.
func (o *Options) Len() int {
	return len(o.Probabilities)
}

// Sum returns the sum of the probabilities.
func (o *Options) Sum() float64 {
	return floats.Sum(o.Probabilities)
}

// SampleSize validates o, checks that the probabilities sum to an
// integer within Eps and returns that integer.
func (o *Options) SampleSize() (int, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	sum := o.Sum()
	if err := check.IntegerApprox(sum, o.Eps); err != nil {
		return 0, err
	}

	return int(math.Round(sum)), nil
}
