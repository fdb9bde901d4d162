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

package check

import (
	"fmt"

	"github.com/pkg/errors"
)

var invalidStr = "is not valid"

// Sentinel errors reported by the validators of this package and by
// the designs and estimators built on top of them. Use errors.Is to
// match them, the returned errors carry context about the offending
// value.
var (
	ErrLength         = errors.New(fmt.Sprintf("input length %s", invalidStr))
	ErrSize           = errors.New(fmt.Sprintf("input size %s", invalidStr))
	ErrProbability    = errors.New(fmt.Sprintf("probability %s", invalidStr))
	ErrProbabilitySum = errors.New(fmt.Sprintf("probability sum %s", invalidStr))
	ErrEps            = errors.New(fmt.Sprintf("eps %s", invalidStr))
	ErrIterations     = errors.New(fmt.Sprintf("max iterations %s", invalidStr))
	ErrRange          = errors.New("value out of range")
	ErrMaxIterations  = errors.New("max iterations reached")
)

// MaxIterationsError is returned by rejective designs that did not
// accept a sample within the configured number of attempts.
type MaxIterationsError struct {
	MaxIterations int
}

func (e *MaxIterationsError) Error() string {
	return fmt.Sprintf("%s (%d)", ErrMaxIterations, e.MaxIterations)
}

// Is makes errors.Is(err, ErrMaxIterations) hold for every
// MaxIterationsError.
func (e *MaxIterationsError) Is(target error) bool {
	return target == ErrMaxIterations
}
