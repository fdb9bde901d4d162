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

// Design draws a sample of unit indices from the population described
// by opts, consuming randomness from src.
//
// Every design of packages unequal and poisson has this signature, so
// callers can pick a design at runtime and treat them uniformly.
type Design func(src Source, opts *Options) ([]int, error)

// Sample draws a sample from o using design.
func (o *Options) Sample(src Source, design Design) ([]int, error) {
	return design(src, o)
}
