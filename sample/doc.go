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

// Package sample holds what every sampling design shares: the source
// of uniform random numbers, the sampling options and the Design
// capability itself.
//
// A Source yields float64 values from [0, 1). Sources are owned by
// the caller and are never retained between calls, so independent
// repetitions of a design can run in parallel with independent
// sources.
//
// Designs are implemented in packages unequal and poisson. Any of
// them can be handed to Options.Sample as a Design.
package sample
