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

// Package unequal includes unequal probability sampling designs.
//
// Given first order inclusion probabilities, the designs Sampford,
// Pareto and Brewer draw samples without replacement of fixed size,
// equal to the (integer) sum of the probabilities. WithReplacement
// draws a sample with replacement from draw probabilities summing to
// one. All of them satisfy sample.Design (WithReplacement through
// WithReplacementN).
//
// Every design validates its options before it takes a single value
// from the random source.
package unequal
