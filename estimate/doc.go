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

// Package estimate includes estimators of population totals and of
// their variances, computed from a sample and the inclusion
// probabilities of the design that drew it.
//
// Estimators live in subpackages by family. Subpackage ht holds the
// Horvitz-Thompson estimator, the ratio estimator and several
// variance estimators for the Horvitz-Thompson total: the classical
// one and the Sen-Yates-Grundy one, which need second order inclusion
// probabilities, and the Deville and local mean approximations, which
// do not.
//
// All estimators take values index-aligned with the sample, not with
// the population.
package estimate
