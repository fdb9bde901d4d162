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

// Package spatial provides exact k nearest neighbour search over the
// rows of a coordinate matrix.
//
// Consumers depend on the Builder and Index interfaces only. KDTree
// is backed by a k-d tree and BruteForce by a linear scan; both give
// the same answers, ordered by distance and then by unit id.
package spatial
