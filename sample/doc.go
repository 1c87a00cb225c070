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

// Package sample includes samplers for drawing random values
// from a fixed discrete probability distribution.
//
// Package sample provides the Sampler interface along with the
// Weighted implementation of this interface. A Weighted sampler is
// built once from a list of numbers and a parallel list of
// probabilities. The distribution is validated on construction, and
// every call to Next afterwards returns one of the numbers such that,
// over many draws, each number appears with its assigned probability.
//
// Randomness is taken from a Source. By default a process-wide
// generator is used; NewSeededSource and NewKeyedSource give
// reproducible sequences of draws, which is useful for testing.
package sample
