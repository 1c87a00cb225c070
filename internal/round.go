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

package internal

import "strconv"

// RoundDecimal rounds x to the given number of decimal places.
// The result is the float closest to the correctly rounded decimal
// representation of x, so values such as 0.99999999999 round to
// exactly 1 at 10 places.
func RoundDecimal(x float64, places int) float64 {
	s := strconv.FormatFloat(x, 'f', places, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// FormatFloat output of a finite value always parses;
		// NaN and Inf come back unchanged.
		return x
	}
	return r
}
