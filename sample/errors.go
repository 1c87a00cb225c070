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
	"github.com/pkg/errors"
)

// Messages carried by InvalidArgumentError, one per validation rule
// applied when constructing a Weighted sampler.
const (
	MsgNotNumbers      = "All elements must be numbers."
	MsgNotProbability  = "All elements must be probabilities between 0 and 1 inclusive."
	MsgLengthMismatch  = "Each number must have a probability."
	MsgSumNotOne       = "Probabilities must sum to 1."
	MsgInexactInteger  = "All integers must be exactly representable as float64."
	msgInternalFailure = "An unexpected error occurred."
)

// ErrInvalidArgument is matched (with errors.Is) by every error
// returned when a distribution fails validation.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInternalInvariant is returned by Next when the cumulative walk
// over the weights ends without selecting a value. It cannot happen
// for a sampler that passed validation.
var ErrInternalInvariant = errors.New(msgInternalFailure)

// InvalidArgumentError reports which validation rule a distribution
// violated.
type InvalidArgumentError struct {
	msg string
}

func invalidArgument(msg string) error {
	return &InvalidArgumentError{msg: msg}
}

func (e *InvalidArgumentError) Error() string {
	return e.msg
}

// Is makes every InvalidArgumentError match ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
