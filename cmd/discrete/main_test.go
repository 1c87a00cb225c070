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

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fentec-project/discrete/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	assert.Equal(t, []interface{}{int64(-1), 0.5, "x", int64(3)}, parseList("-1, 0.5,x,3"))
	assert.Nil(t, parseList(" "))
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	cfg := config{
		values:  "3,1,2,1",
		weights: "0.25,0.25,0,0.5",
		n:       100000,
		seed:    11,
	}
	require.NoError(t, run(cfg, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "1\t0.7500\t"), lines[0])
	assert.Equal(t, "2\t0.0000\t0.0000", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "3\t0.2500\t"), lines[2])
}

func TestRun_Invalid(t *testing.T) {
	var tests = []struct {
		name    string
		cfg     config
		message string
	}{
		{
			name:    "Not a number",
			cfg:     config{values: "test,1,2,3,4", weights: "0.01,0.3,0.58,0.1,0.01", n: 10},
			message: sample.MsgNotNumbers,
		},
		{
			name:    "Negative probability",
			cfg:     config{values: "0,1,2,3,4", weights: "-0.01,0.3,0.58,0.1,0.01", n: 10},
			message: sample.MsgNotProbability,
		},
		{
			name:    "Missing probability",
			cfg:     config{values: "0,1,2,3", weights: "0.01,0.3,0.58,0.1,0.01", n: 10},
			message: sample.MsgLengthMismatch,
		},
		{
			name:    "Sum above 1",
			cfg:     config{values: "0,1,2,3,4", weights: "0.01,0.6,0.58,0.1,0.01", n: 10},
			message: sample.MsgSumNotOne,
		},
		{
			name:    "Integer beyond float64 precision",
			cfg:     config{values: "9007199254740993", weights: "1", n: 10},
			message: sample.MsgInexactInteger,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := run(test.cfg, &bytes.Buffer{})
			assert.True(t, errors.Is(err, sample.ErrInvalidArgument))
			assert.EqualError(t, err, "invalid distribution: "+test.message)
		})
	}
}

func TestRun_NonPositiveDraws(t *testing.T) {
	err := run(config{values: "1", weights: "1", n: 0}, &bytes.Buffer{})
	assert.Error(t, err)
}
