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

// Command discrete draws values from a discrete probability
// distribution and reports how often each value was drawn.
//
//	discrete -values=-1,0,1,2,3 -weights=0.01,0.3,0.58,0.1,0.01 -n=1000000
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fentec-project/discrete/data"
	"github.com/fentec-project/discrete/sample"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

type config struct {
	values  string
	weights string
	n       int
	seed    uint64
}

func main() {
	var cfg config
	flag.StringVar(&cfg.values, "values", "-1,0,1,2,3", "Comma-separated numbers to sample from")
	flag.StringVar(&cfg.weights, "weights", "0.01,0.3,0.58,0.1,0.01", "Comma-separated probability of each number")
	flag.IntVar(&cfg.n, "n", 1000000, "Number of values to draw")
	flag.Uint64Var(&cfg.seed, "seed", 0, "Random seed (0 uses the process-wide generator)")
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		glog.Exitf("discrete: %v", err)
	}
}

func run(cfg config, out io.Writer) error {
	if cfg.n <= 0 {
		return errors.Errorf("number of draws must be positive, got %d", cfg.n)
	}

	var opts []sample.Option
	if cfg.seed != 0 {
		opts = append(opts, sample.WithSource(sample.NewSeededSource(cfg.seed)))
	}

	sampler, err := sample.NewWeightedFromAny(parseList(cfg.values), parseList(cfg.weights), opts...)
	if err != nil {
		return errors.Wrap(err, "invalid distribution")
	}

	glog.V(1).Infof("Drawing %d values from %d outcomes", cfg.n, sampler.Len())
	draws, err := data.NewRandomVector[float64](cfg.n, sampler)
	if err != nil {
		return errors.Wrap(err, "sampling failed")
	}

	weights := sampler.Weights()
	expected := make(map[float64]float64)
	for i, v := range sampler.Values() {
		expected[v] += weights[i]
	}
	keys := make([]float64, 0, len(expected))
	for v := range expected {
		keys = append(keys, v)
	}
	sort.Float64s(keys)

	freq := draws.Frequencies()
	for _, v := range keys {
		if _, err := fmt.Fprintf(out, "%v\t%.4f\t%.4f\n", v, expected[v], freq[v]); err != nil {
			return err
		}
	}

	return nil
}

// parseList splits a comma-separated list into numbers. Elements that
// are not numbers are kept as strings so the sampler rejects them.
func parseList(s string) []interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	fields := strings.Split(s, ",")
	list := make([]interface{}, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if n, err := strconv.ParseInt(f, 10, 64); err == nil {
			list[i] = n
		} else if x, err := strconv.ParseFloat(f, 64); err == nil {
			list[i] = x
		} else {
			list[i] = f
		}
	}

	return list
}
