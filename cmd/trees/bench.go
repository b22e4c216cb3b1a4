// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cybrota/trees/tree"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/willf/bloom"
)

// Random keys are drawn from [0, keySpread*n).
const keySpread = 8

type BenchOptions struct {
	Sizes   []int
	Samples int
	Random  bool
	Seed    int64
	Quiet   bool
}

type BenchResult struct {
	Variant tree.Variant
	Size    int
	Mean    time.Duration
	Height  int
}

// generateKeys returns n distinct keys: 0..n-1 in order, or a seeded random
// draw when random is set. A Bloom filter rejects keys already drawn; a
// false positive only skips a fresh key, so the result stays duplicate free.
func generateKeys(n int, random bool, r *rand.Rand) []int {
	keys := make([]int, 0, n)
	if !random {
		for i := 0; i < n; i++ {
			keys = append(keys, i)
		}
		return keys
	}

	seen := bloom.NewWithEstimates(uint(max(n, 1)), 0.001)
	for len(keys) < n {
		k := r.Intn(keySpread * n)
		s := strconv.Itoa(k)
		if seen.TestString(s) {
			continue
		}
		seen.AddString(s)
		keys = append(keys, k)
	}
	return keys
}

// runBench builds every variant from the same keys for each size and times
// the build plus a lookup of the first tenth of the keys.
func runBench(ctx context.Context, opts BenchOptions, progress io.Writer, logger *logrus.Logger) ([]BenchResult, error) {
	if opts.Samples <= 0 {
		return nil, fmt.Errorf("samples must be positive, got %d", opts.Samples)
	}

	var bar *progressbar.ProgressBar
	if !opts.Quiet {
		bar = progressbar.NewOptions(len(opts.Sizes)*len(tree.Variants)*opts.Samples,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Benchmarking trees..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	r := rand.New(rand.NewSource(opts.Seed))
	results := make([]BenchResult, 0, len(opts.Sizes)*len(tree.Variants))

	for _, size := range opts.Sizes {
		keys := generateKeys(size, opts.Random, r)
		lookups := keys[:size/10]

		for _, v := range tree.Variants {
			var total time.Duration
			height := tree.EmptyHeight

			for i := 0; i < opts.Samples; i++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}

				elapsed, h, err := sample(v, keys, lookups)
				if err != nil {
					return results, err
				}
				total += elapsed
				height = h

				if bar != nil {
					_ = bar.Add(1)
				}
			}

			res := BenchResult{
				Variant: v,
				Size:    size,
				Mean:    total / time.Duration(opts.Samples),
				Height:  height,
			}
			logger.WithFields(logrus.Fields{
				"tree":   v.String(),
				"size":   size,
				"mean":   res.Mean,
				"height": height,
			}).Debug("bench sample")
			results = append(results, res)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return results, nil
}

func sample(v tree.Variant, keys, lookups []int) (time.Duration, int, error) {
	start := time.Now()
	t, err := newTree(v)
	if err != nil {
		return 0, 0, err
	}
	for _, k := range keys {
		if err := t.Insert(k); err != nil {
			return 0, 0, err
		}
	}
	for _, k := range lookups {
		if !t.Contains(k) {
			return 0, 0, fmt.Errorf("%s: key %d lost after insert", v, k)
		}
	}
	return time.Since(start), t.Height(), nil
}

// renderResults lays the results out as one row per size and one column per
// variant.
func renderResults(results []BenchResult, styles Styles) string {
	headers := []string{"size"}
	for _, v := range tree.Variants {
		headers = append(headers, v.Title())
	}

	var rows [][]string
	var row []string
	for i, res := range results {
		if i%len(tree.Variants) == 0 {
			row = []string{strconv.Itoa(res.Size)}
		}
		row = append(row, fmt.Sprintf("%s (h=%d)", res.Mean.Round(time.Microsecond/10), res.Height))
		if len(row) == len(headers) {
			rows = append(rows, row)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		}).
		Headers(headers...).
		Rows(rows...)

	return t.Render()
}

// writeCSV writes one record per result with the columns
// variant,size,mean_ns,height.
func writeCSV(w io.Writer, results []BenchResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"variant", "size", "mean_ns", "height"}); err != nil {
		return err
	}
	for _, res := range results {
		record := []string{
			res.Variant.String(),
			strconv.Itoa(res.Size),
			strconv.FormatInt(res.Mean.Nanoseconds(), 10),
			strconv.Itoa(res.Height),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
