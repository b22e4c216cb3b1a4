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
	"fmt"
	"strconv"

	"github.com/cybrota/trees/tree"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

var chartColors = map[tree.Variant]ui.Color{
	tree.BST: ui.ColorYellow,
	tree.AVL: ui.ColorCyan,
	tree.RBT: ui.ColorRed,
}

// chartSeries groups results by variant. Values are in microseconds.
func chartSeries(results []BenchResult) (map[tree.Variant][]float64, []string) {
	series := make(map[tree.Variant][]float64, len(tree.Variants))
	var labels []string
	for _, res := range results {
		series[res.Variant] = append(series[res.Variant], float64(res.Mean.Nanoseconds())/1e3)
		if res.Variant == tree.Variants[0] {
			labels = append(labels, strconv.Itoa(res.Size))
		}
	}
	return series, labels
}

// showChart draws one bar chart per variant and blocks until q, Escape or
// Ctrl-C is pressed.
func showChart(results []BenchResult) error {
	series, labels := chartSeries(results)

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	var rows []interface{}
	for _, v := range tree.Variants {
		bc := widgets.NewBarChart()
		bc.Title = fmt.Sprintf(" %s (µs) ", v.Title())
		bc.Data = series[v]
		bc.Labels = labels
		bc.BarWidth = 6
		bc.BarGap = 2
		bc.BarColors = []ui.Color{chartColors[v]}
		bc.LabelStyles = []ui.Style{ui.NewStyle(ui.ColorWhite)}
		bc.NumStyles = []ui.Style{ui.NewStyle(ui.ColorBlack)}
		bc.NumFormatter = func(f float64) string { return strconv.FormatFloat(f, 'f', 0, 64) }
		rows = append(rows, ui.NewRow(1.0/float64(len(tree.Variants)), bc))
	}

	termWidth, termHeight := ui.TerminalDimensions()
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(rows...)
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(grid)
		}
	}
	return nil
}
