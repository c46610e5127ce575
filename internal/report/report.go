// Package report writes benchmark results as CSV and as a console table.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/pavanmanishd/framealloc/internal/bench"
)

// CSVHeader is the first record written by WriteCSV.
var CSVHeader = []string{"scenario", "allocator", "frame", "nanoseconds", "dropped"}

// WriteCSV writes one record per frame sample.
func WriteCSV(w io.Writer, results []bench.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, res := range results {
		for _, smp := range res.Samples {
			record := []string{
				res.Scenario,
				res.Allocator,
				strconv.Itoa(smp.Frame),
				strconv.FormatInt(smp.Elapsed.Nanoseconds(), 10),
				strconv.Itoa(smp.Dropped),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable renders one row per result with its frame statistics. The
// allocator with the lowest mean frame time of each scenario is highlighted
// when colored is set.
func WriteTable(w io.Writer, results []bench.Result, colored bool) {
	fastest := make(map[string]time.Duration)
	for _, res := range results {
		mean := res.Summary().Mean
		if cur, ok := fastest[res.Scenario]; !ok || mean < cur {
			fastest[res.Scenario] = mean
		}
	}

	win := color.New(color.FgGreen, color.Bold)
	lose := color.New(color.FgRed)
	if !colored {
		win.DisableColor()
		lose.DisableColor()
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scenario", "Allocator", "Frames", "Min", "Mean", "Max", "Total", "Dropped"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)

	for _, res := range results {
		sum := res.Summary()
		mark := lose
		if sum.Mean == fastest[res.Scenario] {
			mark = win
		}
		table.Append([]string{
			res.Scenario,
			mark.Sprint(res.Allocator),
			strconv.Itoa(sum.Frames),
			sum.Min.String(),
			sum.Mean.String(),
			sum.Max.String(),
			sum.Total.String(),
			strconv.Itoa(sum.Dropped),
		})
	}
	table.Render()
}

// Speedup returns how many times faster custom was than heap for each
// scenario present in results with both allocators.
func Speedup(results []bench.Result) map[string]float64 {
	custom := make(map[string]time.Duration)
	heap := make(map[string]time.Duration)
	for _, res := range results {
		switch res.Allocator {
		case bench.AllocatorCustom:
			custom[res.Scenario] = res.Summary().Total
		case bench.AllocatorHeap:
			heap[res.Scenario] = res.Summary().Total
		}
	}

	out := make(map[string]float64)
	for scenario, c := range custom {
		h, ok := heap[scenario]
		if !ok || c == 0 {
			continue
		}
		out[scenario] = float64(h) / float64(c)
	}
	return out
}

// FormatSpeedup renders a speedup factor, green when custom won.
func FormatSpeedup(f float64, colored bool) string {
	c := color.New(color.FgRed)
	if f >= 1 {
		c = color.New(color.FgGreen)
	}
	if !colored {
		c.DisableColor()
	}
	return c.Sprint(fmt.Sprintf("%.2fx", f))
}
