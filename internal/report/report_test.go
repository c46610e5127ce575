package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/framealloc/internal/bench"
)

func sampleResults() []bench.Result {
	return []bench.Result{
		{Scenario: "pool", Allocator: bench.AllocatorCustom, Samples: []bench.Sample{
			{Frame: 0, Elapsed: 100 * time.Nanosecond},
			{Frame: 1, Elapsed: 300 * time.Nanosecond, Dropped: 2},
		}},
		{Scenario: "pool", Allocator: bench.AllocatorHeap, Samples: []bench.Sample{
			{Frame: 0, Elapsed: 400 * time.Nanosecond},
			{Frame: 1, Elapsed: 400 * time.Nanosecond},
		}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResults()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, CSVHeader, records[0])
	assert.Equal(t, []string{"pool", "custom", "1", "300", "2"}, records[2])
	assert.Equal(t, []string{"pool", "heap", "0", "400", "0"}, records[3])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, strings.Join(CSVHeader, ",")+"\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleResults(), false)

	out := buf.String()
	assert.Contains(t, out, "Scenario")
	assert.Contains(t, out, "custom")
	assert.Contains(t, out, "heap")
	assert.Contains(t, out, "200ns", "custom mean")
	assert.Contains(t, out, "800ns", "heap total")
	assert.NotContains(t, out, "\x1b[", "colour disabled")
}

func TestSpeedup(t *testing.T) {
	s := Speedup(sampleResults())
	require.Contains(t, s, "pool")
	assert.InDelta(t, 2.0, s["pool"], 1e-9)

	assert.Empty(t, Speedup(sampleResults()[:1]), "no heap result to compare with")
}

func TestFormatSpeedup(t *testing.T) {
	assert.Equal(t, "2.00x", FormatSpeedup(2, false))
	assert.Equal(t, "0.50x", FormatSpeedup(0.5, false))
}
