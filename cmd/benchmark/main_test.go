package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToRecord(t *testing.T) {
	result := BenchmarkResult{
		Mode:     ModeMetadata{Type: parallel, Workers: 4},
		Test:     TestMetadata{Name: "P03", SourceSize: 6, TargetSize: 6, SearchSpace: 46656},
		Duration: 1500 * time.Microsecond,
		Cocycles: 18,
	}

	assert.Equal(t, []string{"P03", "parallel", "4", "6", "6", "46656", "18", "1.500"}, toRecord(result))
}

func TestMeasure(t *testing.T) {
	_, cocycles := measure("P02", ModeMetadata{Type: sequential, Workers: 1})
	assert.Equal(t, 6, cocycles)

	_, cocycles = measure("P02", ModeMetadata{Type: parallel, Workers: 2})
	assert.Equal(t, 6, cocycles)
}

func TestToCsv(t *testing.T) {
	var out bytes.Buffer
	toCsv(&out, []BenchmarkResult{{Mode: ModeMetadata{Type: sequential, Workers: 1}, Test: TestMetadata{Name: "P01"}}})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "P01,sequential,1,"))
}

func TestGetTests(t *testing.T) {
	tests := getTests()

	assert.Len(t, tests, 4)
	assert.Equal(t, uint64(36), tests[0].SearchSpace)
}
