package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/limaJavier/cohomology/pkg/cohomology"
	"github.com/limaJavier/cohomology/pkg/problems"
	"github.com/samber/lo"
)

const outputFile = "benchmark_results.csv"

type ModeType int

const (
	sequential ModeType = iota
	parallel
)

var modeTypes = map[ModeType]string{
	sequential: "sequential",
	parallel:   "parallel",
}

type ModeMetadata struct {
	Type    ModeType
	Workers int
}

type TestMetadata struct {
	Name        string
	SourceSize  uint64
	TargetSize  uint64
	SearchSpace uint64
}

type BenchmarkResult struct {
	Mode     ModeMetadata
	Test     TestMetadata
	Duration time.Duration
	Cocycles int
}

func main() {
	tests := getTests()
	modes := getModes()
	results := make([]BenchmarkResult, 0, len(tests)*len(modes))

	for _, test := range tests {
		for _, mode := range modes {
			fmt.Printf("Benchmarking problem \"%v\" with mode \"%v\" and %v workers\n", test.Name, modeTypes[mode.Type], mode.Workers)

			duration, cocycles := measure(test.Name, mode)
			results = append(results, BenchmarkResult{
				Mode:     mode,
				Test:     test,
				Duration: duration,
				Cocycles: cocycles,
			})
		}
	}

	file, err := os.Create(outputFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	toCsv(file, results)
}

func getTests() []TestMetadata {
	return lo.Map(problems.Names(), func(name string, _ int) TestMetadata {
		problem := lo.Must(problems.ByName(name))
		searchSpace, _ := cohomology.SearchSpace(problem.Source, problem.Target)

		return TestMetadata{
			Name:        name,
			SourceSize:  problem.Source.Size(),
			TargetSize:  problem.Target.Size(),
			SearchSpace: searchSpace,
		}
	})
}

func getModes() []ModeMetadata {
	modes := []ModeMetadata{{Type: sequential, Workers: 1}}
	for _, workers := range lo.Uniq([]int{2, 4, runtime.NumCPU()}) {
		modes = append(modes, ModeMetadata{Type: parallel, Workers: workers})
	}
	return modes
}

func measure(name string, mode ModeMetadata) (duration time.Duration, cocycles int) {
	problem, err := problems.ByName(name)
	if err != nil {
		log.Fatalf("cannot build problem \"%v\": %v", name, err)
	}

	start := time.Now()
	switch mode.Type {
	case sequential:
		cocycles = len(cohomology.Collect(problem.Cocycles()))
	case parallel:
		collected, err := cohomology.CollectParallel(context.Background(), problem.Source, problem.Target, problem.Action, mode.Workers)
		if err != nil {
			log.Fatalf("an error occurred during the enumeration of problem \"%v\" using %v workers: %v", name, mode.Workers, err)
		}
		cocycles = len(collected)
	}

	return time.Since(start), cocycles
}

func toCsv(out io.Writer, results []BenchmarkResult) {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := []string{"Problem", "Mode", "Workers", "Source", "Target", "Candidates", "Cocycles", "Duration(ms)"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		result.Test.Name,
		modeTypes[result.Mode.Type],
		fmt.Sprintf("%d", result.Mode.Workers),
		fmt.Sprintf("%d", result.Test.SourceSize),
		fmt.Sprintf("%d", result.Test.TargetSize),
		fmt.Sprintf("%d", result.Test.SearchSpace),
		fmt.Sprintf("%d", result.Cocycles),
		fmt.Sprintf("%.3f", float64(result.Duration.Microseconds())/1000),
	}
}
