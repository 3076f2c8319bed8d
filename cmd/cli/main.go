package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/limaJavier/cohomology/pkg/algebra"
	"github.com/limaJavier/cohomology/pkg/cohomology"
	"github.com/limaJavier/cohomology/pkg/problems"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type options struct {
	count   bool
	workers int
	outFile string
}

// Report is the JSON output of the problem and solve commands
type Report struct {
	Problem     string     `json:"problem"`
	Description string     `json:"description"`
	SourceSize  uint64     `json:"sourceSize"`
	TargetSize  uint64     `json:"targetSize"`
	SearchSpace *uint64    `json:"searchSpace,omitempty"` // Absent when it does not fit in 64 bits
	Count       uint64     `json:"count"`
	Cocycles    [][]uint64 `json:"cocycles,omitempty"`
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "cohomology",
		Short:         "Enumerate the 1-cocycles of a finite group acting on another one",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&opts.count, "count", false, "Only count the cocycles instead of listing them")
	rootCmd.PersistentFlags().IntVar(&opts.workers, "workers", 1, "Amount of partitions searched at once; values greater than 1 enable the parallel search")
	rootCmd.PersistentFlags().StringVar(&opts.outFile, "out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")

	rootCmd.AddCommand(
		newProblemCommand(opts),
		newSolveCommand(opts),
		newGroupCommand(opts),
	)
	return rootCmd
}

func newProblemCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "problem <name>",
		Short:     fmt.Sprintf("Solve one of the built-in problems (%v)", strings.Join(problems.Names(), ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: problems.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := problems.ByName(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			return writeReport(cmd, opts, problem)
		},
	}
}

func newSolveCommand(opts *options) *cobra.Command {
	var filePath string

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a problem described by a JSON or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			problem, err := problems.ProblemFromFile(filePath)
			if err != nil {
				return fmt.Errorf("cannot load problem: %w", err)
			}
			return writeReport(cmd, opts, problem)
		},
	}
	solveCmd.Flags().StringVar(&filePath, "file", "", "Path to the problem file")
	_ = solveCmd.MarkFlagRequired("file")

	return solveCmd
}

func newGroupCommand(opts *options) *cobra.Command {
	var order uint64

	groupCmd := &cobra.Command{
		Use:       "group <cyclic|symmetric>",
		Short:     "Print the Cayley table of a group",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"cyclic", "symmetric"},
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := problems.BuildGroup(problems.RawGroup{Kind: args[0], Order: order})
			if err != nil {
				return err
			}
			table := lo.Map(group.Table(), func(row []algebra.Element, _ int) []uint64 { return algebra.Uint64s(row) })
			return write(cmd.OutOrStdout(), opts.outFile, table)
		},
	}
	groupCmd.Flags().Uint64Var(&order, "order", 1, "Order of a cyclic group, or amount of letters of a symmetric group")

	return groupCmd
}

func writeReport(cmd *cobra.Command, opts *options, problem problems.Problem) error {
	report, err := buildReport(cmd.Context(), opts, problem)
	if err != nil {
		return fmt.Errorf("an error occurred during the enumeration: %w", err)
	}
	return write(cmd.OutOrStdout(), opts.outFile, report)
}

func buildReport(ctx context.Context, opts *options, problem problems.Problem) (Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	report := Report{
		Problem:     problem.Name,
		Description: problem.Description,
		SourceSize:  problem.Source.Size(),
		TargetSize:  problem.Target.Size(),
	}
	if size, ok := cohomology.SearchSpace(problem.Source, problem.Target); ok {
		report.SearchSpace = &size
	}

	var cocycles []algebra.Mapping
	switch {
	case opts.count && opts.workers > 1:
		count, err := cohomology.CountParallel(ctx, problem.Source, problem.Target, problem.Action, opts.workers)
		if err != nil {
			return Report{}, err
		}
		report.Count = count
		return report, nil
	case opts.workers > 1:
		collected, err := cohomology.CollectParallel(ctx, problem.Source, problem.Target, problem.Action, opts.workers)
		if err != nil {
			return Report{}, err
		}
		cocycles = collected
	case opts.count:
		// Nothing needs to be kept in memory
		report.Count = cohomology.Count(problem.Cocycles())
		return report, nil
	default:
		cocycles = cohomology.Collect(problem.Cocycles())
	}

	report.Count = uint64(len(cocycles))
	if !opts.count {
		report.Cocycles = lo.Map(cocycles, func(cocycle algebra.Mapping, _ int) []uint64 {
			return algebra.Uint64s(cocycle.Values())
		})
	}
	return report, nil
}

// Writes value as JSON into outFile, or into out if outFile is empty
func write(out io.Writer, outFile string, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("an error occurred while building output json: %w", err)
	}

	if outFile == "" {
		_, err = fmt.Fprintln(out, string(bytes))
		return err
	}
	if err := os.WriteFile(outFile, bytes, 0666); err != nil {
		return fmt.Errorf("an error occurred while writing to the output file: %w", err)
	}
	return nil
}
