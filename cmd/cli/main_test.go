package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := newRootCommand()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestProblemCommand(t *testing.T) {
	t.Run("Listing", func(t *testing.T) {
		//** Act
		output, err := execute(t, "problem", "p01")

		//** Assert
		require.NoError(t, err)
		var report Report
		require.NoError(t, json.Unmarshal([]byte(output), &report))
		assert.Equal(t, "P01", report.Problem)
		assert.Equal(t, uint64(2), report.Count)
		require.NotNil(t, report.SearchSpace)
		assert.Equal(t, uint64(36), *report.SearchSpace)
		assert.Equal(t, [][]uint64{{0, 0}, {0, 3}}, report.Cocycles)
	})

	t.Run("Counting in parallel", func(t *testing.T) {
		output, err := execute(t, "problem", "P03", "--count", "--workers", "3")

		require.NoError(t, err)
		var report Report
		require.NoError(t, json.Unmarshal([]byte(output), &report))
		assert.Equal(t, uint64(18), report.Count)
		assert.Empty(t, report.Cocycles)
	})

	t.Run("Unknown problem", func(t *testing.T) {
		_, err := execute(t, "problem", "P42")
		assert.Error(t, err)
	})
}

func TestSolveCommand(t *testing.T) {
	//** Arrange
	directory := t.TempDir()
	file := filepath.Join(directory, "p04.yaml")
	outFile := filepath.Join(directory, "out.json")
	require.NoError(t, os.WriteFile(file, []byte(`
source:
  kind: product
  factors: [{kind: cyclic, order: 2}, {kind: cyclic, order: 2}]
target: {kind: cyclic, order: 4}
action: [identity, identity, negation, negation]
validate: true
`), 0666))

	//** Act
	_, err := execute(t, "solve", "--file", file, "--out", outFile)

	//** Assert
	require.NoError(t, err)
	bytes, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var report Report
	require.NoError(t, json.Unmarshal(bytes, &report))
	assert.Equal(t, "p04", report.Problem)
	assert.Equal(t, uint64(8), report.Count)
	assert.Len(t, report.Cocycles, 8)

	t.Run("Missing file flag", func(t *testing.T) {
		_, err := execute(t, "solve")
		assert.Error(t, err)
	})
}

func TestGroupCommand(t *testing.T) {
	output, err := execute(t, "group", "cyclic", "--order", "3")

	require.NoError(t, err)
	var table [][]uint64
	require.NoError(t, json.Unmarshal([]byte(output), &table))
	assert.Equal(t, [][]uint64{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}, table)

	_, err = execute(t, "group", "dihedral", "--order", "4")
	assert.Error(t, err)
}
