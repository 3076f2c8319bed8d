package problems

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/cohomology/pkg/algebra"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// RawGroup describes a group by kind: "cyclic" and "symmetric" take an order, "table" a
// literal Cayley table and "product" exactly two factors
type RawGroup struct {
	Kind    string
	Order   uint64
	Table   [][]uint64
	Factors []RawGroup
}

// RawProblem is the file representation of a problem. Every action entry is either
// "identity", "negation" or the explicit list of images of the target's elements.
// An empty action stands for the trivial one.
type RawProblem struct {
	Name     string
	Source   RawGroup
	Target   RawGroup
	Action   []any
	Validate bool
}

// ProblemFromFile reads a problem from a JSON file, or a YAML one if its extension is .yaml or .yml
func ProblemFromFile(file string) (Problem, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Problem{}, fmt.Errorf("cannot read problem file: %w", err)
	}

	var inputMap map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &inputMap)
	default:
		err = json.Unmarshal(bytes, &inputMap)
	}
	if err != nil {
		return Problem{}, fmt.Errorf("cannot parse problem file: %w", err)
	}

	var rawProblem RawProblem
	if err := mapstructure.Decode(inputMap, &rawProblem); err != nil {
		return Problem{}, fmt.Errorf("cannot decode problem file: %w", err)
	}
	if rawProblem.Name == "" {
		rawProblem.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}

	return ProcessRawProblem(rawProblem)
}

func ProcessRawProblem(rawProblem RawProblem) (Problem, error) {
	source, err := BuildGroup(rawProblem.Source)
	if err != nil {
		return Problem{}, fmt.Errorf("source: %w", err)
	}
	target, err := BuildGroup(rawProblem.Target)
	if err != nil {
		return Problem{}, fmt.Errorf("target: %w", err)
	}

	action, err := buildAction(rawProblem.Action, source, target)
	if err != nil {
		return Problem{}, fmt.Errorf("action: %w", err)
	}
	if rawProblem.Validate {
		if err := action.Validate(); err != nil {
			return Problem{}, fmt.Errorf("action: %w", err)
		}
	}

	return Problem{
		Name:        rawProblem.Name,
		Description: fmt.Sprintf("%v acting on %v", describe(rawProblem.Source), describe(rawProblem.Target)),
		Source:      source,
		Target:      target,
		Action:      action,
	}, nil
}

// BuildGroup builds the group described by rawGroup
func BuildGroup(rawGroup RawGroup) (algebra.FiniteGroup, error) {
	switch strings.ToLower(rawGroup.Kind) {
	case "cyclic":
		if rawGroup.Order == 0 {
			return algebra.FiniteGroup{}, errors.New("cyclic group must have a positive order")
		}
		return algebra.CyclicGroup(rawGroup.Order), nil
	case "symmetric":
		return algebra.SymmetricGroup(rawGroup.Order), nil
	case "table":
		if len(rawGroup.Table) == 0 {
			return algebra.FiniteGroup{}, fmt.Errorf("group table must not be empty: %w", algebra.ErrInvalidGroupTable)
		}
		table := make([][]algebra.Element, len(rawGroup.Table))
		for i, row := range rawGroup.Table {
			table[i] = algebra.ElementsOf(row...)
		}
		return algebra.NewFiniteGroup(table)
	case "product":
		if len(rawGroup.Factors) != 2 {
			return algebra.FiniteGroup{}, fmt.Errorf("direct product takes exactly 2 factors, got %d", len(rawGroup.Factors))
		}
		first, err := BuildGroup(rawGroup.Factors[0])
		if err != nil {
			return algebra.FiniteGroup{}, err
		}
		second, err := BuildGroup(rawGroup.Factors[1])
		if err != nil {
			return algebra.FiniteGroup{}, err
		}
		return algebra.DirectProduct(first, second).FiniteGroup, nil
	default:
		return algebra.FiniteGroup{}, fmt.Errorf("unknown group kind %q", rawGroup.Kind)
	}
}

func buildAction(rawAction []any, source, target algebra.FiniteGroup) (algebra.GroupAction, error) {
	if len(rawAction) == 0 {
		return algebra.TrivialAction(source, target), nil
	}

	mapping := make([]algebra.Mapping, 0, len(rawAction))
	for i, rawEntry := range rawAction {
		if name, ok := rawEntry.(string); ok {
			switch strings.ToLower(name) {
			case "identity":
				mapping = append(mapping, algebra.IdentityMapping(target))
			case "negation":
				negation, err := algebra.NewNegationMapping(target)
				if err != nil {
					return algebra.GroupAction{}, fmt.Errorf("entry %d: %w", i, err)
				}
				mapping = append(mapping, negation)
			default:
				return algebra.GroupAction{}, fmt.Errorf("entry %d: unknown automorphism %q", i, name)
			}
			continue
		}

		var values []uint64
		if err := mapstructure.Decode(rawEntry, &values); err != nil {
			return algebra.GroupAction{}, fmt.Errorf("entry %d: %w", i, err)
		}
		entry, err := algebra.NewMapping(target, target, algebra.ElementsOf(values...))
		if err != nil {
			return algebra.GroupAction{}, fmt.Errorf("entry %d: %w", i, err)
		}
		mapping = append(mapping, entry)
	}

	return algebra.NewGroupAction(source, target, mapping)
}

func describe(rawGroup RawGroup) string {
	switch strings.ToLower(rawGroup.Kind) {
	case "cyclic":
		return fmt.Sprintf("Z/%d", rawGroup.Order)
	case "symmetric":
		return fmt.Sprintf("S%d", rawGroup.Order)
	case "product":
		parts := make([]string, 0, len(rawGroup.Factors))
		for _, factor := range rawGroup.Factors {
			parts = append(parts, describe(factor))
		}
		return strings.Join(parts, " x ")
	default:
		return fmt.Sprintf("group of order %d", len(rawGroup.Table))
	}
}
