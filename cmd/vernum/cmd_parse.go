package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/vernum/pkg/check"
	"github.com/vertti/vernum/pkg/output"
	"github.com/vertti/vernum/pkg/version"
)

var (
	parseBase bool
	parseFull bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <version>",
	Short: "Parse a strict MAJOR.MINOR[.PATCH] version number",
	Long: `Parse a version number and print its components.

The parser is strict: components are base-10 with no leading zeroes, no
signs, no whitespace, and no pre-release or build suffixes. On failure
the offending byte is pointed out with a caret.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseBase, "base", false, "require the two-component MAJOR.MINOR form")
	parseCmd.Flags().BoolVar(&parseFull, "full", false, "require the three-component MAJOR.MINOR.PATCH form")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	input := args[0]
	if parseBase && parseFull {
		return fmt.Errorf("--base and --full are mutually exclusive")
	}

	v, err := parseInput(input)
	if err != nil {
		output.PrintDiagnostic(err)
		return ErrCheckFailed
	}

	result := check.Result{
		Name:   fmt.Sprintf("parse: %s", input),
		Status: check.StatusOK,
	}
	result.AddDetailf("major: %d", v.Major())
	result.AddDetailf("minor: %d", v.Minor())
	if patch, ok := v.Patch(); ok {
		result.AddDetailf("patch: %d", patch)
		result.AddDetail("form: major.minor.patch")
	} else {
		result.AddDetail("form: major.minor")
	}

	output.PrintResult(result)
	return nil
}

func parseInput(input string) (version.Version, error) {
	switch {
	case parseBase:
		b, err := version.ParseBase(input)
		if err != nil {
			return version.Version{}, err
		}
		return version.FromBase(b), nil
	case parseFull:
		f, err := version.ParseFull(input)
		if err != nil {
			return version.Version{}, err
		}
		return version.FromFull(f), nil
	default:
		return version.Parse(input)
	}
}
