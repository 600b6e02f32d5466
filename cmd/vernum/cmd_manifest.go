package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/vernum/pkg/manifestcheck"
	"github.com/vertti/vernum/pkg/version"
)

var (
	manifestKey        string
	manifestMin        string
	manifestMax        string
	manifestExact      string
	manifestConstraint string
)

var manifestCmd = &cobra.Command{
	Use:   "manifest <file>",
	Short: "Check the version field of a JSON manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runManifestCheck,
}

func init() {
	manifestCmd.Flags().StringVar(&manifestKey, "key", "version", "path of the version field")
	manifestCmd.Flags().StringVar(&manifestMin, "min", "", "minimum version required (inclusive)")
	manifestCmd.Flags().StringVar(&manifestMax, "max", "", "maximum version allowed (exclusive)")
	manifestCmd.Flags().StringVar(&manifestExact, "exact", "", "exact version required")
	manifestCmd.Flags().StringVar(&manifestConstraint, "constraint", "", "semver constraint expression, e.g. '>=1.2, <2.0'")
	rootCmd.AddCommand(manifestCmd)
}

func runManifestCheck(cmd *cobra.Command, args []string) error {
	c := &manifestcheck.Check{
		File:       args[0],
		Key:        manifestKey,
		Constraint: manifestConstraint,
		FS:         &manifestcheck.RealFileSystem{},
	}

	var err error
	if c.Min, err = version.ParseOptional(manifestMin); err != nil {
		return fmt.Errorf("invalid --min version: %w", err)
	}
	if c.Max, err = version.ParseOptional(manifestMax); err != nil {
		return fmt.Errorf("invalid --max version: %w", err)
	}
	if c.Exact, err = version.ParseOptional(manifestExact); err != nil {
		return fmt.Errorf("invalid --exact version: %w", err)
	}

	return runCheck(c)
}
