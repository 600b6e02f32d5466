package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vertti/vernum/pkg/toolcheck"
	"github.com/vertti/vernum/pkg/version"
)

var (
	toolMin        string
	toolMax        string
	toolExact      string
	toolVersionCmd string
	toolTimeout    time.Duration
)

var toolCmd = &cobra.Command{
	Use:   "tool <command>",
	Short: "Check that a tool exists and reports an acceptable version",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolCheck,
}

func init() {
	toolCmd.Flags().StringVar(&toolMin, "min", "", "minimum version required (inclusive)")
	toolCmd.Flags().StringVar(&toolMax, "max", "", "maximum version allowed (exclusive)")
	toolCmd.Flags().StringVar(&toolExact, "exact", "", "exact version required")
	toolCmd.Flags().StringVar(&toolVersionCmd, "version-cmd", "--version", "command to get version")
	toolCmd.Flags().DurationVar(&toolTimeout, "timeout", 0, "timeout for the version command")
	rootCmd.AddCommand(toolCmd)
}

func runToolCheck(cmd *cobra.Command, args []string) error {
	c := &toolcheck.Check{
		Name:        args[0],
		VersionArgs: parseVersionArgs(toolVersionCmd),
		Timeout:     toolTimeout,
		Runner:      &toolcheck.RealRunner{},
	}

	var err error
	if c.Min, err = version.ParseOptional(toolMin); err != nil {
		return fmt.Errorf("invalid --min version: %w", err)
	}
	if c.Max, err = version.ParseOptional(toolMax); err != nil {
		return fmt.Errorf("invalid --max version: %w", err)
	}
	if c.Exact, err = version.ParseOptional(toolExact); err != nil {
		return fmt.Errorf("invalid --exact version: %w", err)
	}

	return runCheck(c)
}

func parseVersionArgs(s string) []string {
	return strings.Fields(s)
}
