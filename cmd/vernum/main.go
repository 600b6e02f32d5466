package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "vernum",
	Short:   "Strict version number checks for tools and manifests",
	Long:    "Vernum parses strict MAJOR.MINOR[.PATCH] version numbers and checks them against bounds, in manifests and tool output.",
	Version: Version,
}
