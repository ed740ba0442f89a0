package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

// VersionInfo is the --json form of the version command.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// runVersion reports the version cobra also prints for --version.
func runVersion() error {
	info := VersionInfo{Version: rootCmd.Version, Commit: commit, Built: date}
	if jsonOut {
		return printJSON(info)
	}
	fmt.Fprintf(os.Stdout, "%s %s (commit %s, built %s)\n", rootCmd.Name(), info.Version, info.Commit, info.Built)
	return nil
}
