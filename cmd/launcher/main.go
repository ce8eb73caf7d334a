// Launcher is the command line host for the Skyhaven launcher
// configuration core.
//
// It owns the process lifecycle the core expects from a host: it
// creates the configuration store, triggers the asynchronous load and
// save operations, and observes their completion. The graphical
// launcher shell uses the same core through the same calls.
//
// Usage:
//
//	launcher [command] [flags]
//
// See 'launcher --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skyhaven/launcher/internal/logging"
	"github.com/skyhaven/launcher/internal/version"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "launcher",
	Short: "Skyhaven Launcher configuration tool",
	Long: `Inspect and manage the Skyhaven Launcher configuration.

The configuration lives in a single config.json under the launcher's
per-user directory. 'show' loads and prints it, 'path' prints where it
is stored, and 'init' writes the built-in defaults to disk.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("launcher %s (commit: %s)\n", version.Version, version.Commit)
	},
}
