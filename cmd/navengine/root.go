// Command navengine is a demonstration and test harness for the waypoint
// progression engine: it drives a synthetic mission through a point-mass
// vehicle model and reports the engine's decisions. It never parses real
// mission files or talks to a flight controller.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aeronav/wpnav/navlog"
)

var (
	logLevel string
	logDir   string
)

var rootCmd = &cobra.Command{
	Use:   "navengine",
	Short: "Waypoint progression engine demonstration harness",
	Long: `navengine drives the waypoint progression engine through a synthetic
mission against a point-mass vehicle model, for manual inspection and
regression replay. It is a test harness, not a ground control station.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		globalLogger = navlog.New(logLevel, logDir)
	},
}

func main() {
	// A missing .env is not an error; navengine has no required
	// environment configuration of its own, but subcommands that talk to
	// external services (none yet) would read it here.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "directory for rotated session logs (default navengine-logs)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(serialCmd)
}
