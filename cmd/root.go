// =============================================================================
// Hotel Cache Toolkit - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI.
//
// COBRA CLI STRUCTURE:
//   rootCmd (hotelcache)
//   ├── parseCmd    (hotelcache parse)
//   ├── classifyCmd (hotelcache classify)
//   ├── validateCmd (hotelcache validate)
//   └── versionCmd  (hotelcache version)
//
// The root command owns the global flags (--config, --verbose) and the
// shared configuration loading used by every subcommand.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brightstay/hotelcache/internal/config"
)

// cfgFile holds the path to the main configuration file, overridable via
// the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hotelcache",
	Short: "Hotel Cache Toolkit - decode and validate wholesaler inventory cache files",
	Long: `Hotel Cache Toolkit decodes the hotel wholesaler's pipe-delimited
inventory cache format (contracts, inventory, prices, supplements,
cancellation rules), classifies cache file names into the internal and
external-supplier conventions, and enforces the wholesaler's certification
limits for availability and re-price calls.

Example Usage:
  hotelcache parse                          # Parse everything under the destinations dir
  hotelcache parse BCN/1_1234_M_F           # Parse specific cache files
  hotelcache parse --report 1_1234_M_F      # Also write an XLSX summary workbook
  hotelcache classify 1_1234_M_F BCN_1233_ID_B2B_ISHBAR
  hotelcache validate --rates KEY1,KEY2 --rate-type RECHECK`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configured file, falling back to built-in defaults
// when the default config path simply does not exist. An explicit --config
// pointing at a missing file is still an error.
func loadConfig() (*config.MainConfig, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if cfgFile == "config.yaml" {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("config file %s does not exist", cfgFile)
	}
	return config.Load(cfgFile)
}
