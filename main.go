// =============================================================================
// Hotel Cache Toolkit - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Hotel Cache Toolkit CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   hotelcache parse         - Decode cache files and print record summaries
//   hotelcache classify      - Classify cache file names
//   hotelcache validate      - Run certification checks
//   hotelcache version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core decode/classify/compose/validate logic
//   - pkg/           : Shared utilities (destination tree handling)
//
// =============================================================================

package main

import (
	"github.com/brightstay/hotelcache/cmd"
)

func main() {
	cmd.Execute()
}
