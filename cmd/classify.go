// =============================================================================
// Hotel Cache Toolkit - Classify Command
// =============================================================================
//
// This file defines the 'classify' command, which explains how each given
// cache file name is interpreted: internal vs. external convention, the
// decoded segments, and the embedded supplier identity if any.
//
// COMMAND USAGE:
//   hotelcache classify [names...] [flags]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightstay/hotelcache/internal/naming"
)

// destinationFlag supplies the destination-folder context when classifying
// bare names outside a destinations tree.
var destinationFlag string

var classifyCmd = &cobra.Command{
	Use:   "classify [names...]",
	Short: "Classify cache file names against the naming conventions",
	Long: `The classify command interprets cache file names without touching file
content. Internal names decode to incoming office and contract number;
external names decode to destination, hotel code and contract name, with
the supplier identified when the contract name embeds a known supplier ID.`,

	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassify(args)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(
		&destinationFlag,
		"destination",
		"",
		"Destination-folder IATA code to use as classification context",
	)
}

func runClassify(names []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	classifier := naming.NewClassifierWithSuppliers(cfg.ExtraSuppliers)

	for _, name := range names {
		info := classifier.Classify(name, destinationFlag)

		switch info.Kind {
		case naming.Internal:
			fmt.Printf("%s: internal office=%s contract=%s",
				name, info.Internal.IncomingOffice, info.Internal.ContractNumber)
			if info.Internal.PaymentModel != "" {
				fmt.Printf(" payment=%s", info.Internal.PaymentModel)
			}
			if info.Internal.Opaque != "" {
				fmt.Printf(" opaque=%s", info.Internal.Opaque)
			}
			fmt.Println()

		case naming.External:
			fmt.Printf("%s: external destination=%s hotel=%s contract=%s",
				name, info.External.Destination, info.External.HotelCode, info.External.ContractName)
			if info.External.SupplierID != "" {
				fmt.Printf(" supplier=%s (%s)", info.External.SupplierName, info.External.SupplierID)
			}
			fmt.Println()

		default:
			fmt.Printf("%s: unrecognized\n", name)
		}
	}
	return nil
}
