// =============================================================================
// Hotel Cache Toolkit - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which runs the wholesaler's
// certification checks over a prospective API call before the booking
// service issues it.
//
// COMMAND USAGE:
//   hotelcache validate --hotels 1234,5678 [flags]
//   hotelcache validate --rates KEY1,KEY2 --rate-type RECHECK
//
// The command exits non-zero when any supplied list violates a limit, so it
// slots into pre-flight shell pipelines.
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brightstay/hotelcache/internal/certification"
)

var (
	hotelsFlag   string
	ratesFlag    string
	rateTypeFlag string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run certification checks over hotel and rate-key lists",
	Long: `The validate command enforces the certification program limits without
issuing any live call: at most 2000 hotel codes per availability search, at
most 10 distinct rate keys per re-price call. With --rate-type it also
reports whether the rate must be re-priced (RECHECK) before booking.

An empty --hotels list is valid (destination-wide search); an empty --rates
list is not.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&hotelsFlag, "hotels", "", "Comma-separated hotel codes of an availability search")
	validateCmd.Flags().StringVar(&ratesFlag, "rates", "", "Comma-separated rate keys of a re-price call")
	validateCmd.Flags().StringVar(&rateTypeFlag, "rate-type", "", "Rate type to test for the re-price requirement")
}

func runValidate(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	validator := certification.NewValidatorWithLimits(
		cfg.Certification.MaxHotelsPerSearch,
		cfg.Certification.MaxRatesPerCall,
	)

	failed := false

	if cmd.Flags().Changed("hotels") {
		check := validator.CheckHotelCount(splitList(hotelsFlag))
		printCheck("hotel count", check)
		failed = failed || !check.Valid
	}

	if cmd.Flags().Changed("rates") {
		check := validator.CheckRateCount(splitList(ratesFlag))
		printCheck("rate count", check)
		failed = failed || !check.Valid
	}

	if cmd.Flags().Changed("rate-type") {
		if certification.NeedsRecheck(rateTypeFlag) {
			fmt.Printf("rate type: %s requires a re-price call before booking\n", rateTypeFlag)
		} else {
			fmt.Printf("rate type: %s is directly bookable\n", rateTypeFlag)
		}
	}

	if failed {
		return fmt.Errorf("certification checks failed")
	}
	return nil
}

func printCheck(label string, check certification.Check) {
	if check.Valid {
		fmt.Printf("%s: ok (%d)\n", label, check.Count)
	} else {
		fmt.Printf("%s: INVALID - %s\n", label, check.Message)
	}
}

// splitList splits a comma-separated flag value, keeping empty entries out.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
