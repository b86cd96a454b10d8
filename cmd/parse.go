// =============================================================================
// Hotel Cache Toolkit - Parse Command
// =============================================================================
//
// This file defines the 'parse' command, which decodes cache files and
// prints per-file record summaries.
//
// COMMAND USAGE:
//   hotelcache parse [files...] [flags]
//
// With file arguments, exactly those files are parsed; the enclosing folder
// name is used as destination context when it looks like one. Without
// arguments, the whole destinations tree from the configuration is walked.
//
// PIPELINE PER FILE:
//   1. Classify the file name (internal / external / unrecognized)
//   2. Parse with the matching tokenizer variant
//   3. Print the record summary
//   4. Optionally write an XLSX report (internal files)
//   5. Optionally archive the file
//
// Files are processed concurrently up to the configured limit; a failure in
// one file does not stop the others unless continue_on_error is false.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/brightstay/hotelcache/internal/naming"
	"github.com/brightstay/hotelcache/internal/report"
	"github.com/brightstay/hotelcache/internal/tokenizer"
	"github.com/brightstay/hotelcache/pkg/utils"
)

// writeReport enables the XLSX summary workbook per parsed internal file.
var writeReport bool

// archiveParsed moves successfully parsed files into the archive directory.
var archiveParsed bool

// parseResult is one file's outcome, collected over the results channel.
type parseResult struct {
	File    utils.DestinationFile
	Kind    naming.Kind
	Records int
	Err     error

	// RowErrors carries the external variant's per-row diagnostics.
	RowErrors []string
}

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Decode cache files and print record summaries",
	Long: `The parse command decodes wholesaler cache files. Each file's name is
classified first: internal-convention files are decoded with the internal
tag set (CCON, CNCT, ...), external-supplier files with the supplier tag set
(SIAP, SIIN, SIEM, SICF). Unrecognized names are reported and skipped.

A bad row never aborts a file: internal files log and continue, external
files collect per-row diagnostics which are printed at the end.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(
		&writeReport,
		"report",
		false,
		"Write an XLSX summary workbook per internal cache file",
	)

	parseCmd.Flags().BoolVar(
		&archiveParsed,
		"archive",
		false,
		"Move successfully parsed files to the archive directory",
	)
}

// runParse orchestrates the parse pipeline.
func runParse(args []string) error {
	startTime := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	classifier := naming.NewClassifierWithSuppliers(cfg.ExtraSuppliers)
	fm := utils.NewFileManager(cfg.DestinationsDir, cfg.ReportsDir, cfg.ArchiveDir)

	// =========================================================================
	// STEP 1: COLLECT INPUT FILES
	// =========================================================================

	var files []utils.DestinationFile
	if len(args) > 0 {
		for _, arg := range args {
			files = append(files, utils.DestinationFile{
				Path:        arg,
				Name:        filepath.Base(arg),
				Destination: folderContext(arg),
			})
		}
	} else {
		files, err = fm.DiscoverDestinationFiles()
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Printf("No cache files found under %s\n", cfg.DestinationsDir)
			return nil
		}
	}

	fmt.Printf("Parsing %d file(s)...\n", len(files))

	// =========================================================================
	// STEP 2: PARSE CONCURRENTLY
	// =========================================================================
	// Parses share no state; the semaphore only bounds memory, since each
	// parse holds its whole file in memory.

	var wg sync.WaitGroup
	results := make(chan parseResult, len(files))
	sem := make(chan struct{}, cfg.MaxConcurrency)

	for _, file := range files {
		wg.Add(1)
		go func(file utils.DestinationFile) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results <- parseOne(file, classifier, fm, cfg.ReportsDir)
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 3: COLLECT RESULTS
	// =========================================================================

	var okCount, errCount int
	for res := range results {
		if res.Err != nil {
			errCount++
			fmt.Printf("  ✗ %s: %v\n", res.File.Name, res.Err)
			if !*cfg.ContinueOnError {
				return fmt.Errorf("aborting after %s: %w", res.File.Name, res.Err)
			}
			continue
		}

		okCount++
		fmt.Printf("  ✓ %s [%s] %d record(s)\n", res.File.Name, res.Kind, res.Records)
		for _, rowErr := range res.RowErrors {
			fmt.Printf("      row error: %s\n", rowErr)
		}
	}

	// =========================================================================
	// STEP 4: SUMMARY
	// =========================================================================

	fmt.Println("\n=== Parse Complete ===")
	fmt.Printf("Total files:  %d\n", len(files))
	fmt.Printf("Successful:   %d\n", okCount)
	fmt.Printf("Errors:       %d\n", errCount)
	fmt.Printf("Time elapsed: %s\n", time.Since(startTime))

	return nil
}

// parseOne runs the full pipeline for a single file.
func parseOne(file utils.DestinationFile, classifier *naming.Classifier, fm *utils.FileManager, reportsDir string) parseResult {
	res := parseResult{File: file}

	data, err := os.ReadFile(file.Path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read file: %w", err)
		return res
	}

	info := classifier.Classify(file.Name, file.Destination)
	res.Kind = info.Kind

	switch info.Kind {
	case naming.Internal:
		parsed := tokenizer.ParseCacheFile(string(data))
		res.Records = countInternal(parsed)

		if writeReport {
			if err := fm.EnsureDirectories(); err != nil {
				res.Err = err
				return res
			}
			out := filepath.Join(reportsDir, utils.ReportFileName(file.Name))
			if err := report.Write(parsed, file.Name, out); err != nil {
				res.Err = err
				return res
			}
			if verbose {
				fmt.Printf("      report: %s\n", out)
			}
		}

	case naming.External:
		parsed := tokenizer.ParseSupplierFile(string(data))
		res.Records = countExternal(parsed)
		res.RowErrors = parsed.Errors

	default:
		res.Err = fmt.Errorf("file name follows no known convention")
		return res
	}

	if archiveParsed {
		if err := fm.ArchiveFile(file); err != nil {
			res.Err = err
		}
	}
	return res
}

// folderContext extracts a destination code from an explicit path argument
// when the enclosing folder looks like one (2-4 uppercase letters).
func folderContext(path string) string {
	folder := filepath.Base(filepath.Dir(path))
	if len(folder) < 2 || len(folder) > 4 {
		return ""
	}
	for _, r := range folder {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return folder
}

func countInternal(f *tokenizer.CacheFile) int {
	return len(f.ContractHeaders) + len(f.RoomTypes) + len(f.NoHotelTexts) +
		len(f.Promotions) + len(f.HandlingFees) + len(f.TaxBreakdowns) +
		len(f.ValidMarkets) + len(f.Inventories) + len(f.Prices) +
		len(f.BoardSupplements) + len(f.Supplements) + len(f.StopSales) +
		len(f.FreeNights) + len(f.OfferExclusions) + len(f.MinMaxStays) +
		len(f.RateCodeLabels) + len(f.CheckInOutRules) + len(f.CancellationFees)
}

func countExternal(f *tokenizer.SupplierFile) int {
	return len(f.Availabilities) + len(f.Inventories) + len(f.MinMaxStays) +
		len(f.CancellationFees)
}
