// =============================================================================
// Hotel Cache Toolkit - File Manager Utility
// =============================================================================
//
// This module handles the filesystem side of a bulk cache download:
//   - Walking the unpacked DESTINATIONS/<IATA_CODE>/<file> layout
//   - Pairing each cache file with its destination-folder code
//   - Archiving files after successful processing
//   - Naming report files
//
// Only layout knowledge lives here. What a file name *means* is the
// classifier's business (internal/naming); what the content means is the
// tokenizer's.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DestinationFile is one cache file found under the destinations tree,
// paired with the IATA code of its enclosing folder. The folder code is the
// classifier's destination context.
type DestinationFile struct {
	Path        string
	Name        string
	Destination string
}

// FileManager handles file operations for the cache toolkit.
type FileManager struct {
	// DestinationsDir is the root of the unpacked bulk download.
	DestinationsDir string

	// ReportsDir is where report workbooks are written.
	ReportsDir string

	// ArchiveDir receives processed cache files; empty disables archiving.
	ArchiveDir string
}

// NewFileManager creates a FileManager over the configured directories.
func NewFileManager(destinationsDir, reportsDir, archiveDir string) *FileManager {
	return &FileManager{
		DestinationsDir: destinationsDir,
		ReportsDir:      reportsDir,
		ArchiveDir:      archiveDir,
	}
}

// EnsureDirectories creates the managed directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{fm.DestinationsDir, fm.ReportsDir}
	if fm.ArchiveDir != "" {
		dirs = append(dirs, fm.ArchiveDir)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// DISCOVERY
// =============================================================================

// DiscoverDestinationFiles walks DestinationsDir and returns every regular
// file one level below a destination folder, sorted by destination then
// name. Entries directly under the root (not inside a destination folder)
// are ignored; the download never produces them.
func (fm *FileManager) DiscoverDestinationFiles() ([]DestinationFile, error) {
	folders, err := os.ReadDir(fm.DestinationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read destinations dir: %w", err)
	}

	var files []DestinationFile
	for _, folder := range folders {
		if !folder.IsDir() {
			continue
		}
		dest := folder.Name()

		entries, err := os.ReadDir(filepath.Join(fm.DestinationsDir, dest))
		if err != nil {
			return nil, fmt.Errorf("failed to read destination folder %s: %w", dest, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			files = append(files, DestinationFile{
				Path:        filepath.Join(fm.DestinationsDir, dest, entry.Name()),
				Name:        entry.Name(),
				Destination: dest,
			})
		}
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Destination != files[j].Destination {
			return files[i].Destination < files[j].Destination
		}
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveFile moves a processed cache file into the archive, preserving the
// destination subfolder so a re-download can be diffed against it. A no-op
// when archiving is disabled.
func (fm *FileManager) ArchiveFile(file DestinationFile) error {
	if fm.ArchiveDir == "" {
		return nil
	}

	targetDir := filepath.Join(fm.ArchiveDir, file.Destination)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive folder: %w", err)
	}

	target := filepath.Join(targetDir, file.Name)
	if err := os.Rename(file.Path, target); err != nil {
		// Rename fails across filesystems; fall back to copy+remove.
		if err := copyFile(file.Path, target); err != nil {
			return fmt.Errorf("failed to archive %s: %w", file.Name, err)
		}
		return os.Remove(file.Path)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// =============================================================================
// NAMING
// =============================================================================

// ReportFileName builds a unique report name for one source cache file:
// <source>_<timestamp>_<uuid>.xlsx. The uuid keeps concurrent runs from
// clobbering each other.
func ReportFileName(sourceName string) string {
	base := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	return fmt.Sprintf("%s_%s_%s.xlsx",
		base,
		time.Now().Format("20060102_150405"),
		uuid.New().String(),
	)
}
