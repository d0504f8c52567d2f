// Package validation provides safety checks for output directories, manifest
// files and pictograph codes before anything touches the file system.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateOutputDir validates the directory pictographs are written into.
// Returns error if the path contains traversal, does not exist, is not a
// directory or is not writable.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}

	cleanPath := filepath.Clean(dir)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal detected in output directory: %s", dir)
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	dirInfo, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory does not exist: %s", absPath)
		}
		return fmt.Errorf("failed to access output directory: %w", err)
	}

	if !dirInfo.IsDir() {
		return fmt.Errorf("output path is not a directory: %s", absPath)
	}

	// Check writability with a throwaway file
	f, err := os.CreateTemp(absPath, ".pictograph_write_test-*")
	if err != nil {
		return fmt.Errorf("output directory is not writable: %s: %w", absPath, err)
	}
	f.Close()
	os.Remove(f.Name())

	return nil
}

// ValidateInputPath validates an input path such as a manifest file.
// Returns error if path doesn't exist or is not accessible
func ValidateInputPath(inputPath string, mustBeDir bool) error {
	if inputPath == "" {
		return fmt.Errorf("input path cannot be empty")
	}

	cleanPath := filepath.Clean(inputPath)

	// Relative paths must not climb out of the working directory
	if strings.Contains(cleanPath, "..") && !filepath.IsAbs(inputPath) {
		return fmt.Errorf("potentially unsafe path detected: %s", inputPath)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input path does not exist: %s", cleanPath)
		}
		return fmt.Errorf("failed to access input path: %w", err)
	}

	if mustBeDir && !info.IsDir() {
		return fmt.Errorf("input path must be a directory: %s", cleanPath)
	}

	if !mustBeDir && info.IsDir() {
		return fmt.Errorf("input path must be a file: %s", cleanPath)
	}

	return nil
}
