package helpers

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"
)

// FileAssertions provides utilities for asserting generated output in tests.
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper rooted at baseDir.
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{
		t:       t,
		baseDir: baseDir,
	}
}

// AssertFileExists validates that a file exists.
func (fa *FileAssertions) AssertFileExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		fa.t.Errorf("Expected file to exist: %s", fullPath)
	}
	return fa
}

// AssertFileNotExists validates that a file does not exist.
func (fa *FileAssertions) AssertFileNotExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)
	if _, err := os.Stat(fullPath); err == nil {
		fa.t.Errorf("Expected file to not exist: %s", fullPath)
	}
	return fa
}

// AssertFileContains validates that a file contains expected content.
func (fa *FileAssertions) AssertFileContains(relativePath, expectedContent string) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)

	// #nosec G304 - test helper, paths are controlled by test code
	content, err := os.ReadFile(fullPath)
	if err != nil {
		fa.t.Errorf("Failed to read file %s: %v", fullPath, err)
		return fa
	}

	if !strings.Contains(string(content), expectedContent) {
		fa.t.Errorf("Expected file %s to contain %q\nActual content:\n%s",
			relativePath, expectedContent, string(content))
	}
	return fa
}

// AssertFileCount validates the number of regular files directly in baseDir.
func (fa *FileAssertions) AssertFileCount(expected int) *FileAssertions {
	fa.t.Helper()
	if files := fa.ListFiles(); len(files) != expected {
		fa.t.Errorf("Expected %d files in %s, found %d: %v", expected, fa.baseDir, len(files), files)
	}
	return fa
}

// AssertPNGSize validates that a PNG decodes to size×size pixels.
func (fa *FileAssertions) AssertPNGSize(relativePath string, size int) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)

	// #nosec G304 - test helper, paths are controlled by test code
	content, err := os.ReadFile(fullPath)
	if err != nil {
		fa.t.Errorf("Failed to read file %s: %v", fullPath, err)
		return fa
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		fa.t.Errorf("File %s is not a PNG: %v", relativePath, err)
		return fa
	}
	if cfg.Width != size || cfg.Height != size {
		fa.t.Errorf("Expected %s to be %dx%d, got %dx%d", relativePath, size, size, cfg.Width, cfg.Height)
	}
	return fa
}

// AssertICOSizes validates the directory entries of an ICO file, in any order.
func (fa *FileAssertions) AssertICOSizes(relativePath string, sizes ...int) *FileAssertions {
	fa.t.Helper()
	fullPath := filepath.Join(fa.baseDir, relativePath)

	// #nosec G304 - test helper, paths are controlled by test code
	content, err := os.ReadFile(fullPath)
	if err != nil {
		fa.t.Errorf("Failed to read file %s: %v", fullPath, err)
		return fa
	}
	got, err := icoEntrySizes(content)
	if err != nil {
		fa.t.Errorf("File %s is not an ICO: %v", relativePath, err)
		return fa
	}
	want := slices.Clone(sizes)
	sort.Ints(want)
	sort.Ints(got)
	if !slices.Equal(want, got) {
		fa.t.Errorf("Expected %s to contain sizes %v, got %v", relativePath, want, got)
	}
	return fa
}

// ListFiles returns the sorted regular file names in baseDir.
func (fa *FileAssertions) ListFiles() []string {
	fa.t.Helper()
	entries, err := os.ReadDir(fa.baseDir)
	if err != nil {
		fa.t.Logf("Failed to read directory %s: %v", fa.baseDir, err)
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files
}

var errBadICO = errors.New("invalid ICO header")

// icoEntrySizes reads the widths from an ICONDIR header. Width 0 means 256.
func icoEntrySizes(data []byte) ([]int, error) {
	if len(data) < 6 || binary.LittleEndian.Uint16(data[2:4]) != 1 {
		return nil, errBadICO
	}
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if len(data) < 6+count*16 {
		return nil, errBadICO
	}
	sizes := make([]int, 0, count)
	for i := range count {
		w := int(data[6+i*16])
		if w == 0 {
			w = 256
		}
		sizes = append(sizes, w)
	}
	return sizes, nil
}
