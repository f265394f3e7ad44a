// Package fileio moves documents between disk and line slices.
package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iw2rmb/linedit/buffer"
)

const defaultMode os.FileMode = 0o644

// Load reads path into lines. A missing file yields one empty line and
// isNew=true. A single trailing newline does not add an empty last line.
// Carriage returns ending a line and NUL bytes are dropped.
//
// Files with more than maxLines lines fail with buffer.ErrCapacityExceeded.
// maxLines <= 0 means buffer.DefaultMaxLines.
func Load(path string, maxLines int) (lines []string, isNew bool, err error) {
	if maxLines <= 0 {
		maxLines = buffer.DefaultMaxLines
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{""}, true, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}

	data = bytes.ReplaceAll(data, []byte{0}, nil)
	text := strings.TrimSuffix(string(data), "\n")

	lines = strings.Split(text, "\n")
	if len(lines) > maxLines {
		return nil, false, fmt.Errorf("%s has %d lines, limit is %d: %w", path, len(lines), maxLines, buffer.ErrCapacityExceeded)
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, false, nil
}

// Save writes lines to path, each terminated by '\n'. The content goes to a
// temporary file in the same directory first and is renamed over path, so
// readers never see a partial file. An existing file keeps its permissions.
func Save(path string, lines []string) error {
	mode := defaultMode
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	// Removing after a successful rename fails harmlessly.
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
