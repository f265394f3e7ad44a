// Package config loads the editor settings file.
//
// The file is TOML. Every key is optional; a missing file yields Default().
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/linedit/buffer"
)

// EnvPath names the environment variable that overrides DefaultPath.
const EnvPath = "LINEDIT_CONFIG"

const (
	minWidth = 1
	maxWidth = 16
)

// Config is the decoded settings file.
type Config struct {
	// TabWidth is the render width of '\t' when TabIndent is set.
	TabWidth int `toml:"tab_width"`
	// IndentSize is the render width of '\t' when TabIndent is not set.
	IndentSize int  `toml:"indent_size"`
	TabIndent  bool `toml:"tab_indent"`

	MaxLines        int    `toml:"max_lines"`
	SystemClipboard bool   `toml:"system_clipboard"`
	LogFile         string `toml:"log_file"`

	Theme Theme `toml:"theme"`
}

// Theme holds lipgloss color strings: ANSI numbers ("255") or hex ("#1f3046").
type Theme struct {
	Inactive    string `toml:"inactive"`
	StatusFG    string `toml:"status_fg"`
	StatusBG    string `toml:"status_bg"`
	SelectionFG string `toml:"selection_fg"`
	SelectionBG string `toml:"selection_bg"`
}

func Default() Config {
	return Config{
		TabWidth:        4,
		IndentSize:      4,
		TabIndent:       true,
		MaxLines:        buffer.DefaultMaxLines,
		SystemClipboard: true,
		Theme: Theme{
			Inactive:    "#6f767d",
			StatusFG:    "#8e919a",
			StatusBG:    "#0f1116",
			SelectionFG: "255",
			SelectionBG: "#1f3046",
		},
	}
}

// RenderTabWidth returns the number of cells a '\t' occupies on screen.
func (c Config) RenderTabWidth() int {
	if c.TabIndent {
		return c.TabWidth
	}
	return c.IndentSize
}

// DefaultPath returns the settings file location: $LINEDIT_CONFIG when set,
// otherwise linedit/config.toml under the XDG config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "linedit", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating config: %w", err)
	}
	return filepath.Join(home, ".config", "linedit", "config.toml"), nil
}

// Load reads and validates the file at path. Keys absent from the file keep
// their Default values; a missing file is not an error. Unknown keys are
// reported as a *ParseError.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, newParseError(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}

	var de *toml.DecodeError
	if errors.As(err, &de) {
		pe.Line, pe.Column = de.Position()
	}
	var sme *toml.StrictMissingError
	if errors.As(err, &sme) && len(sme.Errors) > 0 {
		first := sme.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown key " + strings.Join(first.Key(), ".")
	}
	return pe
}

var colorRE = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}|[0-9]{1,3})$`)

// Validate checks value ranges. The first violation is returned as a
// *ValidationError.
func (c Config) Validate() error {
	widths := []struct {
		key string
		v   int
	}{
		{"tab_width", c.TabWidth},
		{"indent_size", c.IndentSize},
	}
	for _, w := range widths {
		if w.v < minWidth || w.v > maxWidth {
			return &ValidationError{
				Key:     w.key,
				Message: fmt.Sprintf("must be between %d and %d", minWidth, maxWidth),
				Value:   w.v,
			}
		}
	}

	if c.MaxLines < 1 {
		return &ValidationError{Key: "max_lines", Message: "must be at least 1", Value: c.MaxLines}
	}

	colors := []struct {
		key string
		v   string
	}{
		{"theme.inactive", c.Theme.Inactive},
		{"theme.status_fg", c.Theme.StatusFG},
		{"theme.status_bg", c.Theme.StatusBG},
		{"theme.selection_fg", c.Theme.SelectionFG},
		{"theme.selection_bg", c.Theme.SelectionBG},
	}
	for _, col := range colors {
		if !colorRE.MatchString(col.v) {
			return &ValidationError{Key: col.key, Message: "not a color", Value: col.v}
		}
	}
	return nil
}
