// Package config provides configuration types and defaults for quill.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all configuration options for quill.
type Config struct {
	// Format is the default markup dialect for convert/inspect when no
	// flag is given. Valid values: "html", "markdown".
	Format string `mapstructure:"format"`

	// Bullets are the unordered-list glyphs by nesting level. Deeper
	// levels clamp to the last glyph.
	Bullets []string `mapstructure:"bullets"`

	Preview PreviewConfig `mapstructure:"preview"`
	Watch   WatchConfig   `mapstructure:"watch"`

	// Debug enables structured logging to LogPath.
	Debug   bool   `mapstructure:"debug"`
	LogPath string `mapstructure:"log_path"`
}

// PreviewConfig holds terminal preview options.
type PreviewConfig struct {
	// Style selects the glamour style. Valid values: "dark", "light",
	// "notty", "auto".
	Style string `mapstructure:"style"`

	// Width wraps preview output; 0 uses the terminal width.
	Width int `mapstructure:"width"`
}

// WatchConfig holds convert --watch options.
type WatchConfig struct {
	// DebounceMS coalesces rapid file events into one conversion.
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Format:  "html",
		Bullets: []string{"•", "◦", "▪"},
		Preview: PreviewConfig{Style: "auto", Width: 80},
		Watch:   WatchConfig{DebounceMS: 200},
		LogPath: DefaultLogPath(),
	}
}

// DefaultLogPath returns ~/.config/quill/quill.log, or a relative
// fallback when the home directory is unavailable.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "quill.log"
	}
	return filepath.Join(home, ".config", "quill", "quill.log")
}

// ValidFormats lists the supported markup dialects.
var ValidFormats = []string{"html", "markdown"}

// ValidateFormat checks a markup dialect name. Empty uses the default.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("format must be \"html\" or \"markdown\", got %q", format)
}

// Validate checks the whole configuration for errors.
func (c Config) Validate() error {
	if err := ValidateFormat(c.Format); err != nil {
		return err
	}
	for i, g := range c.Bullets {
		if g == "" {
			return fmt.Errorf("bullets[%d]: glyph must not be empty", i)
		}
	}
	switch c.Preview.Style {
	case "", "dark", "light", "notty", "auto":
	default:
		return fmt.Errorf("preview.style must be \"dark\", \"light\", \"notty\", or \"auto\", got %q", c.Preview.Style)
	}
	if c.Preview.Width < 0 {
		return fmt.Errorf("preview.width must not be negative, got %d", c.Preview.Width)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMS)
	}
	return nil
}
