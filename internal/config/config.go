// Package config loads the htmltext CLI configuration from a TOML file.
//
// A configuration file is optional. Without one, Default values apply;
// command-line flags override either.
//
//	include_outer_text = true
//	preserve_newlines = false
//	include_image_links = true
//	normalize_urls = false
//	unique_links = false
//	jobs = 4
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the name of the configuration file looked up in the
// user's home directory.
const DefaultFileName = ".htmltext.toml"

// ErrInvalidJobs is returned when jobs is less than one.
var ErrInvalidJobs = errors.New("jobs must be at least 1")

// Config holds CLI settings.
type Config struct {
	IncludeOuterText  bool `toml:"include_outer_text"`
	PreserveNewlines  bool `toml:"preserve_newlines"`
	IncludeImageLinks bool `toml:"include_image_links"`
	NormalizeURLs     bool `toml:"normalize_urls"`
	UniqueLinks       bool `toml:"unique_links"`
	Jobs              int  `toml:"jobs"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		IncludeOuterText:  true,
		IncludeImageLinks: true,
		Jobs:              runtime.NumCPU(),
	}
}

// Parse reads TOML from r over the defaults. Unknown keys are an error so
// that typos do not go unnoticed.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the path of the configuration file in the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultFileName), nil
}

// LoadDefault loads the file at DefaultPath if it exists and returns
// Default otherwise.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Encode writes cfg to w as TOML.
func Encode(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidJobs, c.Jobs)
	}
	return nil
}
