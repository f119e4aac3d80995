// Package yaml loads cpfetch settings from a YAML file.
package yaml

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/fwojciec/cpfetch"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a config file may supply. Zero values mean
// "not set" and leave the built-in default in place.
type Config struct {
	Format       string        `yaml:"format"`
	Timeout      time.Duration `yaml:"timeout"`
	ReadyTimeout time.Duration `yaml:"readyTimeout"`
	APIURL       string        `yaml:"apiURL"`
	UserAgent    string        `yaml:"userAgent"`
	Browser      string        `yaml:"browser"`
	RateLimit    float64       `yaml:"rateLimit"`
	Static       bool          `yaml:"static"`
}

// Load reads the config file at path.
// Returns ENOTFOUND if the file does not exist.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cpfetch.Errorf(cpfetch.ENOTFOUND, "config file %s not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a config document. Unknown keys are rejected so that typos
// do not silently fall back to defaults. An empty document is a valid,
// empty config.
func Decode(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, cpfetch.Wrapf(err, cpfetch.EINVALID, "parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that can never be valid.
func (c *Config) Validate() error {
	switch c.Format {
	case "", "json", "markdown":
	default:
		return cpfetch.Errorf(cpfetch.EINVALID, "unknown format %q", c.Format)
	}
	if c.Timeout < 0 || c.ReadyTimeout < 0 {
		return cpfetch.Errorf(cpfetch.EINVALID, "timeouts must not be negative")
	}
	if c.RateLimit < 0 {
		return cpfetch.Errorf(cpfetch.EINVALID, "rate limit must not be negative")
	}
	return nil
}
