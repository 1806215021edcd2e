// Settings for the tessellate command, read from YAML.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML file. Anything not set in the file keeps its
// default.
type Config struct {
	FastPath bool   `yaml:"fast_path"`
	Validate bool   `yaml:"validate"`
	LogLevel string `yaml:"log_level"`
	Trace    Trace  `yaml:"trace"`
}

type Trace struct {
	// none, pretty, json or png
	Kind string `yaml:"kind"`
	// File for pretty and json traces, directory for png frames. Empty means
	// stderr, or the working directory for png.
	Output string  `yaml:"output"`
	Scale  float64 `yaml:"scale"`
	Imgcat bool    `yaml:"imgcat"`
	Color  bool    `yaml:"color"`
}

const (
	TraceNone   = "none"
	TracePretty = "pretty"
	TraceJSON   = "json"
	TracePNG    = "png"
)

func Default() *Config {
	return &Config{
		FastPath: true,
		LogLevel: "warn",
		Trace: Trace{
			Kind:  TraceNone,
			Scale: 20,
			Color: true,
		},
	}
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	config, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

// Decode reads YAML over the defaults. Unknown keys are errors.
func Decode(r io.Reader) (*Config, error) {
	config := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parsing")
	}
	if err := config.Check(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Check() error {
	switch c.Trace.Kind {
	case TraceNone, TracePretty, TraceJSON, TracePNG:
	default:
		return errors.Errorf("unknown trace kind %q", c.Trace.Kind)
	}
	if c.Trace.Scale <= 0 {
		return errors.Errorf("trace scale must be positive, got %g", c.Trace.Scale)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.Errorf("unknown log level %q", s)
	}
	return level, nil
}
