package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/saltyorg/ttygreet/internal/logging"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv and DefaultPath.
const (
	EnvConfig       = "TTYGREET_CONFIG"
	EnvProbe        = "TTYGREET_PROBE"
	EnvColorProfile = "TTYGREET_COLOR_PROFILE"
)

// Config holds the optional settings of the ttygreet CLI.
type Config struct {
	Probe        string `yaml:"probe" validate:"omitempty,oneof=isatty term"`
	ColorProfile string `yaml:"color_profile" validate:"omitempty,oneof=truecolor ansi256 ansi ascii"`
	Verbosity    int    `yaml:"verbosity" validate:"gte=0,lte=2"`
}

// DefaultPath returns $TTYGREET_CONFIG, or config.yml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ttygreet", "config.yml")
}

// Load reads and validates the config file at path.
// A missing file yields an empty Config unless required is set.
func Load(path string, required bool, verbosity int) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		logging.Debug(verbosity, "No config path resolved, using defaults")
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			logging.Debug(verbosity, "Config file %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	logging.Trace(verbosity, "Raw config:\n%s", string(data))

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	logging.Debug(verbosity, "Loaded config from %s: %+v", path, *cfg)
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvProbe); v != "" {
		c.Probe = v
	}
	if v := getenv(EnvColorProfile); v != "" {
		c.ColorProfile = v
	}
}

// Validate checks c against its struct tags and reports the first problem
// using YAML field names.
func Validate(c *Config) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "oneof":
			allowed := strings.Fields(e.Param())
			msg := fmt.Sprintf("field '%s' must be one of %s, got: %v", field, strings.Join(allowed, ", "), e.Value())
			if s := suggest(fmt.Sprint(e.Value()), allowed); s != "" {
				msg += fmt.Sprintf(". Did you mean '%s'?", s)
			}
			return errors.New(msg)
		case "gte", "lte":
			return fmt.Errorf("field '%s' must be between 0 and 2, got: %v", field, e.Value())
		default:
			return fmt.Errorf("field '%s' is invalid: %s", field, e.Error())
		}
	}
	return err
}

// suggest returns the candidate closest to value within an edit distance of 2.
func suggest(value string, candidates []string) string {
	bestMatch := ""
	bestDistance := 3
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(strings.ToLower(value), c); d < bestDistance {
			bestDistance = d
			bestMatch = c
		}
	}
	return bestMatch
}
