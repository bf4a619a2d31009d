package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the settings shared by the roster commands. Field tags serve
// viper (mapstructure), the config.yaml written on first run (yaml), and
// Validate (validate).
type Config struct {
	Input            string `mapstructure:"input" yaml:"input,omitempty"`
	Output           string `mapstructure:"output" yaml:"output,omitempty"`
	DataDir          string `mapstructure:"data_dir" yaml:"data_dir,omitempty"`
	MajorLeague      string `mapstructure:"major_league" yaml:"major_league" validate:"required"`
	StrictAffiliates bool   `mapstructure:"strict_affiliates" yaml:"strict_affiliates"`
	KeepHeader       bool   `mapstructure:"keep_header" yaml:"keep_header"`
	LogLevel         string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Defaults.
const (
	DefaultMajorLeague = "Major League"
	DefaultLogLevel    = "info"
)

var validate = validator.New()

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		MajorLeague:      DefaultMajorLeague,
		StrictAffiliates: true,
		LogLevel:         DefaultLogLevel,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	switch f := fields[0]; f.Field() {
	case "MajorLeague":
		return ErrMajorLeagueEmpty
	case "LogLevel":
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, f.Value())
	default:
		return f
	}
}
