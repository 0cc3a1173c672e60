// SPDX-License-Identifier: MIT

// Package config loads lvpoly settings from YAML with environment overrides
// and maps them onto pip and dependence options.
//
// Priority: environment > file > defaults. Every loaded configuration is
// validated before use.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpoly/dependence"
	"github.com/katalvlaran/lvpoly/exact"
	"github.com/katalvlaran/lvpoly/pip"
)

// Environment variables overriding file values.
const (
	EnvPrecision = "LVPOLY_PRECISION"
	EnvMaxTape   = "LVPOLY_MAX_TAPE"
	EnvMaxCuts   = "LVPOLY_MAX_CUTS"
	EnvLogLevel  = "LVPOLY_LOG_LEVEL"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the top-level configuration.
type Config struct {
	// Solver holds the defaults of direct pip.Solve calls.
	Solver SolverConfig `yaml:"solver"`

	// Analysis holds the dependence analysis settings.
	Analysis AnalysisConfig `yaml:"analysis"`

	// Logging selects the slog level and format.
	Logging LoggingConfig `yaml:"logging"`
}

// SolverConfig mirrors pip.Options.
type SolverConfig struct {
	Integer            bool   `yaml:"integer"`
	Maximize           bool   `yaml:"maximize"`
	UnrestrictedParams bool   `yaml:"unrestricted_params"`
	UnrestrictedVars   bool   `yaml:"unrestricted_vars"`
	Simplify           bool   `yaml:"simplify"`
	Dual               bool   `yaml:"dual"`
	BigParam           int    `yaml:"big_param" validate:"gte=-1"`
	Precision          string `yaml:"precision" validate:"omitempty,oneof=arbitrary fixed64"`
	DeepestCut         bool   `yaml:"deepest_cut"`
	MaxTape            int    `yaml:"max_tape" validate:"gte=0"`
	MaxCuts            int    `yaml:"max_cuts" validate:"gte=0"`
}

// AnalysisConfig mirrors dependence.Options.
type AnalysisConfig struct {
	Precision string `yaml:"precision" validate:"omitempty,oneof=arbitrary fixed64"`
	MaxTape   int    `yaml:"max_tape" validate:"gte=0"`
	MaxCuts   int    `yaml:"max_cuts" validate:"gte=0"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns rational minimisation with deepest cuts, arbitrary
// precision, an unbounded tape, pip.DefaultMaxCuts and warn-level text logging.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			BigParam:   pip.NoBigParam,
			Precision:  exact.Arbitrary.String(),
			DeepestCut: true,
			MaxCuts:    pip.DefaultMaxCuts,
		},
		Analysis: AnalysisConfig{
			Precision: exact.Arbitrary.String(),
			MaxCuts:   pip.DefaultMaxCuts,
		},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
	}
}

// Load reads path (optional; a missing file means defaults), applies the
// environment and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("load config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. The
// environment is not consulted.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvPrecision); v != "" {
		c.Solver.Precision, c.Analysis.Precision = v, v
	}
	for name, dst := range map[string][]*int{
		EnvMaxTape: {&c.Solver.MaxTape, &c.Analysis.MaxTape},
		EnvMaxCuts: {&c.Solver.MaxCuts, &c.Analysis.MaxCuts},
	} {
		v := getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, name, err)
		}
		for _, p := range dst {
			*p = n
		}
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}

	return nil
}

// Logger builds the slog logger described by the logging section. An
// unparsable level, possible only on an unvalidated Config, falls back to
// slog.LevelWarn.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		level = slog.LevelWarn
	}
	ho := &slog.HandlerOptions{Level: level}
	if c.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, ho))
	}

	return slog.New(slog.NewTextHandler(w, ho))
}

// SolverOptions returns the pip options of the solver section.
func (c Config) SolverOptions(logger *slog.Logger) ([]pip.Option, error) {
	s := c.Solver
	prec, err := exact.ParsePrecision(s.Precision)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	opts := []pip.Option{
		pip.WithBigParam(s.BigParam),
		pip.WithPrecision(prec),
		pip.WithMaxTape(s.MaxTape),
		pip.WithMaxCuts(s.MaxCuts),
		pip.WithDeepestCut(s.DeepestCut),
		pip.WithLogger(logger),
	}
	for _, f := range []struct {
		on  bool
		opt pip.Option
	}{
		{s.Integer, pip.WithInteger()},
		{s.Maximize, pip.WithMaximize()},
		{s.UnrestrictedParams, pip.WithUnrestrictedParams()},
		{s.UnrestrictedVars, pip.WithUnrestrictedVars()},
		{s.Simplify, pip.WithSimplify()},
		{s.Dual, pip.WithDual()},
	} {
		if f.on {
			opts = append(opts, f.opt)
		}
	}

	return opts, nil
}

// AnalysisOptions returns the dependence options of the analysis section.
func (c Config) AnalysisOptions(logger *slog.Logger) ([]dependence.Option, error) {
	prec, err := exact.ParsePrecision(c.Analysis.Precision)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return []dependence.Option{
		dependence.WithPrecision(prec),
		dependence.WithMaxTape(c.Analysis.MaxTape),
		dependence.WithMaxCuts(c.Analysis.MaxCuts),
		dependence.WithLogger(logger),
	}, nil
}
