package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/axelroques/ditto/lib/candidates"
	"github.com/axelroques/ditto/lib/ditto"
	"github.com/axelroques/ditto/lib/mdl"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned for a configuration that fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

// --------------------------------------------------------------------------
// Run configuration struct
// --------------------------------------------------------------------------

// Config is the configuration of one mining run
type Config struct {
	Input            string  `validate:"required"`
	Format           string  `validate:"oneof=rows csv"`
	MaxRounds        int     `validate:"gte=0"` // 0 = unlimited
	MaxCandidateSize int     `validate:"gte=2"`
	MinImprovement   float64 `validate:"gt=0,lte=1"`
	Serializer       string  `validate:"oneof=json yaml gob binary"`
	Output           string  // "" = stdout
	LogLevel         string  `validate:"oneof=debug info warn warning error"`
	MetricsOutput    string  // "" = no metrics file
}

// DefaultConfig returns a configuration with every optional field set
func DefaultConfig() Config {
	return Config{
		Format:           "rows",
		MaxCandidateSize: candidates.DefaultMaxSize,
		MinImprovement:   mdl.DefaultMinImprovement,
		Serializer:       "json",
		LogLevel:         "info",
	}
}

// Validate checks every field of the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			msgs := make([]string, 0, len(fields))
			for _, f := range fields {
				msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", strings.ToLower(f.Field()), f.Tag(), f.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// EngineOptions converts the configuration to engine options
func (c *Config) EngineOptions() *ditto.Options {
	opts := ditto.DefaultOptions()
	opts.MinImprovement = c.MinImprovement
	opts.Search.MaxRounds = c.MaxRounds
	opts.Search.MaxCandidateSize = c.MaxCandidateSize
	return opts
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	orDefault := func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		return value
	}

	// Input
	addSection("Input")
	addField("Path", c.Input)
	addField("Format", c.Format)

	// Search parameters
	addSection("Search")
	if c.MaxRounds == 0 {
		addField("Max Rounds", "unlimited")
	} else {
		addField("Max Rounds", fmt.Sprintf("%d", c.MaxRounds))
	}
	addField("Max Candidate Size", fmt.Sprintf("%d tokens", c.MaxCandidateSize))
	addField("Min Improvement", fmt.Sprintf("%g", c.MinImprovement))

	// Output
	addSection("Output")
	addField("Serializer", c.Serializer)
	addField("Path", orDefault(c.Output, "stdout"))
	addField("Metrics", orDefault(c.MetricsOutput, "disabled"))

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
