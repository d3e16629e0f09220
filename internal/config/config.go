// Package config provides configuration for sgf-legals.
package config

import (
	"strings"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
	"github.com/lgbarn/sgf-legals-go/internal/labels"
	"github.com/lgbarn/sgf-legals-go/internal/logger"
)

// Config holds the settings for one run.
type Config struct {
	// Ordering is "xy" or "yx".
	Ordering string `mapstructure:"ordering"`

	// Alphabet selects the fixed a..s / 1..19 labels.
	Alphabet bool `mapstructure:"alphabet"`

	// XLabels and YLabels are whitespace-separated label lists.
	XLabels string `mapstructure:"x_labels"`
	YLabels string `mapstructure:"y_labels"`

	LogLevel string `mapstructure:"log_level"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Ordering: labels.XY.String(),
		LogLevel: logger.DefaultLevel,
	}
}

// Validate checks that the configuration selects exactly one labeling
// scheme and that ordering and log level are recognised.
func (c *Config) Validate() error {
	if _, err := labels.ParseOrdering(c.Ordering); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	hasLabels := strings.TrimSpace(c.XLabels) != "" || strings.TrimSpace(c.YLabels) != ""
	switch {
	case c.Alphabet && hasLabels:
		return sgferrors.Wrap(sgferrors.ErrInvalidConfig, "alphabet cannot be combined with label lists")
	case !c.Alphabet && !hasLabels:
		return sgferrors.Wrap(sgferrors.ErrInvalidConfig, "no labels supplied")
	}
	return nil
}

// Scheme returns the labeling scheme the configuration selects.
func (c *Config) Scheme() labels.Scheme {
	if c.Alphabet {
		return labels.FixedAlphabet{}
	}
	return labels.NewCustomLabelList(c.XLabels, c.YLabels)
}

// LabelOrdering returns the parsed ordering.
func (c *Config) LabelOrdering() (labels.Ordering, error) {
	return labels.ParseOrdering(c.Ordering)
}
