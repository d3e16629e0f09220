package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
)

// EnvPrefix is prepended to every environment variable, as in
// SGF_LEGALS_ORDERING.
const EnvPrefix = "SGF_LEGALS"

// Configuration keys.
const (
	KeyOrdering = "ordering"
	KeyAlphabet = "alphabet"
	KeyXLabels  = "x_labels"
	KeyYLabels  = "y_labels"
	KeyLogLevel = "log_level"
)

// Flag names bound onto configuration keys.
const (
	FlagOrdering = "ordering"
	FlagAlphabet = "alphabet"
	FlagLogLevel = "log-level"
	FlagConfig   = "config"
)

var flagKeys = map[string]string{
	FlagOrdering: KeyOrdering,
	FlagAlphabet: KeyAlphabet,
	FlagLogLevel: KeyLogLevel,
}

// Load reads configuration from, in increasing precedence, defaults, the
// config file named by the --config flag, the environment (including a
// .env file in the working directory) and flags set on the command line.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	defaults := NewConfig()
	v.SetDefault(KeyOrdering, defaults.Ordering)
	v.SetDefault(KeyAlphabet, defaults.Alphabet)
	v.SetDefault(KeyXLabels, defaults.XLabels)
	v.SetDefault(KeyYLabels, defaults.YLabels)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var file string
	if flags != nil {
		if f := flags.Lookup(FlagConfig); f != nil {
			file = f.Value.String()
		}
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, sgferrors.Wrapf(sgferrors.ErrInvalidConfig, "bind flag %s: %v", name, err)
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, sgferrors.Wrapf(sgferrors.ErrInvalidConfig, "read %s: %v", file, err)
		}
	}

	cfg := NewConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, sgferrors.Wrapf(sgferrors.ErrInvalidConfig, "decode: %v", err)
	}
	cfg.File = file
	return cfg, nil
}

// loadDotEnv loads path into the environment. A missing file is not an
// error; variables already set are not overridden.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return sgferrors.Wrapf(sgferrors.ErrInvalidConfig, "load %s: %v", path, err)
}
