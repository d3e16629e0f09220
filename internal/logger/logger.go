// Package logger builds the zap logger used for diagnostics on stderr.
package logger

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
)

// DefaultLevel keeps successful runs silent.
const DefaultLevel = "error"

// ParseLevel reads a zap level name such as "debug" or "WARN".
func ParseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return lvl, sgferrors.Wrapf(sgferrors.ErrInvalidConfig, "log level %q", s)
	}
	return lvl, nil
}

// New returns a sugared console logger writing to w at the given level.
func New(level string, w io.Writer) (*zap.SugaredLogger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core).Named("sgf-legals").Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
