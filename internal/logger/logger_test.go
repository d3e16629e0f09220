package logger

import (
	"bytes"
	"testing"

	"go.uber.org/zap/zapcore"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
	"github.com/lgbarn/sgf-legals-go/internal/testutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, tt.want)
	}

	_, err := ParseLevel("loud")
	testutil.AssertErrorIs(t, err, sgferrors.ErrInvalidConfig)
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", &buf)
	testutil.AssertNoError(t, err)

	log.Infow("hidden", "moves", 3)
	log.Warnw("shown", "moves", 4)

	out := buf.String()
	testutil.AssertFalse(t, bytes.Contains(buf.Bytes(), []byte("hidden")))
	testutil.AssertContains(t, out, "shown")
	testutil.AssertContains(t, out, `"moves": 4`)
	testutil.AssertContains(t, out, "sgf-legals")
}

func TestNewDefaultLevelIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(DefaultLevel, &buf)
	testutil.AssertNoError(t, err)

	log.Debug("debug")
	log.Warn("warn")
	testutil.AssertEqual(t, buf.String(), "")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("chatty", &bytes.Buffer{})
	testutil.AssertErrorIs(t, err, sgferrors.ErrInvalidConfig)
}
