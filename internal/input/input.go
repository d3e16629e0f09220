// Package input acquires the game record text.
package input

import (
	"io"
	"os"

	sgferrors "github.com/lgbarn/sgf-legals-go/internal/errors"
)

// Stdin is the source name that selects standard input.
const Stdin = "-"

// Read returns the full text of source. Stdin reads stdin; any other value
// is a file path.
func Read(source string, stdin io.Reader) (string, error) {
	if source == Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", &sgferrors.InputError{Source: "stdin", Err: err}
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", &sgferrors.InputError{Source: source, Err: err}
	}
	return string(data), nil
}
