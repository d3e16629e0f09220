package output

import (
	"strings"

	"github.com/lgbarn/sgf-legals-go/internal/labels"
)

// Format joins pair tokens with "|" in the order given and wraps the result
// in parentheses. No pairs gives "()".
func Format(pairs []labels.Pair) string {
	var sb strings.Builder
	tw := NewTokenWriter(&sb)
	for _, p := range pairs {
		// strings.Builder never fails.
		_ = tw.WritePair(p)
	}
	_ = tw.Close()
	return sb.String()
}
