package testutil

import (
	"fmt"
	"strings"
)

// Record builds a one-tree SGF record. root holds the root node's
// properties (for example "SZ[9]RU[Chinese]"); each move becomes its own
// node, so moves are written as "B[cc]", "W[]" and so on.
func Record(root string, moves ...string) string {
	var sb strings.Builder
	sb.WriteString("(;GM[1]FF[4]")
	sb.WriteString(root)
	for _, m := range moves {
		sb.WriteString(";")
		sb.WriteString(m)
	}
	sb.WriteString(")")
	return sb.String()
}

// EmptyBoard returns a record of an empty width x height board.
func EmptyBoard(width, height int) string {
	if width == height {
		return Record(fmt.Sprintf("SZ[%d]", width))
	}
	return Record(fmt.Sprintf("SZ[%d:%d]", width, height))
}
