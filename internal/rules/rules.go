// Package rules replays Go game records and enumerates legal moves.
package rules

import "strings"

// Ruleset selects the ko and suicide rules applied to new moves.
type Ruleset int

const (
	Japanese Ruleset = iota
	Chinese
	AGA
	NewZealand
	Ing
)

var rulesetNames = [...]string{
	Japanese:   "Japanese",
	Chinese:    "Chinese",
	AGA:        "AGA",
	NewZealand: "NZ",
	Ing:        "GOE",
}

// String returns the SGF RU spelling of the ruleset.
func (r Ruleset) String() string {
	if int(r) >= 0 && int(r) < len(rulesetNames) {
		return rulesetNames[r]
	}
	return "Unknown"
}

// ParseRuleset reads an SGF RU value. Unknown or empty values fall back
// to Japanese rules.
func ParseRuleset(s string) Ruleset {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chinese", "cn":
		return Chinese
	case "aga", "bga", "french":
		return AGA
	case "nz", "new zealand", "newzealand":
		return NewZealand
	case "goe", "ing":
		return Ing
	}
	return Japanese
}

// AllowsSuicide reports whether a move may remove its own chain.
func (r Ruleset) AllowsSuicide() bool {
	return r == NewZealand || r == Ing
}

// UsesSuperko reports whether a move may not recreate any earlier
// board position. Otherwise only simple ko is enforced.
func (r Ruleset) UsesSuperko() bool {
	switch r {
	case Chinese, AGA, NewZealand, Ing:
		return true
	}
	return false
}
