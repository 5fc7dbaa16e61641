// Package displayid formats and parses the station's human-readable record
// identifiers: a one-letter kind tag, a two-digit year, and a zero-padded
// sequence number (C24001, S23006). Sequence allocation itself lives in the
// store so it can be done atomically; this package is pure.
package displayid

import "fmt"

// Kind selects the prefix letter of an identifier.
type Kind byte

const (
	KindClient   Kind = 'C'
	KindEmployee Kind = 'S' // "staff"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k == KindClient || k == KindEmployee }

func (k Kind) String() string { return string(rune(k)) }

// Format renders an identifier for the given kind, full year, and sequence
// number. The sequence is zero-padded to three digits; values above 999
// widen naturally (C241000) rather than truncating.
func Format(kind Kind, year int, seq int) string {
	return fmt.Sprintf("%c%02d%03d", byte(kind), year%100, seq)
}

// IsValid reports whether id is a well-formed identifier of the given kind:
// the kind letter, two year digits, and at least three sequence digits.
func IsValid(kind Kind, id string) bool {
	if len(id) < 6 || id[0] != byte(kind) {
		return false
	}
	for i := 1; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// Year extracts the full year from an identifier of either kind. Two-digit
// years map into the 2000s. Returns ok=false on malformed input so callers
// can render "unknown" instead of failing.
func Year(id string) (int, bool) {
	if !wellFormed(id) {
		return 0, false
	}
	yy := int(id[1]-'0')*10 + int(id[2]-'0')
	return 2000 + yy, true
}

// Sequence extracts the sequence number from an identifier of either kind.
// Returns ok=false on malformed input.
func Sequence(id string) (int, bool) {
	if !wellFormed(id) {
		return 0, false
	}
	n := 0
	for i := 3; i < len(id); i++ {
		n = n*10 + int(id[i]-'0')
	}
	return n, true
}

func wellFormed(id string) bool {
	return IsValid(KindClient, id) || IsValid(KindEmployee, id)
}
