// Package normalize canonicalizes text to a stable Unicode form so that
// string matching against known identifiers is encoding-independent.
//
// File names produced on macOS commonly arrive in decomposed form (NFD),
// while the configured school names are composed (NFC). Both render
// identically but are not byte-equal, so every name is normalized to NFC
// before any containment test.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NFC returns s in canonical composed Unicode form. It is pure and total:
// normalizing an already-normalized string is a no-op.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Contains reports whether substr occurs in s after both are NFC
// normalized.
func Contains(s, substr string) bool {
	return strings.Contains(NFC(s), NFC(substr))
}
