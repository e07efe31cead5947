// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"strings"
	"unicode"
)

// DefaultBaseName is used when a name sanitizes to nothing.
const DefaultBaseName = "photos"

// MaxBaseNameBytes bounds a sanitized name so that it plus ".pdf" stays
// well under the 255-byte file name limit of common filesystems.
const MaxBaseNameBytes = 200

// Sanitize makes name safe to use as a file name: every rune that is not a
// letter, digit, underscore, hyphen, or whitespace is dropped, then each run
// of whitespace becomes a single underscore. The result is cut to
// MaxBaseNameBytes on a rune boundary. Sanitize is idempotent.
func Sanitize(name string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range name {
		var next string
		switch {
		case unicode.IsSpace(r):
			if inSpace {
				continue
			}
			next = "_"
			inSpace = true
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '-':
			next = string(r)
			inSpace = false
		default:
			continue
		}
		if b.Len()+len(next) > MaxBaseNameBytes {
			break
		}
		b.WriteString(next)
	}
	if b.Len() == 0 {
		return DefaultBaseName
	}
	return b.String()
}
