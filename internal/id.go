package internal

import (
	"strings"
	"unicode"
)

// SanitizeID turns a control name into a valid HTML id.
// Characters other than letters, digits, '-', '_' and ':' are replaced with
// replacement. An id that does not start with a letter is prefixed with "z".
// A blank name yields "".
func SanitizeID(name, replacement string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name) + 1)
	for i, r := range name {
		if i == 0 && !isASCIILetter(r) {
			b.WriteByte('z')
		}
		switch {
		case isASCIILetter(r), unicode.IsDigit(r) && r < unicode.MaxASCII, r == '-', r == '_', r == ':':
			b.WriteRune(r)
		default:
			b.WriteString(replacement)
		}
	}
	return b.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// validateName reports why name cannot be used as a control name.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return ErrNameHasSpaces
	}
	return nil
}
