package codegen

import (
	"strings"
)

const (
	// Base62Alphabet is the character set for short codes
	Base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	// MinCodeLength is the minimum generated short code length
	MinCodeLength = 6
	// MaxCodeLength is the maximum generated short code length
	MaxCodeLength = 8
)

// Encode encodes a uint64 to its natural-length base62 representation
func Encode(n uint64) string {
	if n == 0 {
		return string(Base62Alphabet[0])
	}

	var sb strings.Builder
	base := uint64(len(Base62Alphabet))

	for n > 0 {
		sb.WriteByte(Base62Alphabet[n%base])
		n = n / base
	}

	// Reverse
	s := sb.String()
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[len(s)-1-i]
	}
	return string(out)
}

// EncodeToLength encodes a uint64 to a base62 string of exactly the given
// length, wrapping modulo the code space.
func EncodeToLength(n uint64, length int) string {
	if length < MinCodeLength || length > MaxCodeLength {
		length = MaxCodeLength
	}

	result := make([]byte, length)
	base := uint64(len(Base62Alphabet))

	for i := length - 1; i >= 0; i-- {
		result[i] = Base62Alphabet[n%base]
		n = n / base
	}

	return string(result)
}

// Decode decodes a base62 string to uint64
func Decode(s string) (uint64, error) {
	var result uint64
	base := uint64(len(Base62Alphabet))

	for _, c := range s {
		idx := strings.IndexRune(Base62Alphabet, c)
		if idx < 0 {
			return 0, &InvalidCharacterError{Char: c}
		}
		result = result*base + uint64(idx)
	}

	return result, nil
}

// IsValidCode reports whether s could be a short code: 3-30 characters of
// letters, digits, hyphen or underscore. The charset is wider than base62
// because custom aliases allow hyphens and underscores.
func IsValidCode(s string) bool {
	if len(s) < 3 || len(s) > 30 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}

// CodeSpace returns the number of distinct codes of the given length
func CodeSpace(length int) uint64 {
	base := uint64(len(Base62Alphabet))
	space := uint64(1)
	for i := 0; i < length; i++ {
		space *= base
	}
	return space
}

// InvalidCharacterError is returned when a character is outside the alphabet
type InvalidCharacterError struct {
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return "invalid base62 character: " + string(e.Char)
}
