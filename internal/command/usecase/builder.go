package usecase

import "strings"

// BuildPrimaryURL derives the primary external builder URL for a prompt.
func BuildPrimaryURL(prompt string) string {
	return BuilderURLPrimaryPrefix + encodeComponent(prompt)
}

// BuildSecondaryURL derives the secondary external builder URL for a prompt.
func BuildSecondaryURL(prompt string) string {
	return BuilderURLSecondaryPrefix + encodeComponent(prompt)
}

const upperhex = "0123456789ABCDEF"

// encodeComponent percent-encodes a string the way browsers'
// encodeURIComponent does: everything except A-Za-z0-9 and -_.!~*'() is
// escaped, byte-wise over the UTF-8 encoding. url.QueryEscape is close but
// emits '+' for spaces, which the external builders do not decode.
func encodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func isComponentUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
