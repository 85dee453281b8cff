// Package rawview renders report text: read-only stack traces and
// syntax-coloured JSON.
package rawview

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type tokenKind int

const (
	tokenKey tokenKind = iota
	tokenString
	tokenNumber
	tokenLiteral // true, false
	tokenNull
	tokenOther // punctuation and whitespace
)

type token struct {
	kind tokenKind
	text string
}

var tokenColors = map[tokenKind]fyne.ThemeColorName{
	tokenKey:     theme.ColorNamePrimary,
	tokenString:  theme.ColorNameSuccess,
	tokenNumber:  theme.ColorNameWarning,
	tokenLiteral: theme.ColorNameError,
	tokenNull:    theme.ColorNameDisabled,
	tokenOther:   theme.ColorNameForeground,
}

// NewJSONView returns a RichText showing pretty-printed JSON with coloured
// keys, strings, numbers and literals.
func NewJSONView(text string) *widget.RichText {
	rt := widget.NewRichText(Highlight(text)...)
	rt.Wrapping = fyne.TextWrapOff
	return rt
}

// Highlight converts JSON text into coloured RichText segments.
func Highlight(text string) []widget.RichTextSegment {
	if text == "" {
		return nil
	}
	tokens := tokenize(text)
	segs := make([]widget.RichTextSegment, 0, len(tokens))
	for _, tok := range tokens {
		segs = append(segs, &widget.TextSegment{
			Style: widget.RichTextStyle{
				ColorName: tokenColors[tok.kind],
				Inline:    true,
				SizeName:  theme.SizeNameText,
				TextStyle: fyne.TextStyle{Monospace: true},
			},
			Text: tok.text,
		})
	}
	return segs
}

func tokenize(s string) []token {
	var out []token
	for len(s) > 0 {
		var tok token
		switch c := s[0]; {
		case c == '"':
			tok = token{tokenString, s[:stringEnd(s)]}
		case c == '-' || isDigit(c):
			tok = token{tokenNumber, s[:spanOf(s, 1, isNumberByte)]}
		case strings.HasPrefix(s, "true"):
			tok = token{tokenLiteral, "true"}
		case strings.HasPrefix(s, "false"):
			tok = token{tokenLiteral, "false"}
		case strings.HasPrefix(s, "null"):
			tok = token{tokenNull, "null"}
		case isSpace(c):
			tok = token{tokenOther, s[:spanOf(s, 1, isSpace)]}
		default:
			tok = token{tokenOther, s[:1]}
		}

		// A string followed by a colon is an object key.
		if tok.kind == tokenString {
			rest := strings.TrimLeft(s[len(tok.text):], " \t\r\n")
			if strings.HasPrefix(rest, ":") {
				tok.kind = tokenKey
			}
		}

		out = append(out, tok)
		s = s[len(tok.text):]
	}
	return out
}

// stringEnd returns the index just past the closing quote, honouring escapes.
func stringEnd(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(s)
}

func spanOf(s string, from int, ok func(byte) bool) int {
	i := from
	for i < len(s) && ok(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
