package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func lower(s string) string {
	return strings.ToLower(s)
}

// FoldDiacritics removes combining marks so that "sábado" and "sabado"
// compare equal. Input that fails to normalize is returned unchanged.
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeExpression prepares free-form user text for token matching:
// whitespace is collapsed, case is lowered and diacritics are stripped.
func NormalizeExpression(s string) string {
	p := Pipeline{
		TrimAndNormalize,
		lower,
		FoldDiacritics,
	}
	return p.Apply(s)
}
