// Package plain transliterates numerals glyph by glyph.
//
// Unlike package integer it applies no positional syntax: every digit maps
// to its digit glyph, '-' to the negative glyph and '.' to the point glyph.
// Leading zeros are kept and a one in the tens position is spelled.
package plain

import (
	"golang.org/x/text/transform"

	"github.com/Lostpig/chinese-numerals/table"
)

// Transliterator is a transform.Transformer that replaces numeral characters
// with glyphs. Other bytes are copied unchanged.
type Transliterator struct {
	transform.NopResetter

	t *table.Table
}

var _ transform.Transformer = (*Transliterator)(nil)

// NewTransliterator returns a Transliterator for t.
func NewTransliterator(t *table.Table) *Transliterator {
	return &Transliterator{
		t: t,
	}
}

// Transform implements transform.Transformer.
func (tr *Transliterator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]

		var glyph string

		switch {
		case c >= '0' && c <= '9':
			glyph = tr.t.Digit(c - '0')
		case c == '-':
			glyph = tr.t.Negative
		case c == '.':
			glyph = tr.t.Point
		default:
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}

			dst[nDst] = c
			nDst++
			nSrc++

			continue
		}

		if nDst+len(glyph) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		nDst += copy(dst[nDst:], glyph)
		nSrc++
	}

	return nDst, nSrc, nil
}

// String transliterates s.
func String(t *table.Table, s string) (result string, err error) {
	result, _, err = transform.String(NewTransliterator(t), s)

	return result, err
}

// Fraction spells fraction digits after the point glyph. Empty digits spell
// nothing.
func Fraction(t *table.Table, digits string) string {
	if digits == "" {
		return ""
	}

	// Fraction digits are validated by the caller; transliteration of
	// digits and '.' cannot fail.
	result, _ := String(t, "."+digits)

	return result
}
