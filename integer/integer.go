package integer

import (
	"strings"

	"github.com/Lostpig/chinese-numerals/table"
)

// SectionSize is the number of digits in a full section.
const SectionSize = 4

// Section is a group of up to four digits.
type Section struct {
	// Index is the section number counting from the least significant
	// section (0).
	Index int

	// Digits holds the digit values, least significant first.
	Digits []uint8
}

// Split groups a string of ASCII digits into sections, least significant
// first.
func Split(digits string) (sections []Section) {
	sections = make([]Section, 0, (len(digits)+SectionSize-1)/SectionSize)

	for end := len(digits); end > 0; end -= SectionSize {
		start := end - SectionSize
		if start < 0 {
			start = 0
		}

		s := Section{
			Index:  len(sections),
			Digits: make([]uint8, 0, end-start),
		}

		for i := end - 1; i >= start; i-- {
			s.Digits = append(s.Digits, digits[i]-'0')
		}

		sections = append(sections, s)
	}

	return sections
}

// Render spells the section without its scale. An all-zero section is
// empty.
func (s Section) Render(t *table.Table) string {
	var parts [SectionSize]string

	// below is true while a nonzero digit has been spelled at a lower
	// position and no zero has been spelled since.
	below := false

	for pos, d := range s.Digits {
		switch {
		case d == 0 && below:
			parts[pos] = t.Digit(0)
			below = false
		case d > 0:
			parts[pos] = digit(t, d, pos) + t.Unit(pos)
			below = true
		}
	}

	sb := &strings.Builder{}
	for pos := len(s.Digits) - 1; pos >= 0; pos-- {
		sb.WriteString(parts[pos])
	}

	return sb.String()
}

func digit(t *table.Table, d uint8, pos int) string {
	if d == 1 && pos == 1 {
		return ""
	}

	return t.Digit(d)
}

// Scale returns the scale for the section at index given its rendered text.
func Scale(t *table.Table, index int, text string) string {
	if index < 1 {
		return ""
	}

	i := (index - 1) % len(t.Scales)

	if i == len(t.Scales)-1 || text != "" {
		return t.Scales[i]
	}

	return ""
}

// Compose spells the sections most significant first, each followed by its
// scale.
func Compose(sections []Section, t *table.Table) string {
	sb := &strings.Builder{}

	for i := len(sections) - 1; i >= 0; i-- {
		text := sections[i].Render(t)

		sb.WriteString(text)
		sb.WriteString(Scale(t, sections[i].Index, text))
	}

	return sb.String()
}

// Spell spells a normalized string of ASCII digits.
func Spell(digits string, t *table.Table) string {
	if digits == "0" {
		return t.Digit(0)
	}

	return Compose(Split(digits), t)
}
