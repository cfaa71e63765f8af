package table

import (
	"github.com/zeebo/errs"
)

// Error is the class of table errors.
var Error = errs.Class("table")

// Table is a set of numeral glyphs.
type Table struct {
	// Digits holds the glyph for each digit value 0 through 9.
	Digits [10]string

	// Units holds the tens, hundreds and thousands glyphs.
	Units [3]string

	// Scales holds the glyph for section 1 (10^4), section 2 (10^8) and so
	// on. The last entry is compounded when a number outgrows the list.
	Scales []string

	Point    string
	Negative string
}

// Simplified is the simplified Chinese table.
var Simplified = &Table{
	Digits:   [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"},
	Units:    [3]string{"十", "百", "千"},
	Scales:   []string{"万", "亿", "兆", "京", "垓", "秭", "穰", "沟", "涧", "正", "载"},
	Point:    "点",
	Negative: "负",
}

// Traditional is the traditional (financial) Chinese table.
var Traditional = &Table{
	Digits:   [10]string{"零", "壹", "貳", "叁", "肆", "伍", "陸", "柒", "捌", "玖"},
	Units:    [3]string{"拾", "佰", "仟"},
	Scales:   []string{"萬", "億", "兆", "京", "垓", "秭", "穰", "溝", "澗", "正", "載"},
	Point:    "點",
	Negative: "負",
}

// Named returns a built-in table by name.
func Named(name string) (t *Table, ok bool) {
	switch name {
	case "simplified":
		return Simplified, true
	case "traditional":
		return Traditional, true
	}

	return nil, false
}

// Validate checks the invariants not already enforced by the field types.
func (t *Table) Validate() error {
	if t == nil {
		return Error.New("nil table")
	}

	if len(t.Scales) == 0 {
		return Error.New("no scales")
	}

	return nil
}

// Digit returns the glyph for digit value d.
func (t *Table) Digit(d uint8) string {
	return t.Digits[d]
}

// Unit returns the unit glyph for the in-section position pos (0 through 3).
// Position 0 has no unit.
func (t *Table) Unit(pos int) string {
	if pos <= 0 {
		return ""
	}

	return t.Units[pos-1]
}
