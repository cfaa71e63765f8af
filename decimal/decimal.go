package decimal

import (
	"strings"

	"github.com/zeebo/errs"
)

// InvalidFormat is the class of errors for input that is not a numeral.
var InvalidFormat = errs.Class("invalid format")

// Numeral is a normalized decimal numeral.
type Numeral struct {
	Negative bool
	Integer  string
	Fraction string
}

// IsZero reports whether the numeral has zero magnitude.
func (n Numeral) IsZero() bool {
	return n.Integer == "0" && n.Fraction == ""
}

// String returns the normalized numeral.
func (n Numeral) String() string {
	sb := &strings.Builder{}

	if n.Negative {
		sb.WriteByte('-')
	}

	sb.WriteString(n.Integer)

	if n.Fraction != "" {
		sb.WriteByte('.')
		sb.WriteString(n.Fraction)
	}

	return sb.String()
}

// Parse validates and normalizes s.
func Parse(s string) (n Numeral, err error) {
	negative, integer, fraction, err := split(s)
	if err != nil {
		return n, err
	}

	integer = strings.TrimLeft(integer, "0")
	if integer == "" {
		integer = "0"
	}

	n = Numeral{
		Negative: negative,
		Integer:  integer,
		Fraction: strings.TrimRight(fraction, "0"),
	}

	if n.IsZero() {
		n.Negative = false
	}

	return n, nil
}

// Validate reports whether s is a numeral without normalizing it.
func Validate(s string) (err error) {
	_, _, _, err = split(s)

	return err
}

func split(s string) (negative bool, integer, fraction string, err error) {
	body := strings.TrimPrefix(s, "-")
	negative = len(body) != len(s)

	integer, fraction, point := strings.Cut(body, ".")

	if !digits(integer) || (point && !digits(fraction)) {
		return false, "", "", InvalidFormat.New("%q is not a decimal numeral", s)
	}

	return negative, integer, fraction, nil
}

// digits reports whether s is a non-empty run of ASCII digits.
func digits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
