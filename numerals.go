package numerals

import (
	"fmt"
	"sync/atomic"

	"github.com/Lostpig/chinese-numerals/decimal"
	"github.com/Lostpig/chinese-numerals/integer"
	"github.com/Lostpig/chinese-numerals/plain"
	"github.com/Lostpig/chinese-numerals/table"
)

// Built-in tables.
var (
	Simplified  = table.Simplified
	Traditional = table.Traditional
)

// ErrInvalidFormat is the class of errors returned for input that is not a
// decimal numeral. Use ErrInvalidFormat.Has(err) to test for it.
var ErrInvalidFormat = &decimal.InvalidFormat

var active atomic.Pointer[table.Table]

func init() {
	active.Store(table.Simplified)
}

// SetDigitTable replaces the active table used by Convert, Transform and any
// Converter without a table of its own.
//
// Calls are atomic, but ordering them against concurrent conversions is up
// to the caller.
func SetDigitTable(t *table.Table) (err error) {
	err = t.Validate()
	if err != nil {
		return err
	}

	active.Store(t)

	return nil
}

// DigitTable returns the active table.
func DigitTable() *table.Table {
	return active.Load()
}

// Option configures a Converter.
type Option func(*Converter)

// WithTable fixes the table used by the Converter. A nil table follows the
// active table.
func WithTable(t *table.Table) Option {
	return func(c *Converter) {
		c.table = t
	}
}

// WithLogger sets the logger for precision warnings. A nil logger uses the
// package logger.
func WithLogger(l Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}

// Converter spells numerals with a fixed configuration.
type Converter struct {
	table  *table.Table
	logger Logger
}

// New returns a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

var std = New()

// Convert spells v using the active table.
func Convert(v interface{}) (string, error) {
	return std.Convert(v)
}

// Transform transliterates v using the active table.
func Transform(v interface{}) (string, error) {
	return std.Transform(v)
}

// digits returns the table for the next conversion. A fixed table is
// validated on every call since its fields may change after New.
func (c *Converter) digits() (*table.Table, error) {
	if c.table == nil {
		return active.Load(), nil
	}

	err := c.table.Validate()
	if err != nil {
		return nil, err
	}

	return c.table, nil
}

func (c *Converter) log() Logger {
	if c.logger != nil {
		return c.logger
	}

	return currentLogger()
}

// text converts v to a numeral string, warning when v is a float whose digits
// cannot all be trusted.
func (c *Converter) text(v interface{}) (s string, err error) {
	s, exact, err := decimal.Text(v)
	if err != nil {
		return "", err
	}

	if !exact {
		c.log().Warn(
			"numeral exceeds the exact integer range of its type; pass a string to keep every digit",
			Field{Key: "value", Value: s},
			Field{Key: "type", Value: fmt.Sprintf("%T", v)},
		)
	}

	return s, nil
}

// Convert spells v in Chinese numerals.
func (c *Converter) Convert(v interface{}) (string, error) {
	s, err := c.text(v)
	if err != nil {
		return "", err
	}

	n, err := decimal.Parse(s)
	if err != nil {
		return "", err
	}

	t, err := c.digits()
	if err != nil {
		return "", err
	}

	out := integer.Spell(n.Integer, t) + plain.Fraction(t, n.Fraction)
	if n.Negative {
		out = t.Negative + out
	}

	return out, nil
}

// Transform spells each character of v on its own, keeping the sign, point
// and leading zeros.
func (c *Converter) Transform(v interface{}) (string, error) {
	s, err := c.text(v)
	if err != nil {
		return "", err
	}

	err = decimal.Validate(s)
	if err != nil {
		return "", err
	}

	t, err := c.digits()
	if err != nil {
		return "", err
	}

	return plain.String(t, s)
}
