// Package decimal normalizes decimal numerals.
//
// A numeral is accepted when it matches:
//
//  -?[0-9]+(\.[0-9]+)?
//
// There is no exponent form, no leading plus sign and no digit grouping.
// Normalization splits a numeral into three parts:
//
//  | Input            | Negative | Integer | Fraction |
//  |------------------|----------|---------|----------|
//  | 00005            | false    | 5       |          |
//  | -12525           | true     | 12525   |          |
//  | 0000000100.54320 | false    | 100     | 5432     |
//  | 0.5000000000     | false    | 0       | 5        |
//  | -00000           | false    | 0       |          |
//  | -0.000           | false    | 0       |          |
//  |------------------|----------|---------|----------|
//
// The integer part never has a leading zero unless it is exactly 0, and the
// fraction never has a trailing zero. A negative sign survives only when the
// magnitude is nonzero.
//
// Go Values
//
// Text converts Go numbers to numerals before normalization. Integers and big
// numbers are exact. Floats are written in their shortest round-tripping
// form without an exponent; above 2^53-1 (float64) or 2^24-1 (float32) not
// every integer is representable, so Text reports the result as inexact:
//
//  Text(float64(9007199254740993)) = "9007199254740992", exact=false
//
// Pass a string, *big.Int or shopspring decimal.Decimal to keep every digit.
package decimal
