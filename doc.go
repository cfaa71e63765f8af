// Package numerals spells decimal numerals in Chinese.
//
//  numerals.Convert(105500050)    // 一亿零五百五十万零五十
//  numerals.Convert("-0000100.5") // 负一百点五
//  numerals.Transform("-0010")    // 负零零一零
//
// Convert applies Chinese positional syntax: units, scales and zero elision.
// Transform is a flat glyph-for-glyph transliteration that keeps leading
// zeros.
//
// Inputs may be strings, Go integers and floats, *big.Int, *big.Float or
// shopspring decimal.Decimal. Strings must match -?[0-9]+(\.[0-9]+)? and
// have no length limit. Floats above the exact integer range of their type
// are converted on a best effort basis and a warning is logged.
//
// Tables
//
// The package level functions use the active table, Simplified by default.
// SetDigitTable replaces it for every later call in the process. A Converter
// carries its own table and logger instead:
//
//  c := numerals.New(numerals.WithTable(numerals.Traditional))
//  c.Convert(14587744) // 壹仟肆佰伍拾捌萬柒仟柒佰肆拾肆
//
// Tables are shared, not copied. Changing a table's fields while it is in use
// is visible to the next conversion.
package numerals
