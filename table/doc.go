// Package table provides the glyph tables used to spell numerals.
//
// A table holds every glyph the spelling algorithm can emit:
//
//  | Field    | Entries | Simplified                  | Traditional                 |
//  |----------|---------|-----------------------------|-----------------------------|
//  | Digits   | 10      | 零一二三四五六七八九        | 零壹貳叁肆伍陸柒捌玖        |
//  | Units    | 3       | 十百千                      | 拾佰仟                      |
//  | Scales   | 1..n    | 万亿兆京垓秭穰沟涧正载      | 萬億兆京垓秭穰溝澗正載      |
//  | Point    | 1       | 点                          | 點                          |
//  | Negative | 1       | 负                          | 負                          |
//  |----------|---------|-----------------------------|-----------------------------|
//
// Units are the in-section position words for tens, hundreds and thousands.
// Scales are the words for each group of four digits above the first (10^4,
// 10^8, ...). When a number has more groups than a table has scales, the
// scale list wraps around and the last scale is compounded, so a table with
// only 万 and 亿 spells 10^16 as 一亿亿.
//
// Glyphs need not be distinct. A table may reuse a glyph or reorder the
// digits (e.g. radio style 洞幺两三四五六拐八九).
//
// File Format
//
// Tables may be loaded from YAML or JSON:
//
//  base: simplified
//  digits: [〇, 一, 两, 三, 四, 五, 六, 七, 八, 九]
//  scales: [万, 亿]
//
// The optional base (simplified or traditional) supplies every key left out.
// Without a base all of digits, units, scales, point and negative are
// required.
package table
