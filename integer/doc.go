// Package integer spells non-negative integers of any length.
//
// The digits are split into sections of four from the right. Within a
// section each digit is followed by the unit for its position:
//
//  | Position | 3 | 2 | 1 | 0 |
//  |----------|---|---|---|---|
//  | Unit     | 千 | 百 | 十 |   |
//
// Each section above the first is followed by a scale:
//
//  | Section | 4  | 3  | 2  | 1  | 0 |
//  |---------|----|----|----|----|---|
//  | Scale   | 京 | 兆 | 亿 | 万 |   |
//
// Zeros
//
// Zeros at the low end of a section are silent. Any other run of zeros is
// spelled as a single zero, including a run at the high end of a section when
// a more significant section exists:
//
//  1005      一千零五
//  1050      一千零五十
//  100005    十万零五
//  105500050 一亿零五百五十万零五十
//
// An all-zero section is silent and drops its scale.
//
// Tens
//
// A one in the tens position is spelled by its unit alone: 15 is 十五 and
// 115 is 一百十五.
//
// Scale Wraparound
//
// Scale k (k >= 1) uses Scales[(k-1) mod len(Scales)]. The last scale in the
// list is always written, even for an all-zero section, which compounds it
// for the sections past the end of the list. With Scales = [万, 亿]:
//
//  1000000050005            一万亿零五万零五
//  100000000000000000000000 一千万亿亿
package integer
