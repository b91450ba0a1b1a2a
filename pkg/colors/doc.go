// Package colors converts between the three color notations a gradient
// editor exposes: hex strings, 8-bit RGB triples and HSL triples.
//
// # Representations
//
// [Color] is the canonical form: one byte per channel, no alpha. Hex strings
// are "#rrggbb" (the leading '#' is optional on input, case-insensitive) and
// are always written lowercase. [HSL] holds integer hue in degrees and
// integer saturation/lightness in percent, matching what numeric input
// fields show.
//
// # Conversions
//
//	c, err := colors.HexToRGB("#4f46e5")      // {79 70 229}
//	hex := colors.RGBToHex(79, 70, 229)       // "#4f46e5"
//	hsl, err := colors.HexToHSL("#4f46e5")    // {243 75 59}
//	hex = colors.HSLToHex(243, 75, 59)        // "#4f46e5" within rounding
//
// Round trips are lossless only within 8-bit rounding: hex → RGB → hex is
// exact, HSL → hex → HSL may move each component by one unit, and for
// achromatic colors (saturation 0) hue is not recoverable at all.
//
// # Failure handling
//
// Malformed hex strings return an error with code INVALID_COLOR. Interactive
// callers are expected to recover locally, typically with [ParseOr] and
// [Black] as the fallback, rather than propagate the error.
package colors
