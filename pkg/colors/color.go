package colors

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/matzehuels/gradientlab/pkg/errors"
)

// Color is an opaque 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// HexToRGB parses a 6-digit hex color, optionally prefixed with '#'.
// Digits are case-insensitive. Any other length or a non-hex character
// yields an INVALID_COLOR error.
func HexToRGB(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color: %q", hex)
	}

	var ch [3]uint8
	for i := range ch {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex color: %q", hex)
		}
		ch[i] = hi<<4 | lo
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// IsHex reports whether s is a complete hex color accepted by HexToRGB.
func IsHex(s string) bool {
	_, err := HexToRGB(s)
	return err == nil
}

// MustParse is like HexToRGB but panics on malformed input.
// It is meant for package-level color literals.
func MustParse(hex string) Color {
	c, err := HexToRGB(hex)
	if err != nil {
		panic("colors.MustParse: " + err.Error())
	}
	return c
}

// ParseOr parses hex and returns fallback if it is malformed.
func ParseOr(hex string, fallback Color) Color {
	c, err := HexToRGB(hex)
	if err != nil {
		return fallback
	}
	return c
}

// RGBToHex encodes three channel values as "#rrggbb". Each channel is
// rounded to the nearest integer and clamped to [0, 255] first.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

// Hex returns the lowercase "#rrggbb" form of c.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// NRGBA returns c as an opaque image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// FromColor converts any image/color value to a Color, dropping alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// inputs as HexToRGB.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := HexToRGB(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Random returns a random color in #000000..#fffffe.
func Random(r *rand.Rand) Color {
	v := r.IntN(0xffffff)
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// channel rounds and clamps v to a byte. NaN maps to 0.
func channel(v float64) uint8 {
	v = math.Round(v)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
