package colors

import (
	"fmt"
	"strings"

	"github.com/matzehuels/gradientlab/pkg/errors"
)

// Format selects how a color is displayed to the user.
type Format int

// Display formats.
const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
)

var formatNames = map[Format]string{
	FormatHex: "hex",
	FormatRGB: "rgb",
	FormatHSL: "hsl",
}

// String returns the lowercase format name.
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Next cycles hex → rgb → hsl → hex.
func (f Format) Next() Format {
	return (f + 1) % 3
}

// ParseFormat parses "hex", "rgb" or "hsl" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return FormatHex, errors.New(errors.ErrCodeInvalidFormat, "unknown color format %q (must be hex, rgb or hsl)", s)
}

// Format renders c in the given display format:
// "#rrggbb", "rgb(r, g, b)" or "hsl(h, s%, l%)".
func (c Color) Format(f Format) string {
	switch f {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case FormatHSL:
		return c.HSL().String()
	default:
		return c.Hex()
	}
}

// Describe renders a hex string in format f. Strings that do not parse are
// returned unchanged so that partially typed input still displays.
func Describe(hex string, f Format) string {
	c, err := HexToRGB(hex)
	if err != nil {
		return hex
	}
	return c.Format(f)
}
