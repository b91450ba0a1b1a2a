package colors

import (
	"fmt"
	"math"
)

// HSL is a color in the cylindrical hue/saturation/lightness model.
// H is in degrees [0, 359], S and L are percentages [0, 100].
type HSL struct {
	H, S, L int
}

// String returns the CSS form "hsl(h, s%, l%)".
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
}

// HexToHSL parses hex and converts it to HSL. Malformed input yields an
// INVALID_COLOR error.
func HexToHSL(hex string) (HSL, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return c.HSL(), nil
}

// HSL converts c to rounded HSL components.
//
// Lightness is (max+min)/2 over normalized channels. Saturation is 0 for
// grays, otherwise d/(2-max-min) above half lightness and d/(max+min) at or
// below it. Hue follows the piecewise formula for whichever channel is the
// maximum, checked in red, green, blue order.
func (c Color) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}
		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	deg := int(math.Round(h * 360))
	if deg == 360 {
		deg = 0
	}
	return HSL{
		H: deg,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToHex converts hue (degrees), saturation and lightness (percent) to a
// hex string.
func HSLToHex(h, s, l float64) string {
	r, g, b := hslToRGB(h, s, l)
	return RGBToHex(r*255, g*255, b*255)
}

// FromHSL converts h to the nearest Color.
func FromHSL(h HSL) Color {
	r, g, b := hslToRGB(float64(h.H), float64(h.S), float64(h.L))
	return Color{R: channel(r * 255), G: channel(g * 255), B: channel(b * 255)}
}

// hslToRGB returns normalized [0, 1] channels.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	h /= 360
	s /= 100
	l /= 100

	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hueToRGB(p, q, h+1.0/3), hueToRGB(p, q, h), hueToRGB(p, q, h-1.0/3)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
