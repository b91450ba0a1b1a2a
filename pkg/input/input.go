// Package input parses values typed into editor fields and CLI flags.
//
// Numeric fields are forgiving: a leading integer is read the way a browser
// form reads it ("42px" is 42), anything unparseable counts as 0, and the
// result is clamped into the field's range. Hex fields accept partial input
// while the user is typing but only complete colors are committed.
package input

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/errors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
)

var (
	partialHex  = regexp.MustCompile(`^#[0-9A-Fa-f]{0,6}$`)
	completeHex = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)
)

// Int reads the leading integer of s, ignoring surrounding whitespace and
// trailing garbage. It returns 0 when s does not start with a number.
func Int(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of int range; saturate toward the sign.
		if s[0] == '-' {
			return minInt
		}
		return maxInt
	}
	return n
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// Clamp parses s with Int and clamps it to [lo, hi].
func Clamp(s string, lo, hi int) int {
	return min(max(Int(s), lo), hi)
}

// Angle parses a gradient angle in degrees (0-360).
func Angle(s string) int { return Clamp(s, 0, 360) }

// Percent parses a stop position or coordinate (0-100).
func Percent(s string) int { return Clamp(s, 0, 100) }

// Channel parses an RGB channel (0-255).
func Channel(s string) int { return Clamp(s, 0, 255) }

// Hue parses an HSL hue (0-360).
func Hue(s string) int { return Clamp(s, 0, 360) }

// HexInput classifies a hex field's text. ok reports whether s may stay in
// the field (a '#' followed by up to six hex digits, or a complete color);
// complete reports whether s is a full color that can be committed.
func HexInput(s string) (complete, ok bool) {
	complete = completeHex.MatchString(s)
	return complete, complete || partialHex.MatchString(s)
}

// ParseStop parses a "#rrggbb:position" flag value. The position is
// clamped to 0-100 and defaults to 0 when omitted.
func ParseStop(s string) (gradient.Stop, error) {
	hex, rest, _ := strings.Cut(s, ":")
	c, err := parseHex(hex, s)
	if err != nil {
		return gradient.Stop{}, err
	}
	return gradient.Stop{ID: gradient.NewID(), Color: c, Position: float64(Percent(rest))}, nil
}

// ParseNode parses a "#rrggbb:x:y" flag value. Coordinates are clamped to
// 0-100.
func ParseNode(s string) (gradient.Node, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return gradient.Node{}, errors.New(errors.ErrCodeInvalidInput, "mesh node %q must look like #rrggbb:x:y", s)
	}
	c, err := parseHex(parts[0], s)
	if err != nil {
		return gradient.Node{}, err
	}
	return gradient.Node{
		ID:    gradient.NewID(),
		X:     float64(Percent(parts[1])),
		Y:     float64(Percent(parts[2])),
		Color: c,
	}, nil
}

// Triple parses three comma-separated integers such as "79,70,229" and
// clamps each to its own range.
func Triple(s string, ranges [3][2]int) ([3]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]int{}, errors.New(errors.ErrCodeInvalidInput, "expected three comma-separated values, got %q", s)
	}
	var out [3]int
	for i, p := range parts {
		out[i] = Clamp(p, ranges[i][0], ranges[i][1])
	}
	return out, nil
}

// RGBRanges and HSLRanges are the channel ranges for Triple.
var (
	RGBRanges = [3][2]int{{0, 255}, {0, 255}, {0, 255}}
	HSLRanges = [3][2]int{{0, 360}, {0, 100}, {0, 100}}
)

func parseHex(hex, whole string) (colors.Color, error) {
	if !completeHex.MatchString(hex) {
		return colors.Color{}, errors.New(errors.ErrCodeInvalidColor, "invalid color in %q: want #rrggbb", whole)
	}
	return colors.HexToRGB(hex)
}
