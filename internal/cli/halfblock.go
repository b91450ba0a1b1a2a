package cli

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gradientlab/pkg/colors"
)

// upperHalf is drawn with the upper pixel as foreground and the lower one
// as background, fitting two pixel rows in one terminal line.
const upperHalf = "▀"

// halfBlock renders img as terminal text, one line per two pixel rows. An
// odd last row leaves the lower half of its cells unstyled.
func halfBlock(img *image.NRGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(colors.FromColor(img.NRGBAAt(x, y))))
			if y+1 < b.Max.Y {
				style = style.Background(hexColor(colors.FromColor(img.NRGBAAt(x, y+1))))
			}
			sb.WriteString(style.Render(upperHalf))
		}
	}
	return sb.String()
}

// swatch is a block of width cells filled with c.
func swatch(c colors.Color, width int) string {
	return lipgloss.NewStyle().Background(hexColor(c)).Render(strings.Repeat(" ", width))
}

func hexColor(c colors.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
