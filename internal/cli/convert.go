package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/input"
)

// Notations accepted by convert --from.
const (
	fromHex = "hex"
	fromRGB = "rgb"
	fromHSL = "hsl"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Show a color in hex, rgb and hsl notation",
		Long: `Convert a color between hex, rgb and hsl notation.

With --from rgb the color is "r,g,b" (0-255 each); with --from hsl it is
"h,s,l" (hue 0-360, saturation and lightness 0-100). Out-of-range values
are clamped and non-numeric values read as 0.`,
		Example: `  gradientlab convert '#4f46e5'
  gradientlab convert --from rgb 79,70,229
  gradientlab convert --from hsl 243,75,59`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := parseColor(from, args[0])
			if err != nil {
				return err
			}
			printColor(cmd.OutOrStdout(), col)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", fromHex, "input notation: hex, rgb or hsl")
	_ = cmd.RegisterFlagCompletionFunc("from", cobra.FixedCompletions(
		[]string{fromHex, fromRGB, fromHSL}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// parseColor reads s in the given notation.
func parseColor(from, s string) (colors.Color, error) {
	switch strings.ToLower(from) {
	case fromHex:
		return colors.HexToRGB(s)
	case fromRGB:
		v, err := input.Triple(s, input.RGBRanges)
		if err != nil {
			return colors.Color{}, err
		}
		return colors.Color{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}, nil
	case fromHSL:
		v, err := input.Triple(s, input.HSLRanges)
		if err != nil {
			return colors.Color{}, err
		}
		return colors.FromHSL(colors.HSL{H: v[0], S: v[1], L: v[2]}), nil
	}
	return colors.Color{}, fmt.Errorf("invalid --from %q (must be hex, rgb or hsl)", from)
}

// printColor prints c in every notation, preceded by a swatch.
func printColor(w io.Writer, c colors.Color) {
	fmt.Fprintln(w, swatch(c, 6))
	for _, f := range []colors.Format{colors.FormatHex, colors.FormatRGB, colors.FormatHSL} {
		printKeyValue(w, f.String(), c.Format(f))
	}
}
