package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gradientlab/pkg/gradient"
)

// cssCommand creates the css command.
func (c *CLI) cssCommand() *cobra.Command {
	var (
		design  designFlags
		copyCSS bool
	)

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the CSS gradient for a design",
		Long: `Print the CSS background value for a design.

The design starts from --file, or from the [design] table of the config
file, and individual flags override it. Mesh designs print an approximate
radial-gradient stack; use "render" for the exact mesh.`,
		Example: `  gradientlab css --type linear --angle 45 --stop '#ff0000:0' --stop '#0000ff:100'
  gradientlab css --type mesh --node '#4f46e5:20:20' --node '#06b6d4:80:80'
  gradientlab css --file design.json --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			spec, err := design.spec(cmd, cfg.Design)
			if err != nil {
				return err
			}

			css := gradient.Compose(spec)
			c.Logger.Debug("composed gradient", "type", spec.Kind, "stops", len(spec.Stops), "nodes", len(spec.Nodes))
			fmt.Fprintln(cmd.OutOrStdout(), css)

			if copyCSS {
				copyToClipboard(cmd.ErrOrStderr(), css)
				printSuccess(cmd.ErrOrStderr(), "Copied to clipboard")
			}
			return nil
		},
	}

	design.register(cmd)
	cmd.Flags().BoolVar(&copyCSS, "copy", false, "also copy the CSS to the clipboard (OSC 52)")

	return cmd
}

// copyToClipboard asks the terminal reading w to put s on the system
// clipboard. Terminals without OSC 52 support ignore the request.
func copyToClipboard(w io.Writer, s string) {
	termenv.NewOutput(w).Copy(s)
}
