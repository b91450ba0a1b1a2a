package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gradientlab/pkg/gradient"
	"github.com/matzehuels/gradientlab/pkg/pipeline"
)

// defaultOutput is the file written when --output is not given.
const defaultOutput = "gradient.png"

// renderOpts holds the flags of the render command that are not part of
// the design.
type renderOpts struct {
	output  string
	width   int
	height  int
	workers int
	draft   int
	handles bool
	refresh bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		design designFlags
		opts   renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a design to a PNG preview",
		Long: `Render a design to a PNG file.

Mesh designs are rasterized exactly; other kinds are sampled per pixel.
Previews are cached by design and size, so rendering the same design twice
reads it from the cache. Use --refresh to render anyway.`,
		Example: `  gradientlab render --type mesh -o mesh.png --width 1920 --height 1080
  gradientlab render --file design.json --handles --draft 4`,
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

			popts := cfg.Preview
			flags := cmd.Flags()
			if flags.Changed("width") {
				popts.Width = opts.width
			}
			if flags.Changed("height") {
				popts.Height = opts.height
			}
			if flags.Changed("workers") {
				popts.Workers = opts.workers
			}
			if flags.Changed("draft") {
				popts.Draft = opts.draft
			}
			if flags.Changed("handles") {
				popts.Handles = opts.handles
			}
			popts.Refresh = opts.refresh

			runner, err := c.newRunner(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer runner.Close()

			return runRender(cmd, runner, spec, popts, opts.output)
		},
	}

	design.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaultOutput, "output PNG file")
	cmd.Flags().IntVar(&opts.width, "width", pipeline.DefaultWidth, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", pipeline.DefaultHeight, "image height in pixels")
	cmd.Flags().IntVar(&opts.workers, "workers", pipeline.DefaultWorkers, "goroutines rasterizing mesh rows")
	cmd.Flags().IntVar(&opts.draft, "draft", 0, "render at 1/N size and scale up")
	cmd.Flags().BoolVar(&opts.handles, "handles", false, "draw mesh node handles")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached previews")

	return cmd
}

// runRender renders spec through runner and writes the PNG to output.
func runRender(cmd *cobra.Command, runner *pipeline.Runner, spec gradient.Spec, opts pipeline.Options, output string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	prog := newProgress(logger)
	data, hit, err := renderWithSpinner(ctx, cmd, runner, spec, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %dx%d %s preview", opts.Width, opts.Height, kindName(spec.Kind)))

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered preview")
	printFile(out, output)
	printRenderStats(out, opts.Width, opts.Height, len(data), hit)
	return nil
}

// renderWithSpinner shows a spinner on stderr while the runner works.
func renderWithSpinner(ctx context.Context, cmd *cobra.Command, runner *pipeline.Runner, spec gradient.Spec, opts pipeline.Options) ([]byte, bool, error) {
	s := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Rendering %dx%d...", opts.Width, opts.Height))
	s.Start()
	defer s.Stop()
	return runner.PNG(ctx, spec, opts)
}

func kindName(k gradient.Kind) string {
	if k == "" {
		return string(gradient.KindLinear)
	}
	return string(k)
}
