package cli

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gradientlab/internal/server"
	pkgerrors "github.com/matzehuels/gradientlab/pkg/errors"
)

// serveCommand creates the preview server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		design designFlags
		addr   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve browser previews over HTTP",
		Long: `Start an HTTP server that previews designs in the browser.

The page at / shows the configured design. Tools can POST design JSON to
/api/css and /api/preview.png. Previews are cached in the configured
backend; use the redis backend to share them between server instances.`,
		Example: `  gradientlab serve
  gradientlab serve --addr :8080 --file design.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				if err := pkgerrors.ValidateAddr(addr); err != nil {
					return err
				}
				cfg.Server.Addr = addr
			}
			spec, err := design.spec(cmd, cfg.Design)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, cfg)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner,
				server.WithDesign(spec),
				server.WithPreviewOptions(cfg.Preview),
				server.WithLogger(c.Logger),
			)

			out := cmd.OutOrStdout()
			printInfo(out, "Serving previews at %s", StyleLink.Render("http://"+cfg.Server.Addr))
			printDetail(out, "Press Ctrl+C to stop")

			err = srv.ListenAndServe(ctx, cfg.Server.Addr)
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}

	design.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, localhost:7080)")

	return cmd
}
