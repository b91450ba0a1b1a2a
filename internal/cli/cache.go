package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gradientlab/pkg/cache"
	"github.com/matzehuels/gradientlab/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the preview cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all cached previews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if cfg.Cache.Backend == config.BackendNone {
				printInfo(out, "Caching is disabled")
				return nil
			}

			ctx := cmd.Context()
			cc, err := c.newCache(ctx, cfg)
			if err != nil {
				return err
			}
			defer cc.Close()

			clearer, ok := cc.(cache.Clearer)
			if !ok {
				return fmt.Errorf("cache backend %q cannot be cleared", cfg.Cache.Backend)
			}

			s := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Clearing cache...")
			s.Start()
			if err := clearer.Clear(ctx); err != nil {
				s.StopWithError("Could not clear the cache")
				return fmt.Errorf("clear cache: %w", err)
			}
			s.Stop()

			printSuccess(out, "Cleared cached previews")
			printDetail(out, "Location: %s", cacheLocation(cfg))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where previews are cached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cacheLocation(cfg))
			return nil
		},
	}
}

// cacheLocation describes where cfg's backend keeps entries: a directory
// for the file backend, a redis URL for redis.
func cacheLocation(cfg *config.Config) string {
	switch cfg.Cache.Backend {
	case config.BackendNone:
		return "none"
	case config.BackendRedis:
		return fmt.Sprintf("redis://%s/%d", cfg.Cache.RedisAddr, cfg.Cache.RedisDB)
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		return "none"
	}
	return dir
}
