package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nailaham15/nailah-s-portfolio/internal/config"
	"github.com/nailaham15/nailah-s-portfolio/internal/content"
	"github.com/nailaham15/nailah-s-portfolio/internal/observability"
	"github.com/nailaham15/nailah-s-portfolio/internal/portfolio"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Nailah's portfolio site",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(contentCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	var (
		addr    string
		dev     bool
		envFile string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.WithEnvFile(envFile))
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("dev") {
				cfg.Server.Dev = dev
			}

			logger, err := observability.NewLogger(cfg.Log.Level, cfg.Server.Dev)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			if err := serve(cmd.Context(), cfg, logger); err != nil {
				logger.Error("server stopped", zap.Error(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (overrides PORTFOLIO_ADDR and PORT)")
	cmd.Flags().BoolVar(&dev, "dev", false, "reparse templates per request and hot-reload content")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load; missing files are ignored")
	return cmd
}

func contentCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect the authored portfolio content",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "content directory (defaults to the embedded data)")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate every data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := content.Load(content.Source(dir))
			if err != nil {
				var vErr *content.ValidationError
				if errors.As(err, &vErr) {
					for _, p := range vErr.Problems {
						fmt.Fprintln(cmd.ErrOrStderr(), "  -", p)
					}
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "content ok: %s\n", strings.Join(lib.Summary(), " "))
			return nil
		},
	}

	var category string
	list := &cobra.Command{
		Use:   "list",
		Short: "Print the records a category view renders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := content.Load(content.Source(dir))
			if err != nil {
				return err
			}
			view := portfolio.Filter(lib, portfolio.ParseCategory(category))
			out := cmd.OutOrStdout()
			for _, sec := range view.Sections {
				fmt.Fprintf(out, "%s (%d of %d)\n", sec.Section, len(sec.Entries), sec.Total)
				for _, e := range sec.Entries {
					fmt.Fprintf(out, "  %-16s %s\n", e.Slug(), e.Title)
				}
			}
			return nil
		},
	}
	list.Flags().StringVar(&category, "category", string(portfolio.CategoryAll), "all, ui, graphic, video, sunshine (brand) or architectural")

	cmd.AddCommand(validate, list)
	return cmd
}
