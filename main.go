package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"mandelview/app"
	"mandelview/hal"
	"mandelview/internal/buildinfo"
)

func mainCmd() *cobra.Command {
	var cfg hal.HeadlessConfig
	var appCfg app.Config

	cmd := &cobra.Command{
		Use:   "mandelview",
		Short: "Explore the Mandelbrot set with the keyboard",
		Long:  "Arrows pan, +/- zoom, Esc or q quits.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			newApp := func(h hal.HAL) (func() error, error) {
				return app.NewWithConfig(h, appCfg)
			}
			win := app.WindowConfig()
			if !cfg.Enabled {
				return hal.RunWindow(newApp, win)
			}
			cfg.Width, cfg.Height = win.Width, win.Height
			err := hal.RunHeadless(cmd.Context(), newApp, cfg)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	cmd.Flags().IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	cmd.Flags().Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	cmd.Flags().BoolVar(&appCfg.Streamed, "streamed", false, "Present each frame progressively, column batch by column batch.")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version, commit and build date",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Long())
		},
	})

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := mainCmd().ExecuteContext(ctx); err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
