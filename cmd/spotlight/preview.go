package main

import (
	"fmt"

	"github.com/aretw0/spotlight/internal/cli"
	"github.com/aretw0/spotlight/internal/presentation/tui"
	"github.com/aretw0/spotlight/pkg/adapters/file"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <tour>",
	Short: "Render a tour's steps as formatted text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		tour, err := file.NewLoader(cfg.ToursDir).GetTour(args[0])
		if err != nil {
			return err
		}

		md := cli.TourMarkdown(tour)
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		width, _ := cmd.Flags().GetInt("width")
		render, err := tui.NewRenderer(width)
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Bool("raw", false, "Print markdown without terminal styling")
	previewCmd.Flags().Int("width", 80, "Wrap width")
}
