package main

import (
	"fmt"

	"github.com/aretw0/spotlight/internal/cli"
	"github.com/aretw0/spotlight/internal/presentation/graph"
	"github.com/aretw0/spotlight/internal/runtime"
	"github.com/aretw0/spotlight/pkg/adapters/file"
	"github.com/aretw0/spotlight/pkg/adapters/headless"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <tour>",
	Short: "Print a tour as a Mermaid flowchart",
	Long: `Prints the step flow of a tour as Mermaid. With --layout, steps that would be
dropped on that page are greyed out and fallback rewrites are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		tour, err := file.NewLoader(cfg.ToursDir).GetTour(args[0])
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if path, _ := cmd.Flags().GetString("layout"); path != "" {
			layout, err := cli.LoadLayout(path)
			if err != nil {
				return err
			}
			doc := headless.New(layout.DocumentOptions()...)
			layout.Apply(doc)
			overlay = graph.OverlayFor(tour, runtime.ResolveSteps(doc, tour))
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(tour, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("layout", "", "Page layout file to resolve targets against")
}
