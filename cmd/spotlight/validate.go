package main

import (
	"fmt"

	"github.com/aretw0/spotlight/internal/cli"
	"github.com/aretw0/spotlight/internal/runtime"
	"github.com/aretw0/spotlight/internal/validator"
	"github.com/aretw0/spotlight/pkg/adapters/file"
	"github.com/aretw0/spotlight/pkg/adapters/headless"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the tour files",
	Long: `Parses every tour in the tours directory and checks that each one can be walked
from start to finish. With --layout, targets are also resolved against a page layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var page runtime.Resolver
		if path, _ := cmd.Flags().GetString("layout"); path != "" {
			layout, err := cli.LoadLayout(path)
			if err != nil {
				return err
			}
			doc := headless.New(layout.DocumentOptions()...)
			layout.Apply(doc)
			page = doc
		}

		loader := file.NewLoader(cfg.ToursDir)
		names, err := loader.ListTours()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, name := range names {
			tour, err := loader.GetTour(name)
			if err != nil {
				return err
			}
			if err := validator.ValidateTour(tour, page); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ %s (%d steps, key %s)\n", tour.Name, len(tour.Steps), tour.Key)
		}
		fmt.Fprintf(out, "%d tour(s) valid in %s\n", len(names), cfg.ToursDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("layout", "", "Page layout file to resolve targets against")
}
