package main

import (
	"io"
	"os"

	"github.com/aretw0/spotlight"
	"github.com/aretw0/spotlight/internal/cli"
	"github.com/aretw0/spotlight/internal/presentation/tui"
	"github.com/aretw0/spotlight/pkg/adapters/file"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <tour>",
	Short: "Walk through a tour in the terminal",
	Long: `Runs the tour engine against a headless page. The page comes from --layout,
or is generated so every target of the tour exists. Progress is read from and
written to the configured storage, exactly as a browser host would.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := cli.NewLogger(cfg)
		if err != nil {
			return err
		}

		loader := file.NewLoader(cfg.ToursDir)
		tour, err := loader.GetTour(args[0])
		if err != nil {
			return err
		}

		layout := cli.SyntheticLayout(tour)
		if path, _ := cmd.Flags().GetString("layout"); path != "" {
			if layout, err = cli.LoadLayout(path); err != nil {
				return err
			}
		}

		stores, err := cli.NewStores(cfg.Storage)
		if err != nil {
			return err
		}
		defer stores.Close()
		profile, _ := cmd.Flags().GetString("profile")
		store, err := stores.Open(profile)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		lineMode, _ := cmd.Flags().GetBool("line")

		var out io.Writer = os.Stdout
		raw := false
		if !lineMode {
			restore, ok := cli.MakeRaw(os.Stdin)
			defer restore()
			if ok {
				raw = true
				out = cli.CRLFWriter{W: os.Stdout}
			}
		}
		tui.PrintBanner(out, spotlight.Version)

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		_, err = cli.Simulate(sigCtx, cli.SimulateOptions{
			Tour:      tour.Name,
			Loader:    loader,
			Store:     store,
			Layout:    layout,
			Viewport:  domain.Size{Width: cfg.Renderer.Width, Height: cfg.Renderer.Height},
			Delay:     cfg.Renderer.TransitionDelay,
			ForceShow: force || cfg.ForceShow,
			Logger:    logger,
			In:        os.Stdin,
			Out:       out,
			Raw:       raw,
		})
		return err
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().String("layout", "", "YAML file describing the page elements")
	simulateCmd.Flags().String("profile", "", "Profile whose progress is used")
	simulateCmd.Flags().Bool("force", false, "Show the tour even if it was already seen")
	simulateCmd.Flags().Bool("line", false, "Read commands line by line instead of single keys")
}
