package main

import (
	"fmt"

	"github.com/aretw0/spotlight/internal/cli"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear tour progress for a profile",
	Long:  `Removes every "seen" flag (and the force-show override) stored for the profile, so all tours show again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		profile, _ := cmd.Flags().GetString("profile")

		stores, err := cli.NewStores(cfg.Storage)
		if err != nil {
			return err
		}
		defer stores.Close()

		store, err := stores.Open(profile)
		if err != nil {
			return err
		}
		if err := store.Reset(cmd.Context()); err != nil {
			return err
		}
		if profile == "" {
			profile = cli.DefaultProfile
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Tour progress cleared for profile %q (%s storage)\n", profile, cfg.Storage.Backend)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().String("profile", "", "Profile to reset (default profile when empty)")
}
