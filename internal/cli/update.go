package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proinvestix/desktop/internal/updater"
	"github.com/proinvestix/desktop/internal/version"
)

func newUpdateCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Check the release feed for a newer desktop version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking for updates...")

			result, err := updater.NewChecker(cfg.UpdateURL, version.Version).Check(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to check for updates: %w", err)
			}
			if !result.Available {
				fmt.Fprintf(out, "Already up to date (v%s).\n", result.CurrentVersion)
				return nil
			}

			fmt.Fprintf(out, "Update available: v%s → v%s\n", result.CurrentVersion, result.LatestVersion)
			if result.ReleaseURL != "" {
				fmt.Fprintf(out, "Release: %s\n", result.ReleaseURL)
			}
			if updater.FindAsset(result.Release, updater.AssetName()) == nil {
				fmt.Fprintf(out, "No %s binary in this release.\n", updater.AssetName())
			}
			return nil
		},
	}
}
