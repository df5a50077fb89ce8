package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/proinvestix/desktop/internal/domain"
	"github.com/proinvestix/desktop/internal/repository"
	"github.com/proinvestix/desktop/internal/repository/gormdb"
)

func newSettingsCmd(load configLoader) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"setting"},
		Short:   "Manage stored frontend settings",
	}

	// withRepo opens the settings database for the duration of fn
	withRepo := func(fn func(repo repository.SettingRepository) error) error {
		cfg, err := load()
		if err != nil {
			return err
		}
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		return fn(gormdb.NewSettingRepository(db))
	}

	settingsCmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all settings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(func(repo repository.SettingRepository) error {
				settings, err := repo.GetAll()
				if err != nil {
					return fmt.Errorf("failed to list settings: %w", err)
				}
				if len(settings) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No settings stored.")
					return nil
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "KEY\tVALUE\tUPDATED")
				for _, s := range settings {
					fmt.Fprintf(w, "%s\t%s\t%s\n", s.Key, s.Value, s.UpdatedAt.Format("2006-01-02 15:04"))
				}
				return w.Flush()
			})
		},
	})

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(func(repo repository.SettingRepository) error {
				value, err := repo.Get(args[0])
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("setting %q not found", args[0])
				}
				if err != nil {
					return fmt.Errorf("failed to get setting: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			})
		},
	})

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(func(repo repository.SettingRepository) error {
				if err := repo.Set(args[0], args[1]); err != nil {
					return fmt.Errorf("failed to store setting: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stored %s.\n", args[0])
				return nil
			})
		},
	})

	settingsCmd.AddCommand(&cobra.Command{
		Use:     "delete <key>",
		Aliases: []string{"rm"},
		Short:   "Remove a setting",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepo(func(repo repository.SettingRepository) error {
				err := repo.Delete(args[0])
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("setting %q not found", args[0])
				}
				if err != nil {
					return fmt.Errorf("failed to delete setting: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
				return nil
			})
		},
	})

	return settingsCmd
}
