// Package cli implements proinvestixctl, a command line companion for
// inspecting the desktop shell's settings store and release feed.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proinvestix/desktop/internal/config"
	"github.com/proinvestix/desktop/internal/repository/gormdb"
)

// NewRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func NewRootCmd() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:   "proinvestixctl",
		Short: "Inspect and manage the ProInvestiX desktop shell",
		Long: `proinvestixctl reads the same data directory as the desktop app.
It can list and edit stored settings and query the release feed.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "",
		"Data directory (default: $PROINVESTIX_DATA_DIR or ~/.config/proinvestix)")

	loadConfig := func() (*config.Config, error) {
		return config.LoadDir(dataDir)
	}

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(newSettingsCmd(loadConfig))
	rootCmd.AddCommand(newUpdateCmd(loadConfig))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

type configLoader func() (*config.Config, error)

func openDB(cfg *config.Config) (*gormdb.DB, error) {
	var (
		db  *gormdb.DB
		err error
	)
	if cfg.DSN != "" {
		db, err = gormdb.NewDBWithDSN(cfg.DSN)
	} else {
		db, err = gormdb.NewDB(cfg.DBPath())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}
	return db, nil
}
