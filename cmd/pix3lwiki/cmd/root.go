package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/adapters/sqlite"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/config"
)

var (
	dbPath string
	store  *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "pix3lwiki",
	Short: "Team wiki with versioned pages",
	Long: `pix3lwiki is the Pix3ltools team wiki: versioned pages, categories,
and cross-links to Pix3lBoard, served over a JSON API.

It stores everything in a single SQLite database. Every page edit appends
an immutable version snapshot, so nothing is ever lost.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		store, err = sqlite.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database %s: %w", dbPath, err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DBPath(), "path to the SQLite database")
}

// GetStore returns the initialized store
func GetStore() *sqlite.Store {
	return store
}
