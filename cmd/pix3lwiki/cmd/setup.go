package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the database schema",
	Long: `Create the wiki database and its schema.

Opening the database applies the schema, so this command only needs to
exist for first-time setup and for verifying a deployment's database path.

Example:
  pix3lwiki setup --db /var/lib/pix3lwiki/wiki.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// PersistentPreRunE already opened the store and applied the schema.
		fmt.Printf("Database ready at %s\n", dbPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
