package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/adapters/bleve"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/config"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

var reindexPath string

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the full-text index from the database",
	Long: `Rebuild the full-text index from the database.

The index is advisory: it can fall behind or be deleted outright, and this
command restores it to match the store.

Example:
  pix3lwiki reindex --index ./wiki.bleve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reindexPath == "" {
			return fmt.Errorf("--index is required (or set PIX3LWIKI_INDEX)")
		}
		ctx := context.Background()

		idx, err := bleve.Open(reindexPath)
		if err != nil {
			return fmt.Errorf("opening index %s: %w", reindexPath, err)
		}
		defer idx.Close()

		pages, err := GetStore().ListPages(ctx, ports.PageFilter{})
		if err != nil {
			return fmt.Errorf("listing pages: %w", err)
		}
		if err := idx.Rebuild(pages); err != nil {
			return fmt.Errorf("rebuilding index: %w", err)
		}

		count, err := idx.Count()
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %d published pages (of %d total)\n", count, len(pages))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reindexCmd)
	reindexCmd.Flags().StringVar(&reindexPath, "index", config.IndexPath(), "path to the full-text index")
}
