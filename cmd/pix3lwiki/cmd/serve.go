package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/adapters/bleve"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/adapters/httpapi"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/config"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

var (
	serveAddr  string
	serveIndex string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the wiki JSON API",
	Long: `Serve the wiki JSON API over HTTP.

With --index the server also maintains a Bleve full-text index and answers
mode=keyword searches from it. Without it only substring search is
available.

Examples:
  pix3lwiki serve
  pix3lwiki serve --addr :9090 --index ./wiki.bleve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetStore()

		var idx ports.PageIndex
		if serveIndex != "" {
			bleveIdx, err := bleve.Open(serveIndex)
			if err != nil {
				return fmt.Errorf("opening index %s: %w", serveIndex, err)
			}
			defer bleveIdx.Close()
			idx = bleveIdx
		}

		server := httpapi.NewServer(store, store, store, store, idx)
		log.Printf("pix3lwiki listening on %s (db %s)", serveAddr, dbPath)
		return http.ListenAndServe(serveAddr, server.Handler())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", config.ListenAddr(), "listen address")
	serveCmd.Flags().StringVar(&serveIndex, "index", config.IndexPath(), "path to the full-text index (empty disables keyword search)")
}
