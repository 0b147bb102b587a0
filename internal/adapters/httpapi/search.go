package httpapi

import (
	"net/http"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/application/commands"
)

// handleSearch serves both search modes. The default substring mode queries
// the store directly; mode=keyword uses the full-text index when one is
// configured, falling back to substring when it is not.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	q := r.URL.Query().Get("q")
	mode := r.URL.Query().Get("mode")

	if mode == "keyword" && s.idx != nil {
		if q == "" {
			writeError(w, &application.ValidationError{Field: "q", Message: "search query is required"})
			return
		}
		limit := application.ClampLimit(intParam(r, "limit"))
		hits, err := s.idx.Search(q, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"results": hits,
			"query":   q,
			"mode":    "keyword",
			"count":   len(hits),
		})
		return
	}

	cmd := commands.NewSearchPagesCommand(s.pages, q)
	cmd.Status = r.URL.Query().Get("status")
	cmd.CategoryID = r.URL.Query().Get("category_id")
	cmd.Limit = intParam(r, "limit")
	cmd.Offset = intParam(r, "offset")

	pages, err := cmd.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": pages,
		"query":   q,
		"mode":    "substring",
		"count":   len(pages),
	})
}
