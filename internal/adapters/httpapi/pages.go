package httpapi

import (
	"context"
	"log"
	"net/http"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application/commands"
)

type createPageRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CategoryID *string  `json:"category_id"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status"`
}

type updatePageRequest struct {
	Title         *string  `json:"title"`
	Content       *string  `json:"content"`
	CategoryID    *string  `json:"category_id"`
	Tags          []string `json:"tags"`
	Status        *string  `json:"status"`
	ChangeSummary *string  `json:"change_summary"`
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	cmd := commands.NewListPagesCommand(s.pages)
	cmd.Status = r.URL.Query().Get("status")
	cmd.CategoryID = r.URL.Query().Get("category_id")
	cmd.Limit = intParam(r, "limit")
	cmd.Offset = intParam(r, "offset")

	pages, err := cmd.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"pages": pages})
}

func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req createPageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cmd := commands.NewCreatePageCommand(s.pages, s.cats, user)
	cmd.Title = req.Title
	cmd.Content = req.Content
	cmd.CategoryID = req.CategoryID
	cmd.Tags = req.Tags
	cmd.Status = req.Status

	result, err := cmd.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	s.syncIndex(r.Context(), result.Page.ID)
	writeJSON(w, http.StatusCreated, map[string]any{"page": result.Page})
}

func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	page, err := commands.NewGetPageCommand(s.pages, r.PathValue("id")).Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"page": page})
}

func (s *Server) handleGetPageBySlug(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	page, err := commands.NewGetPageBySlugCommand(s.pages, r.PathValue("slug")).Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"page": page})
}

func (s *Server) handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req updatePageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cmd := commands.NewUpdatePageCommand(s.pages, s.cats, user, r.PathValue("id"))
	cmd.Title = req.Title
	cmd.Content = req.Content
	cmd.CategoryID = req.CategoryID
	cmd.Tags = req.Tags
	cmd.Status = req.Status
	cmd.ChangeSummary = req.ChangeSummary

	result, err := cmd.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	s.syncIndex(r.Context(), cmd.PageID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "version": result.NewVersion})
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if _, err := commands.NewDeletePageCommand(s.pages, user, id).Execute(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	if s.idx != nil {
		if err := s.idx.DeletePage(id); err != nil {
			log.Printf("removing page %s from index: %v", id, err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	versions, err := commands.NewListVersionsCommand(s.pages, r.PathValue("id")).Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"versions": versions})
}

// syncIndex refreshes a page's index entry after a successful mutation.
// Index failures are logged and swallowed; the write already committed.
func (s *Server) syncIndex(ctx context.Context, pageID string) {
	if s.idx == nil {
		return
	}
	page, err := s.pages.GetPage(ctx, pageID)
	if err != nil {
		log.Printf("reading page %s for indexing: %v", pageID, err)
		return
	}
	var indexErr error
	if page == nil {
		indexErr = s.idx.DeletePage(pageID)
	} else {
		indexErr = s.idx.IndexPage(page)
	}
	if indexErr != nil {
		log.Printf("indexing page %s: %v", pageID, indexErr)
	}
}
