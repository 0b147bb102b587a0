package httpapi

import (
	"net/http"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application/commands"
)

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
	SortOrder   int     `json:"sort_order"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	SortOrder   *int    `json:"sort_order"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := commands.NewListCategoriesCommand(s.cats).Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req createCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cmd := commands.NewCreateCategoryCommand(s.cats, user)
	cmd.Name = req.Name
	cmd.Description = req.Description
	cmd.Color = req.Color
	cmd.SortOrder = req.SortOrder

	result, err := cmd.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"category": result.Category})
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	cat, err := commands.NewGetCategoryCommand(s.cats, r.PathValue("id")).Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"category": cat})
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req updateCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cmd := commands.NewUpdateCategoryCommand(s.cats, user, r.PathValue("id"))
	cmd.Name = req.Name
	cmd.Description = req.Description
	cmd.Color = req.Color
	cmd.SortOrder = req.SortOrder

	result, err := cmd.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"category": result.Category})
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	cmd := commands.NewDeleteCategoryCommand(s.cats, user, r.PathValue("id"))
	if _, err := cmd.Execute(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
