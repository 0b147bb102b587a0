// Package httpapi serves the wiki's JSON API. Handlers stay thin: they
// decode the request, run a command, and map the result or error onto the
// wire. All authorization decisions live in the command layer.
package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// Server holds the stores and the optional full-text index behind the API.
type Server struct {
	pages ports.PageStore
	cats  ports.CategoryStore
	links ports.LinkStore
	auth  ports.Authenticator
	idx   ports.PageIndex // nil when keyword search is disabled
}

// NewServer builds a Server. idx may be nil.
func NewServer(pages ports.PageStore, cats ports.CategoryStore, links ports.LinkStore, auth ports.Authenticator, idx ports.PageIndex) *Server {
	return &Server{pages: pages, cats: cats, links: links, auth: auth, idx: idx}
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /api/pages", s.handleListPages)
	mux.HandleFunc("POST /api/pages", s.handleCreatePage)
	mux.HandleFunc("GET /api/pages/{id}", s.handleGetPage)
	mux.HandleFunc("PUT /api/pages/{id}", s.handleUpdatePage)
	mux.HandleFunc("DELETE /api/pages/{id}", s.handleDeletePage)
	mux.HandleFunc("GET /api/pages/{id}/versions", s.handleListVersions)
	mux.HandleFunc("GET /api/pages/by-slug/{slug}", s.handleGetPageBySlug)

	mux.HandleFunc("GET /api/search", s.handleSearch)

	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleCreateCategory)
	mux.HandleFunc("GET /api/categories/{id}", s.handleGetCategory)
	mux.HandleFunc("PUT /api/categories/{id}", s.handleUpdateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", s.handleDeleteCategory)

	mux.HandleFunc("GET /api/links", s.handleListLinks)
	mux.HandleFunc("POST /api/links", s.handleCreateLink)
	mux.HandleFunc("DELETE /api/links/{id}", s.handleDeleteLink)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// currentUser resolves the request's session token, from the auth-token
// cookie or an Authorization: Bearer header. Returns (nil, nil) when the
// request carries no usable token.
func (s *Server) currentUser(r *http.Request) (*domain.User, error) {
	token := ""
	if cookie, err := r.Cookie("auth-token"); err == nil {
		token = cookie.Value
	}
	if header := r.Header.Get("Authorization"); header != "" {
		if rest, ok := strings.CutPrefix(header, "Bearer "); ok {
			token = rest
		}
	}
	if token == "" {
		return nil, nil
	}
	return s.auth.Resolve(r.Context(), token)
}

// requireUser writes a 401 and returns false when the request is not
// authenticated.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return nil, false
	}
	return user, true
}

func intParam(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
