package httpapi

import (
	"net/http"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application/commands"
)

type createLinkRequest struct {
	PageID      string  `json:"wiki_page_id"`
	BoardID     *string `json:"board_id"`
	CardID      *string `json:"card_id"`
	WorkspaceID *string `json:"workspace_id"`
	LinkType    string  `json:"link_type"`
}

func (s *Server) handleListLinks(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	cmd := commands.NewListLinksCommand(s.links)
	cmd.PageID = r.URL.Query().Get("wiki_page_id")
	cmd.BoardID = r.URL.Query().Get("board_id")
	cmd.CardID = r.URL.Query().Get("card_id")

	links, err := cmd.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"links": links})
}

func (s *Server) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	var req createLinkRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cmd := commands.NewCreateLinkCommand(s.links, s.pages, user)
	cmd.PageID = req.PageID
	cmd.BoardID = req.BoardID
	cmd.CardID = req.CardID
	cmd.WorkspaceID = req.WorkspaceID
	cmd.LinkType = req.LinkType

	result, err := cmd.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"link": result.Link})
}

func (s *Server) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	cmd := commands.NewDeleteLinkCommand(s.links, user, r.PathValue("id"))
	if _, err := cmd.Execute(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
