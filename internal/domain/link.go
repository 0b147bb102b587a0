package domain

import "time"

// LinkType classifies a cross-product link.
type LinkType string

const (
	LinkReference     LinkType = "reference"
	LinkDocumentation LinkType = "documentation"
	LinkNotes         LinkType = "notes"
)

// ParseLinkType returns the LinkType for s, or false if s is not known.
func ParseLinkType(s string) (LinkType, bool) {
	switch LinkType(s) {
	case LinkReference, LinkDocumentation, LinkNotes:
		return LinkType(s), true
	}
	return "", false
}

// BoardLink associates a page with a Pix3lBoard board, card, or workspace.
// The board-side identities are opaque: they live in a different system and
// no integrity is enforced on them here.
type BoardLink struct {
	ID          string    `json:"id"`
	PageID      string    `json:"wiki_page_id"`
	BoardID     *string   `json:"board_id"`
	CardID      *string   `json:"card_id"`
	WorkspaceID *string   `json:"workspace_id"`
	LinkType    LinkType  `json:"link_type"`
	CreatedAt   time.Time `json:"created_at"`
}
