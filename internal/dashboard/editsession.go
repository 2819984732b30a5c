package dashboard

import "github.com/linkshelf/linkshelf/internal/domain"

// editSession tracks whether the current draft targets an existing bookmark
// or a new one. Zero value means create mode with an empty draft.
type editSession struct {
	targetID string
	draft    domain.Draft
}

func (e *editSession) editing() bool { return e.targetID != "" }

// selectBookmark switches to edit mode and mirrors the bookmark's mutable
// fields into the draft.
func (e *editSession) selectBookmark(b domain.Bookmark) {
	e.targetID = b.ID
	e.draft = domain.Draft{
		Title:    b.Title,
		URL:      b.URL,
		Category: b.Category,
	}
}

// reset returns to create mode with an empty draft.
func (e *editSession) reset() {
	*e = editSession{}
}

// EditState is the read model of the edit session.
type EditState struct {
	Editing  bool         `json:"editing"`
	TargetID string       `json:"target_id,omitempty"`
	Draft    domain.Draft `json:"draft"`
}
