package entities

import (
	"fmt"
	"time"
)

// EditorKind selects which product editor is open.
type EditorKind string

const (
	EditorKindComponent EditorKind = "component"
	EditorKindBOM       EditorKind = "bom"
	EditorKindViewOnly  EditorKind = "view"
)

func (k EditorKind) Valid() bool {
	switch k {
	case EditorKindComponent, EditorKindBOM, EditorKindViewOnly:
		return true
	}
	return false
}

// EditorStatus is the editor session state: closed -> open(kind) -> closed.
type EditorStatus string

const (
	EditorStatusClosed EditorStatus = "closed"
	EditorStatusOpen   EditorStatus = "open"
)

// FieldErrors maps a field name to a user-facing message.
type FieldErrors map[string]string

func (f FieldErrors) Empty() bool { return len(f) == 0 }

// Editor is the single product editor session of a workspace.
//
// Entries is the subset the editor works on (non-BOM for component editors,
// BOM for BOM editors, every product for view-only). EditIndex is the index
// inside Entries being edited, -1 when the draft is a new entry.
type Editor struct {
	Status    EditorStatus `json:"status"`
	Kind      EditorKind   `json:"kind,omitempty"`
	SKUID     int64        `json:"sku_id,omitempty"`
	Entries   []Product    `json:"entries,omitempty"`
	EditIndex int          `json:"edit_index"`
	Draft     Product      `json:"draft"`
	Errors    FieldErrors  `json:"errors,omitempty"`
}

func ClosedEditor() Editor {
	return Editor{Status: EditorStatusClosed, EditIndex: -1}
}

func (e Editor) IsOpen() bool {
	return e.Status == EditorStatusOpen
}

// Workspace is one user's working copy of an RFQ's SKU list.
//
// Storage model (DynamoDB):
//   - PK: id ("<user_id>#<rfq_id>")
type Workspace struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RoleID    Role      `json:"role_id"`
	RFQ       RFQ       `json:"rfq"`
	SKUs      []SKU     `json:"skus"`
	Editor    Editor    `json:"editor"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func WorkspaceID(userID string, rfqID int64) string {
	return fmt.Sprintf("%s#%d", userID, rfqID)
}

// SKUIndex returns the position of skuID in the workspace SKU list.
func (w *Workspace) SKUIndex(skuID int64) (int, bool) {
	for i, s := range w.SKUs {
		if s.ID == skuID {
			return i, true
		}
	}
	return -1, false
}
