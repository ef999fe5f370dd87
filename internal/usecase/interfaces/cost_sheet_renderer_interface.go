package interfaces

import (
	"rfq_console/internal/domain/entities"
)

// ICostSheetRenderer turns the visible SKU table of an RFQ into a spreadsheet.
type ICostSheetRenderer interface {
	Render(sheet entities.CostSheet) ([]byte, error)
}
