package entities

// CostSheet is the export model of an RFQ's SKU table: the columns visible at
// the RFQ's stage and every SKU with its products.
type CostSheet struct {
	RFQ          RFQ
	Columns      []Column
	SKUs         []SKU
	RawMaterials map[int64]string
}
