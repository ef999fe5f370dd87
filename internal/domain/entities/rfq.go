package entities

// RFQ is the quoting case a workspace is scoped to. It is created and advanced
// by the RFQ backend; the console only reads its id, stage and version.
type RFQ struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Stage   Stage  `json:"stage"`
	Version int    `json:"version,omitempty"`
}

// Versioned reports whether SKUs must be read through the latest-version query.
func (r RFQ) Versioned() bool {
	return r.Version > 0
}

// SKU is a quoted product line of an RFQ.
//
// Cost fields (sub-total, total factory cost, FOB, CIF, total) are computed by
// the backend and never sent back by the console.
type SKU struct {
	ID          int64  `json:"id"`
	RFQID       int64  `json:"rfq_id"`
	Name        string `json:"sku_name"`
	Description string `json:"description,omitempty"`
	PartNo      string `json:"part_no,omitempty"`
	DrawingNo   string `json:"drawing_no,omitempty"`
	Size        string `json:"size,omitempty"`
	AnnualUsage Amount `json:"annual_usage,omitempty"`

	FactoryOverheadPerc Amount `json:"factory_overhead_perc,omitempty"`
	SubTotalCost        Amount `json:"sub_total_cost,omitempty"`
	TotalFactoryCost    Amount `json:"total_factory_cost,omitempty"`
	FOBValue            Amount `json:"fob_value,omitempty"`
	CIFValue            Amount `json:"cif_value,omitempty"`
	TotalCost           Amount `json:"total_cost,omitempty"`

	Status   string    `json:"status,omitempty"`
	Products []Product `json:"products"`
}

// ProductByID returns the position of the product with the given id.
func (s SKU) ProductByID(id int64) (int, bool) {
	if id == 0 {
		return -1, false
	}
	for i, p := range s.Products {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}
