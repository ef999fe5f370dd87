package request

import (
	"strings"

	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase"
)

// OpenWorkspaceRequest carries the RFQ context the workspace is opened with.
// The RFQ id comes from the path.
type OpenWorkspaceRequest struct {
	Name    string `json:"name"`
	Stage   int    `json:"stage" binding:"required"`
	Version int    `json:"version"`
}

func (r OpenWorkspaceRequest) ToRFQ(rfqID int64) entities.RFQ {
	return entities.RFQ{
		ID:      rfqID,
		Name:    strings.TrimSpace(r.Name),
		Stage:   entities.Stage(r.Stage),
		Version: r.Version,
	}
}

// OpenEditorRequest opens the component, BOM or view-only editor of a SKU.
// Index selects an existing entry of the editor subset; omitted means a new
// entry.
type OpenEditorRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Index *int   `json:"index"`
}

func (r OpenEditorRequest) ResolveIndex() int {
	if r.Index == nil {
		return -1
	}
	return *r.Index
}

// DraftPatchRequest changes editor draft fields. Absent fields are untouched.
type DraftPatchRequest struct {
	SelectIndex       *int             `json:"select_index"`
	IsFinalBOM        *bool            `json:"isFinalBOM"`
	ProductName       *string          `json:"product_name"`
	Quantity          *entities.Amount `json:"quantity"`
	RawMaterialTypeID *int64           `json:"raw_material_type"`
	YieldPerc         *entities.Amount `json:"yield"`
	NetWeight         *entities.Amount `json:"net_weight"`
	BOMCostPerKg      *entities.Amount `json:"bom_cost_per_kg"`
	BOMCostUnit       *string          `json:"bom_cost_per_kg_unit"`
	FinalBOMCost      *entities.Amount `json:"final_bom_cost"`
	FinalBOMCostUnit  *string          `json:"final_bom_cost_unit"`
}

func (r DraftPatchRequest) ToPatch() usecase.DraftPatch {
	return usecase.DraftPatch{
		SelectIndex:       r.SelectIndex,
		IsFinalBOM:        r.IsFinalBOM,
		Name:              r.ProductName,
		Quantity:          r.Quantity,
		RawMaterialTypeID: r.RawMaterialTypeID,
		YieldPerc:         r.YieldPerc,
		NetWeight:         r.NetWeight,
		BOMCostPerKg:      r.BOMCostPerKg,
		BOMCostUnit:       r.BOMCostUnit,
		FinalBOMCost:      r.FinalBOMCost,
		FinalBOMCostUnit:  r.FinalBOMCostUnit,
	}
}

// OverheadRequest accepts the percentage as a JSON number or string.
type OverheadRequest struct {
	FactoryOverheadPerc entities.Amount `json:"factory_overhead_perc"`
}

func (r OverheadRequest) ResolvePercentage() string {
	return strings.TrimSpace(r.FactoryOverheadPerc.String())
}
