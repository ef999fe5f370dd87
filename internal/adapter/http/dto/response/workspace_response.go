package response

import (
	"time"

	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase"
)

type RFQResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Stage   int    `json:"stage"`
	Version int    `json:"version"`
}

type ActionResponse struct {
	Tag    string `json:"tag"`
	Label  string `json:"label"`
	Target string `json:"target,omitempty"`
}

type ProductResponse struct {
	ID                int64  `json:"id,omitempty"`
	SKUID             int64  `json:"sku_id"`
	ProductName       string `json:"product_name"`
	Kind              string `json:"kind"`
	IsBOM             bool   `json:"is_bom"`
	IsFinalBOM        bool   `json:"isFinalBOM"`
	Quantity          string `json:"quantity,omitempty"`
	RawMaterialTypeID int64  `json:"raw_material_type,omitempty"`
	RawMaterialName   string `json:"raw_material_name,omitempty"`
	YieldPerc         string `json:"yield,omitempty"`
	NetWeight         string `json:"net_weight,omitempty"`
	BOMCostPerKg      string `json:"bom_cost_per_kg,omitempty"`
	BOMCostUnit       string `json:"bom_cost_per_kg_unit,omitempty"`
	FinalBOMCost      string `json:"final_bom_cost,omitempty"`
	FinalBOMCostUnit  string `json:"final_bom_cost_unit,omitempty"`
}

// SKUResponse carries only the fields of the visible columns in Fields; the
// id and product list are always present.
type SKUResponse struct {
	ID       int64             `json:"id"`
	Fields   map[string]string `json:"fields"`
	Products []ProductResponse `json:"products"`
}

type EditorResponse struct {
	Kind      string            `json:"kind"`
	SKUID     int64             `json:"sku_id"`
	Entries   []ProductResponse `json:"entries"`
	EditIndex int               `json:"edit_index"`
	Draft     ProductResponse   `json:"draft"`
	Errors    map[string]string `json:"errors,omitempty"`
}

type WorkspaceResponse struct {
	ID        string           `json:"id"`
	RFQ       RFQResponse      `json:"rfq"`
	Columns   []string         `json:"columns"`
	Actions   []ActionResponse `json:"actions"`
	SKUs      []SKUResponse    `json:"skus"`
	Editor    *EditorResponse  `json:"editor"`
	Message   string           `json:"message,omitempty"`
	Busy      map[string]bool  `json:"busy"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func FromWorkspaceView(v usecase.WorkspaceView) WorkspaceResponse {
	ws := v.Workspace
	res := WorkspaceResponse{
		ID: ws.ID,
		RFQ: RFQResponse{
			ID:      ws.RFQ.ID,
			Name:    ws.RFQ.Name,
			Stage:   int(ws.RFQ.Stage),
			Version: ws.RFQ.Version,
		},
		Columns:   make([]string, 0, len(v.Columns)),
		Actions:   make([]ActionResponse, 0, len(v.Actions)),
		SKUs:      make([]SKUResponse, 0, len(ws.SKUs)),
		Message:   ws.Message,
		Busy:      make(map[string]bool, len(v.Busy)),
		UpdatedAt: ws.UpdatedAt,
	}
	for _, c := range v.Columns {
		res.Columns = append(res.Columns, string(c))
	}
	for _, a := range v.Actions {
		res.Actions = append(res.Actions, ActionResponse{Tag: string(a.Tag), Label: a.Label, Target: a.Target})
	}
	for _, s := range ws.SKUs {
		res.SKUs = append(res.SKUs, fromSKU(s, v.Columns, v.MaterialNames))
	}
	for k, held := range v.Busy {
		res.Busy[string(k)] = held
	}
	if ws.Editor.IsOpen() {
		ed := ws.Editor
		er := &EditorResponse{
			Kind:      string(ed.Kind),
			SKUID:     ed.SKUID,
			Entries:   fromProducts(ed.Entries, v.MaterialNames),
			EditIndex: ed.EditIndex,
			Errors:    ed.Errors,
		}
		if ed.Kind != entities.EditorKindViewOnly {
			er.Draft = FromProduct(ed.Draft, v.MaterialNames)
		}
		res.Editor = er
	}
	return res
}

func FromProduct(p entities.Product, names map[int64]string) ProductResponse {
	return ProductResponse{
		ID:                p.ID,
		SKUID:             p.SKUID,
		ProductName:       p.Name,
		Kind:              string(p.Kind),
		IsBOM:             p.IsBOM(),
		IsFinalBOM:        p.IsFinalBOM(),
		Quantity:          p.Quantity.String(),
		RawMaterialTypeID: p.RawMaterialTypeID,
		RawMaterialName:   names[p.RawMaterialTypeID],
		YieldPerc:         p.YieldPerc.String(),
		NetWeight:         p.NetWeight.String(),
		BOMCostPerKg:      p.BOMCostPerKg.String(),
		BOMCostUnit:       p.BOMCostUnit,
		FinalBOMCost:      p.FinalBOMCost.String(),
		FinalBOMCostUnit:  p.FinalBOMCostUnit,
	}
}

func fromProducts(ps []entities.Product, names map[int64]string) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p, names))
	}
	return out
}

func fromSKU(s entities.SKU, cols []entities.Column, names map[int64]string) SKUResponse {
	fields := make(map[string]string, len(cols))
	for _, c := range cols {
		fields[string(c)] = skuField(s, c)
	}
	return SKUResponse{ID: s.ID, Fields: fields, Products: fromProducts(s.Products, names)}
}

func skuField(s entities.SKU, col entities.Column) string {
	switch col {
	case entities.ColumnSKUName:
		return s.Name
	case entities.ColumnStatus:
		return s.Status
	case entities.ColumnFactoryOverheadPerc:
		return s.FactoryOverheadPerc.String()
	case entities.ColumnDescription:
		return s.Description
	case entities.ColumnPartNo:
		return s.PartNo
	case entities.ColumnDrawingNo:
		return s.DrawingNo
	case entities.ColumnAnnualUsage:
		return s.AnnualUsage.String()
	case entities.ColumnSize:
		return s.Size
	case entities.ColumnSubTotalCost:
		return s.SubTotalCost.String()
	case entities.ColumnTotalFactoryCost:
		return s.TotalFactoryCost.String()
	case entities.ColumnFOBValue:
		return s.FOBValue.String()
	case entities.ColumnCIFValue:
		return s.CIFValue.String()
	case entities.ColumnTotal:
		return s.TotalCost.String()
	}
	return ""
}

type RawMaterialResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"raw_material_name"`
}

func FromRawMaterials(items []entities.RawMaterial) []RawMaterialResponse {
	out := make([]RawMaterialResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RawMaterialResponse{ID: it.ID, Name: it.Name})
	}
	return out
}
