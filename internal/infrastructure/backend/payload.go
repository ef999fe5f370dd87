package backend

import (
	"bytes"
	"encoding/json"

	"rfq_console/internal/domain/entities"
)

type skuPayload struct {
	ID                  int64            `json:"id"`
	RFQID               int64            `json:"rfq_id"`
	Name                string           `json:"sku_name"`
	Description         string           `json:"description"`
	PartNo              string           `json:"part_no"`
	DrawingNo           string           `json:"drawing_no"`
	Size                string           `json:"size"`
	AnnualUsage         entities.Amount  `json:"annual_usage"`
	FactoryOverheadPerc entities.Amount  `json:"factory_overhead_perc"`
	SubTotalCost        entities.Amount  `json:"sub_total_cost"`
	TotalFactoryCost    entities.Amount  `json:"total_factory_cost"`
	FOBValue            entities.Amount  `json:"fob_value"`
	CIFValue            entities.Amount  `json:"cif_value"`
	TotalCost           entities.Amount  `json:"total_cost"`
	Status              string           `json:"status"`
	Products            []productPayload `json:"products"`
}

// productPayload is the backend product row: the shape is carried by the
// is_bom / isFinalBOM flags instead of an explicit kind.
type productPayload struct {
	ID                int64           `json:"id,omitempty"`
	SKUID             int64           `json:"sku_id"`
	Name              string          `json:"product_name"`
	IsBOM             bool            `json:"is_bom"`
	IsFinalBOM        bool            `json:"isFinalBOM"`
	Quantity          entities.Amount `json:"quantity,omitempty"`
	RawMaterialTypeID int64           `json:"raw_material_type,omitempty"`
	YieldPerc         entities.Amount `json:"yield,omitempty"`
	NetWeight         entities.Amount `json:"net_weight,omitempty"`
	BOMCostPerKg      entities.Amount `json:"bom_cost_per_kg,omitempty"`
	BOMCostUnit       string          `json:"bom_cost_per_kg_unit,omitempty"`
	FinalBOMCost      entities.Amount `json:"final_bom_cost,omitempty"`
	FinalBOMCostUnit  string          `json:"final_bom_cost_unit,omitempty"`
}

type saveProductsRequest struct {
	SKUID    int64            `json:"sku_id"`
	Products []productPayload `json:"products"`
}

type factoryOverheadRequest struct {
	RFQID               int64  `json:"rfq_id"`
	FactoryOverheadPerc string `json:"factory_overhead_perc"`
}

func fromProduct(p entities.Product) productPayload {
	return productPayload{
		ID:                p.ID,
		SKUID:             p.SKUID,
		Name:              p.Name,
		IsBOM:             p.IsBOM(),
		IsFinalBOM:        p.IsFinalBOM(),
		Quantity:          p.Quantity,
		RawMaterialTypeID: p.RawMaterialTypeID,
		YieldPerc:         p.YieldPerc,
		NetWeight:         p.NetWeight,
		BOMCostPerKg:      p.BOMCostPerKg,
		BOMCostUnit:       p.BOMCostUnit,
		FinalBOMCost:      p.FinalBOMCost,
		FinalBOMCostUnit:  p.FinalBOMCostUnit,
	}
}

func toProduct(p productPayload) entities.Product {
	return entities.Product{
		ID:                p.ID,
		SKUID:             p.SKUID,
		Name:              p.Name,
		Kind:              entities.KindFromFlags(p.IsBOM, p.IsFinalBOM),
		Quantity:          p.Quantity,
		RawMaterialTypeID: p.RawMaterialTypeID,
		YieldPerc:         p.YieldPerc,
		NetWeight:         p.NetWeight,
		BOMCostPerKg:      p.BOMCostPerKg,
		BOMCostUnit:       p.BOMCostUnit,
		FinalBOMCost:      p.FinalBOMCost,
		FinalBOMCostUnit:  p.FinalBOMCostUnit,
	}
}

func toSKUs(in []skuPayload) []entities.SKU {
	out := make([]entities.SKU, 0, len(in))
	for _, s := range in {
		sku := entities.SKU{
			ID:                  s.ID,
			RFQID:               s.RFQID,
			Name:                s.Name,
			Description:         s.Description,
			PartNo:              s.PartNo,
			DrawingNo:           s.DrawingNo,
			Size:                s.Size,
			AnnualUsage:         s.AnnualUsage,
			FactoryOverheadPerc: s.FactoryOverheadPerc,
			SubTotalCost:        s.SubTotalCost,
			TotalFactoryCost:    s.TotalFactoryCost,
			FOBValue:            s.FOBValue,
			CIFValue:            s.CIFValue,
			TotalCost:           s.TotalCost,
			Status:              s.Status,
			Products:            make([]entities.Product, 0, len(s.Products)),
		}
		for _, p := range s.Products {
			sku.Products = append(sku.Products, toProduct(p))
		}
		out = append(out, sku)
	}
	return out
}

// decodeProducts reads a product array confirmation. Non-array data (object
// confirmations, ids) yields nil.
func decodeProducts(raw json.RawMessage) ([]entities.Product, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}
	var rows []productPayload
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProduct(r))
	}
	return out, nil
}
