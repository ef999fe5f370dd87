package entities

// ProductKind tells which of the three product shapes an entry has.
//
// The backend stores the shape as two booleans (is_bom, isFinalBOM); inside the
// console the kind is explicit and the booleans only exist on the wire.
type ProductKind string

const (
	ProductKindNonBOM      ProductKind = "non_bom"
	ProductKindItemizedBOM ProductKind = "itemized_bom"
	ProductKindFinalBOM    ProductKind = "final_bom"
)

func (k ProductKind) Valid() bool {
	switch k {
	case ProductKindNonBOM, ProductKindItemizedBOM, ProductKindFinalBOM:
		return true
	}
	return false
}

func (k ProductKind) IsBOM() bool {
	return k == ProductKindItemizedBOM || k == ProductKindFinalBOM
}

// KindFromFlags maps the backend flags to a kind. isFinalBOM is ignored for
// non-BOM rows.
func KindFromFlags(isBOM, isFinalBOM bool) ProductKind {
	switch {
	case !isBOM:
		return ProductKindNonBOM
	case isFinalBOM:
		return ProductKindFinalBOM
	default:
		return ProductKindItemizedBOM
	}
}

// Product is a component entry of a SKU.
//
// Field ownership per kind:
//   - non_bom:      Quantity, RawMaterialTypeID, YieldPerc, NetWeight
//   - itemized_bom: Quantity, NetWeight, BOMCostPerKg, BOMCostUnit
//   - final_bom:    FinalBOMCost, FinalBOMCostUnit
//
// Entries read from the backend are kept as returned (the backend may fill
// FinalBOMCost on itemized rows with its computed cost); drafts are passed
// through Normalize before they are sent.
type Product struct {
	ID    int64       `json:"id,omitempty"`
	SKUID int64       `json:"sku_id"`
	Name  string      `json:"product_name"`
	Kind  ProductKind `json:"kind"`

	Quantity          Amount `json:"quantity,omitempty"`
	RawMaterialTypeID int64  `json:"raw_material_type,omitempty"`
	YieldPerc         Amount `json:"yield,omitempty"`
	NetWeight         Amount `json:"net_weight,omitempty"`

	BOMCostPerKg     Amount `json:"bom_cost_per_kg,omitempty"`
	BOMCostUnit      string `json:"bom_cost_per_kg_unit,omitempty"`
	FinalBOMCost     Amount `json:"final_bom_cost,omitempty"`
	FinalBOMCostUnit string `json:"final_bom_cost_unit,omitempty"`
}

func (p Product) IsBOM() bool {
	return p.Kind.IsBOM()
}

func (p Product) IsFinalBOM() bool {
	return p.Kind == ProductKindFinalBOM
}

// Normalize returns a copy holding only the fields owned by p.Kind.
func (p Product) Normalize() Product {
	out := Product{ID: p.ID, SKUID: p.SKUID, Name: p.Name, Kind: p.Kind}
	switch p.Kind {
	case ProductKindNonBOM:
		out.Quantity = p.Quantity
		out.RawMaterialTypeID = p.RawMaterialTypeID
		out.YieldPerc = p.YieldPerc
		out.NetWeight = p.NetWeight
	case ProductKindItemizedBOM:
		out.Quantity = p.Quantity
		out.NetWeight = p.NetWeight
		out.BOMCostPerKg = p.BOMCostPerKg
		out.BOMCostUnit = p.BOMCostUnit
	case ProductKindFinalBOM:
		out.FinalBOMCost = p.FinalBOMCost
		out.FinalBOMCostUnit = p.FinalBOMCostUnit
	}
	return out
}

// WithFinalBOM switches a BOM entry between its itemized and final-cost shape,
// dropping the fields of the shape being left. The name is always kept.
func (p Product) WithFinalBOM(final bool) Product {
	if final {
		p.Kind = ProductKindFinalBOM
		p.Quantity = ""
		p.NetWeight = ""
		p.BOMCostPerKg = ""
		p.BOMCostUnit = ""
	} else {
		p.Kind = ProductKindItemizedBOM
		p.FinalBOMCost = ""
		p.FinalBOMCostUnit = ""
	}
	p.RawMaterialTypeID = 0
	p.YieldPerc = ""
	return p
}
