package usecase

import (
	"strings"

	"rfq_console/internal/domain/entities"
)

const (
	FieldProductName     = "product_name"
	FieldQuantity        = "quantity"
	FieldRawMaterialType = "raw_material_type"
	FieldYield           = "yield"
	FieldNetWeight       = "net_weight"
	FieldFinalBOMCost    = "final_bom_cost"
)

// ValidateProduct checks a draft against the rules of kind. Only presence is
// checked. Itemized BOM entries do not require bom_cost_per_kg.
func ValidateProduct(kind entities.ProductKind, draft entities.Product) entities.FieldErrors {
	errs := entities.FieldErrors{}
	if strings.TrimSpace(draft.Name) == "" {
		errs[FieldProductName] = "Product name is required"
	}

	switch kind {
	case entities.ProductKindNonBOM:
		requireAmount(errs, FieldQuantity, draft.Quantity, "Quantity per assembly is required")
		if draft.RawMaterialTypeID == 0 {
			errs[FieldRawMaterialType] = "Raw material type is required"
		}
		requireAmount(errs, FieldYield, draft.YieldPerc, "Yield percentage is required")
		requireAmount(errs, FieldNetWeight, draft.NetWeight, "Net weight is required")
	case entities.ProductKindItemizedBOM:
		requireAmount(errs, FieldQuantity, draft.Quantity, "Quantity per assembly is required")
		requireAmount(errs, FieldNetWeight, draft.NetWeight, "Net weight is required")
	case entities.ProductKindFinalBOM:
		requireAmount(errs, FieldFinalBOMCost, draft.FinalBOMCost, "Final BOM cost is required")
	}
	return errs
}

func requireAmount(errs entities.FieldErrors, field string, v entities.Amount, msg string) {
	if v.IsBlank() {
		errs[field] = msg
	}
}

// ToggleFinalBOM switches a BOM draft between itemized and final-cost entry.
func ToggleFinalBOM(draft entities.Product, final bool) (entities.Product, error) {
	if !draft.IsBOM() {
		return draft, ErrNotBOMDraft
	}
	return draft.WithFinalBOM(final), nil
}
