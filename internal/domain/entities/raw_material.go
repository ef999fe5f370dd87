package entities

// RawMaterial is a catalog entry referenced by non-BOM products.
type RawMaterial struct {
	ID   int64  `json:"id"`
	Name string `json:"raw_material_name"`
}
