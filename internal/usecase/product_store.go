package usecase

import "rfq_console/internal/domain/entities"

// Subset returns the products of one subset (BOM or non-BOM) in their order.
func Subset(products []entities.Product, bom bool) []entities.Product {
	out := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if p.IsBOM() == bom {
			out = append(out, p)
		}
	}
	return out
}

// ApplyDraft appends draft to subset when index < 0, otherwise replaces the
// entry at index. A persisted draft must still sit at index, otherwise
// ErrStaleProductState is returned. The input slice is not modified.
func ApplyDraft(subset []entities.Product, index int, draft entities.Product) ([]entities.Product, error) {
	out := make([]entities.Product, len(subset), len(subset)+1)
	copy(out, subset)
	if index < 0 {
		return append(out, draft), nil
	}
	if index >= len(out) {
		return nil, ErrStaleProductState
	}
	if draft.ID != 0 && out[index].ID != draft.ID {
		return nil, ErrStaleProductState
	}
	if draft.ID == 0 {
		draft.ID = out[index].ID
	}
	out[index] = draft
	return out, nil
}

// MergeSubset writes subset back into all, position by position, leaving the
// entries of the other subset where they are. Extra subset entries go last;
// surplus old entries of the subset are dropped.
func MergeSubset(all []entities.Product, bom bool, subset []entities.Product) []entities.Product {
	out := make([]entities.Product, 0, len(all)+len(subset))
	k := 0
	for _, p := range all {
		if p.IsBOM() != bom {
			out = append(out, p)
			continue
		}
		if k < len(subset) {
			out = append(out, subset[k])
			k++
		}
	}
	return append(out, subset[k:]...)
}

// RemoveAt returns products without the entry at index, order preserved.
func RemoveAt(products []entities.Product, index int) ([]entities.Product, error) {
	if index < 0 || index >= len(products) {
		return nil, ErrStaleProductState
	}
	out := make([]entities.Product, 0, len(products)-1)
	out = append(out, products[:index]...)
	return append(out, products[index+1:]...), nil
}
