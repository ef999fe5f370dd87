package usecase

import (
	"context"

	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ProductScope selects the list a product index refers to.
type ProductScope string

const (
	ProductScopeAll       ProductScope = "all"
	ProductScopeComponent ProductScope = "component"
	ProductScopeBOM       ProductScope = "bom"
)

func (s ProductScope) Valid() bool {
	switch s {
	case ProductScopeAll, ProductScopeComponent, ProductScopeBOM:
		return true
	}
	return false
}

// ProductStore runs the product writes of one SKU against the backend and
// reconciles the workspace copy only after a successful response.
type ProductStore struct {
	backend interfaces.IProductBackend
}

func NewProductStore(backend interfaces.IProductBackend) *ProductStore {
	return &ProductStore{backend: backend}
}

// SaveResult is the outcome of a successful save. RefreshErr is set when the
// post-save SKU refresh failed; the saved products are kept regardless.
type SaveResult struct {
	SKU        entities.SKU
	RefreshErr error
}

// Save writes draft into the subset selected by its kind at index (append
// when index < 0) and sends the whole subset.
func (s *ProductStore) Save(ctx context.Context, ws *entities.Workspace, skuID int64, index int, draft entities.Product) (SaveResult, error) {
	pos, ok := ws.SKUIndex(skuID)
	if !ok {
		return SaveResult{}, ErrSKUNotFound
	}
	draft.SKUID = skuID
	draft = draft.Normalize()

	bom := draft.IsBOM()
	subset, err := ApplyDraft(Subset(ws.SKUs[pos].Products, bom), index, draft)
	if err != nil {
		return SaveResult{}, err
	}

	if !bom {
		confirmed, err := s.backend.SaveComponents(ctx, skuID, subset)
		if err != nil {
			zap.L().Warn("[product][store] save components failed", zap.Int64("sku_id", skuID), zap.Error(err))
			return SaveResult{}, err
		}
		if len(confirmed) > 0 {
			subset = Subset(confirmed, false)
		}
		ws.SKUs[pos].Products = MergeSubset(ws.SKUs[pos].Products, false, subset)
		zap.L().Info("[product][store] components saved", zap.Int64("sku_id", skuID), zap.Int("count", len(subset)))
		return SaveResult{SKU: ws.SKUs[pos]}, nil
	}

	products, err := s.backend.SaveBOM(ctx, skuID, subset)
	if err != nil {
		zap.L().Warn("[product][store] save bom failed", zap.Int64("sku_id", skuID), zap.Error(err))
		return SaveResult{}, err
	}
	if products != nil {
		// the backend is authoritative for computed BOM costs
		ws.SKUs[pos].Products = products
	} else {
		ws.SKUs[pos].Products = MergeSubset(ws.SKUs[pos].Products, true, subset)
	}
	res := SaveResult{SKU: ws.SKUs[pos]}
	zap.L().Info("[product][store] bom saved", zap.Int64("sku_id", skuID), zap.Int("count", len(subset)))

	skus, err := fetchSKUs(ctx, s.backend, ws.RFQ)
	if err != nil {
		zap.L().Warn("[product][store] refresh after bom save failed", zap.Int64("rfq_id", ws.RFQ.ID), zap.Error(err))
		res.RefreshErr = err
		return res, nil
	}
	ws.SKUs = skus
	if p, ok := ws.SKUIndex(skuID); ok {
		res.SKU = ws.SKUs[p]
	}
	return res, nil
}

// Remove deletes the product at index of scope inside the SKU. The resolved
// product must still be present with a persisted id, otherwise
// ErrStaleProductState is returned without calling the backend.
func (s *ProductStore) Remove(ctx context.Context, ws *entities.Workspace, skuID int64, scope ProductScope, index int) (entities.Product, error) {
	if !scope.Valid() {
		return entities.Product{}, ErrInvalidScope
	}
	pos, ok := ws.SKUIndex(skuID)
	if !ok {
		return entities.Product{}, ErrSKUNotFound
	}
	sku := ws.SKUs[pos]

	list := sku.Products
	switch scope {
	case ProductScopeComponent:
		list = Subset(sku.Products, false)
	case ProductScopeBOM:
		list = Subset(sku.Products, true)
	}
	if index < 0 || index >= len(list) {
		return entities.Product{}, ErrStaleProductState
	}
	target := list[index]
	at, ok := sku.ProductByID(target.ID)
	if !ok {
		return entities.Product{}, ErrStaleProductState
	}

	if err := s.backend.DeleteProduct(ctx, target.ID); err != nil {
		zap.L().Warn("[product][store] delete failed", zap.Int64("product_id", target.ID), zap.Error(err))
		return entities.Product{}, err
	}

	remaining, err := RemoveAt(sku.Products, at)
	if err != nil {
		return entities.Product{}, err
	}
	ws.SKUs[pos].Products = remaining
	removeFromEditor(&ws.Editor, skuID, target.ID)

	zap.L().Info("[product][store] product deleted", zap.Int64("sku_id", skuID), zap.Int64("product_id", target.ID))
	return target, nil
}

func removeFromEditor(ed *entities.Editor, skuID, productID int64) {
	if !ed.IsOpen() || ed.SKUID != skuID {
		return
	}
	for i, p := range ed.Entries {
		if p.ID != productID {
			continue
		}
		ed.Entries, _ = RemoveAt(ed.Entries, i)
		switch {
		case ed.EditIndex == i:
			ed.EditIndex = -1
			ed.Draft = newDraft(ed.Kind, skuID)
			ed.Errors = nil
		case ed.EditIndex > i:
			ed.EditIndex--
		}
		return
	}
}
