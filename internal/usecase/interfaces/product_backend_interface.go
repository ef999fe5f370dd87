package interfaces

import (
	"context"
	"rfq_console/internal/domain/entities"
)

// IProductBackend abstracts the RFQ REST backend consumed by the console.
//
// Every write sends a full product subset of one SKU; there is no delta
// protocol. Implementations return *backend.Error style errors carrying the
// backend message when the envelope reports success=false.

type IProductBackend interface {
	ListSKUs(ctx context.Context, rfqID int64) ([]entities.SKU, error)
	ListLatestSKUs(ctx context.Context, rfqID int64, version int) ([]entities.SKU, error)
	ListRawMaterials(ctx context.Context) ([]entities.RawMaterial, error)
	SaveComponents(ctx context.Context, skuID int64, products []entities.Product) ([]entities.Product, error)
	SaveBOM(ctx context.Context, skuID int64, products []entities.Product) ([]entities.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
	SaveFactoryOverhead(ctx context.Context, rfqID int64, percentage entities.Amount) error
	CalculateTotalFactoryCost(ctx context.Context, rfqID int64) error
}
