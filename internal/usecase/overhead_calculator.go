package usecase

import (
	"context"
	"strings"

	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// OverheadCalculator applies one factory overhead percentage to every SKU of
// an RFQ and has the backend recompute the total factory cost.
type OverheadCalculator struct {
	backend interfaces.IProductBackend
}

func NewOverheadCalculator(backend interfaces.IProductBackend) *OverheadCalculator {
	return &OverheadCalculator{backend: backend}
}

// Apply runs save -> broadcast -> calculate -> refresh on ws. A blank or
// non-numeric percentage fails before any backend call. A failure after the
// save step leaves the percentage applied and returns *OverheadStepError.
func (c *OverheadCalculator) Apply(ctx context.Context, ws *entities.Workspace, percentage string) error {
	perc := entities.Amount(strings.TrimSpace(percentage))
	if perc.IsBlank() {
		return ErrOverheadRequired
	}
	if _, ok := perc.Decimal(); !ok {
		return ErrOverheadInvalid
	}
	rfqID := ws.RFQ.ID
	if rfqID <= 0 {
		return ErrInvalidRFQID
	}

	if err := c.backend.SaveFactoryOverhead(ctx, rfqID, perc); err != nil {
		zap.L().Warn("[overhead][usecase] save failed", zap.Int64("rfq_id", rfqID), zap.Error(err))
		return &OverheadStepError{Step: OverheadStepSave, Err: err}
	}

	for i := range ws.SKUs {
		ws.SKUs[i].FactoryOverheadPerc = perc
	}

	if err := c.backend.CalculateTotalFactoryCost(ctx, rfqID); err != nil {
		zap.L().Warn("[overhead][usecase] calculate failed", zap.Int64("rfq_id", rfqID), zap.Error(err))
		return &OverheadStepError{Step: OverheadStepCalculate, Err: err}
	}

	skus, err := fetchSKUs(ctx, c.backend, ws.RFQ)
	if err != nil {
		zap.L().Warn("[overhead][usecase] refresh failed", zap.Int64("rfq_id", rfqID), zap.Error(err))
		return &OverheadStepError{Step: OverheadStepRefresh, Err: err}
	}
	for i := range skus {
		// the backend may not echo the percentage yet
		if skus[i].FactoryOverheadPerc.IsBlank() {
			skus[i].FactoryOverheadPerc = perc
		}
	}
	ws.SKUs = skus

	zap.L().Info("[overhead][usecase] applied",
		zap.Int64("rfq_id", rfqID),
		zap.String("factory_overhead_perc", perc.String()),
		zap.Int("skus", len(skus)),
	)
	return nil
}

// fetchSKUs reads the SKU list of rfq: the latest-version query when a
// version is in context, the current product set otherwise.
func fetchSKUs(ctx context.Context, backend interfaces.IProductBackend, rfq entities.RFQ) ([]entities.SKU, error) {
	if rfq.Versioned() {
		return backend.ListLatestSKUs(ctx, rfq.ID, rfq.Version)
	}
	return backend.ListSKUs(ctx, rfq.ID)
}
