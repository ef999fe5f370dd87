package usecase

import (
	"context"
	"errors"
	"testing"

	"rfq_console/internal/domain/entities"
	mock_interfaces "rfq_console/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func overheadWorkspace() *entities.Workspace {
	return &entities.Workspace{
		ID:  "u-1#10",
		RFQ: entities.RFQ{ID: 10, Stage: 4},
		SKUs: []entities.SKU{
			{ID: 100, RFQID: 10, Name: "S1"},
			{ID: 101, RFQID: 10, Name: "S2", FactoryOverheadPerc: "5"},
		},
	}
}

func TestOverheadCalculator_Apply(t *testing.T) {
	t.Run("blank percentage makes no backend call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIProductBackend(ctrl)
		calc := NewOverheadCalculator(backend)

		for _, in := range []string{"", "   "} {
			if err := calc.Apply(context.Background(), overheadWorkspace(), in); !errors.Is(err, ErrOverheadRequired) {
				t.Fatalf("expected ErrOverheadRequired, got %v", err)
			}
		}
	})

	t.Run("non numeric percentage makes no backend call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIProductBackend(ctrl)

		err := NewOverheadCalculator(backend).Apply(context.Background(), overheadWorkspace(), "twelve")
		if !errors.Is(err, ErrOverheadInvalid) {
			t.Fatalf("expected ErrOverheadInvalid, got %v", err)
		}
	})

	t.Run("success broadcasts and refreshes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIProductBackend(ctrl)
		ws := overheadWorkspace()

		gomock.InOrder(
			backend.EXPECT().SaveFactoryOverhead(gomock.Any(), int64(10), entities.Amount("12.5")).Return(nil),
			backend.EXPECT().CalculateTotalFactoryCost(gomock.Any(), int64(10)).Return(nil),
			backend.EXPECT().ListSKUs(gomock.Any(), int64(10)).Return([]entities.SKU{
				{ID: 100, RFQID: 10, Name: "S1", TotalFactoryCost: "120.00"},
				{ID: 101, RFQID: 10, Name: "S2", FactoryOverheadPerc: "12.5", TotalFactoryCost: "80.00"},
			}, nil),
		)

		if err := NewOverheadCalculator(backend).Apply(context.Background(), ws, " 12.5 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ws.SKUs) != 2 {
			t.Fatalf("expected 2 skus, got %d", len(ws.SKUs))
		}
		for _, s := range ws.SKUs {
			if s.FactoryOverheadPerc != "12.5" {
				t.Fatalf("sku %d: expected 12.5, got %q", s.ID, s.FactoryOverheadPerc)
			}
		}
		if ws.SKUs[0].TotalFactoryCost != "120.00" {
			t.Fatalf("expected refreshed cost, got %q", ws.SKUs[0].TotalFactoryCost)
		}
	})

	t.Run("versioned rfq refreshes through latest query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIProductBackend(ctrl)
		ws := overheadWorkspace()
		ws.RFQ.Version = 2

		backend.EXPECT().SaveFactoryOverhead(gomock.Any(), int64(10), entities.Amount("7")).Return(nil)
		backend.EXPECT().CalculateTotalFactoryCost(gomock.Any(), int64(10)).Return(nil)
		backend.EXPECT().ListLatestSKUs(gomock.Any(), int64(10), 2).Return([]entities.SKU{{ID: 100}}, nil)

		if err := NewOverheadCalculator(backend).Apply(context.Background(), ws, "7"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("save failure leaves skus untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIProductBackend(ctrl)
		ws := overheadWorkspace()

		backend.EXPECT().SaveFactoryOverhead(gomock.Any(), int64(10), entities.Amount("12.5")).Return(errors.New("down"))

		err := NewOverheadCalculator(backend).Apply(context.Background(), ws, "12.5")
		var stepErr *OverheadStepError
		if !errors.As(err, &stepErr) || stepErr.Step != OverheadStepSave || stepErr.Partial() {
			t.Fatalf("expected save step error, got %v", err)
		}
		if ws.SKUs[0].FactoryOverheadPerc != "" || ws.SKUs[1].FactoryOverheadPerc != "5" {
			t.Fatalf("skus must be untouched: %+v", ws.SKUs)
		}
	})

	t.Run("calculate failure is partial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIProductBackend(ctrl)
		ws := overheadWorkspace()

		backend.EXPECT().SaveFactoryOverhead(gomock.Any(), int64(10), entities.Amount("12.5")).Return(nil)
		backend.EXPECT().CalculateTotalFactoryCost(gomock.Any(), int64(10)).Return(errors.New("timeout"))

		err := NewOverheadCalculator(backend).Apply(context.Background(), ws, "12.5")
		var stepErr *OverheadStepError
		if !errors.As(err, &stepErr) || stepErr.Step != OverheadStepCalculate || !stepErr.Partial() {
			t.Fatalf("expected partial calculate error, got %v", err)
		}
		for _, s := range ws.SKUs {
			if s.FactoryOverheadPerc != "12.5" {
				t.Fatalf("broadcast must be kept after save: %+v", ws.SKUs)
			}
		}
	})

	t.Run("refresh failure is partial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIProductBackend(ctrl)

		backend.EXPECT().SaveFactoryOverhead(gomock.Any(), int64(10), gomock.Any()).Return(nil)
		backend.EXPECT().CalculateTotalFactoryCost(gomock.Any(), int64(10)).Return(nil)
		backend.EXPECT().ListSKUs(gomock.Any(), int64(10)).Return(nil, errors.New("down"))

		err := NewOverheadCalculator(backend).Apply(context.Background(), overheadWorkspace(), "12.5")
		var stepErr *OverheadStepError
		if !errors.As(err, &stepErr) || stepErr.Step != OverheadStepRefresh {
			t.Fatalf("expected refresh step error, got %v", err)
		}
	})
}
