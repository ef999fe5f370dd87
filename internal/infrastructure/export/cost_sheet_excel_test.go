package export

import (
	"bytes"
	"testing"

	"rfq_console/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

func TestCostSheetExcel_Render(t *testing.T) {
	sheet := entities.CostSheet{
		RFQ:     entities.RFQ{ID: 10, Name: "Pump housing", Stage: 6, Version: 2},
		Columns: []entities.Column{entities.ColumnSKUName, entities.ColumnPartNo, entities.ColumnTotal},
		SKUs: []entities.SKU{{
			ID:        100,
			Name:      "S1",
			PartNo:    "00123",
			TotalCost: "1520.40",
			Products: []entities.Product{
				{Name: "Shaft", Kind: entities.ProductKindNonBOM, Quantity: "1", RawMaterialTypeID: 7, YieldPerc: "90", NetWeight: "1.5"},
				{Name: "Casting", Kind: entities.ProductKindFinalBOM, FinalBOMCost: "150.00", FinalBOMCostUnit: "USD"},
			},
		}},
		RawMaterials: map[int64]string{7: "Steel"},
	}

	data, err := NewCostSheetExcel().Render(sheet)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	cases := []struct {
		sheet, cell, want string
	}{
		{skuSheet, "A1", "Cost Sheet: Pump housing (version 2)"},
		{skuSheet, "A3", "SKU"},
		{skuSheet, "B3", "Part No."},
		{skuSheet, "C3", "Total"},
		{skuSheet, "A4", "S1"},
		{skuSheet, "B4", "00123"},
		{productSheet, "B2", "Shaft"},
		{productSheet, "C2", "Component"},
		{productSheet, "E2", "Steel"},
		{productSheet, "C3", "BOM (final cost)"},
		{productSheet, "K3", "USD"},
	}
	for _, c := range cases {
		got, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Fatalf("%s!%s: %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Fatalf("%s!%s: got %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}
}

func TestMaterialName(t *testing.T) {
	names := map[int64]string{7: "Steel"}
	if materialName(names, 0) != "" || materialName(names, 7) != "Steel" || materialName(names, 9) != "#9" {
		t.Fatalf("unexpected material names")
	}
}
