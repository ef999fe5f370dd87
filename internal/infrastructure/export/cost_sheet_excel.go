package export

import (
	"fmt"
	"strings"

	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	skuSheet     = "SKUs"
	productSheet = "Products"
)

var columnHeaders = map[entities.Column]string{
	entities.ColumnSKUName:             "SKU",
	entities.ColumnStatus:              "Status",
	entities.ColumnFactoryOverheadPerc: "Factory Overhead %",
	entities.ColumnDescription:         "Description",
	entities.ColumnPartNo:              "Part No.",
	entities.ColumnDrawingNo:           "Drawing No.",
	entities.ColumnAnnualUsage:         "Annual Usage",
	entities.ColumnSize:                "Size",
	entities.ColumnSubTotalCost:        "Sub Total Cost",
	entities.ColumnTotalFactoryCost:    "Total Factory Cost",
	entities.ColumnFOBValue:            "FOB Value",
	entities.ColumnCIFValue:            "CIF Value",
	entities.ColumnTotal:               "Total",
}

var productHeaders = []string{
	"SKU", "Product", "Type", "Quantity", "Raw Material", "Yield %",
	"Net Weight", "BOM Cost / kg", "Unit", "Final BOM Cost", "Unit",
}

// CostSheetExcel renders cost sheets as .xlsx workbooks.
type CostSheetExcel struct{}

var _ interfaces.ICostSheetRenderer = CostSheetExcel{}

func NewCostSheetExcel() CostSheetExcel {
	return CostSheetExcel{}
}

func (CostSheetExcel) Render(sheet entities.CostSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), skuSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet(productSheet); err != nil {
		return nil, fmt.Errorf("create products sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	title := fmt.Sprintf("Cost Sheet: %s", strings.TrimSpace(sheet.RFQ.Name))
	if sheet.RFQ.Version > 0 {
		title = fmt.Sprintf("%s (version %d)", title, sheet.RFQ.Version)
	}
	if err := f.SetCellValue(skuSheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(skuSheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}

	// SKU table, header on row 3.
	for i, col := range sheet.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(skuSheet, cell, headerFor(col)); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(skuSheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(skuSheet, name, name, 18); err != nil {
			return nil, err
		}
	}
	for r, sku := range sheet.SKUs {
		for i, col := range sheet.Columns {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+4)
			if err := f.SetCellValue(skuSheet, cell, skuField(sku, col)); err != nil {
				return nil, err
			}
		}
	}

	// Products of every SKU.
	for i, h := range productHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(productSheet, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(productSheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}
	row := 2
	for _, sku := range sheet.SKUs {
		for _, p := range sku.Products {
			values := []any{
				sku.Name,
				p.Name,
				kindLabel(p.Kind),
				cellValue(p.Quantity),
				materialName(sheet.RawMaterials, p.RawMaterialTypeID),
				cellValue(p.YieldPerc),
				cellValue(p.NetWeight),
				cellValue(p.BOMCostPerKg),
				p.BOMCostUnit,
				cellValue(p.FinalBOMCost),
				p.FinalBOMCostUnit,
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				if err := f.SetCellValue(productSheet, cell, v); err != nil {
					return nil, err
				}
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func headerFor(col entities.Column) string {
	if h, ok := columnHeaders[col]; ok {
		return h
	}
	return string(col)
}

func skuField(s entities.SKU, col entities.Column) any {
	switch col {
	case entities.ColumnSKUName:
		return s.Name
	case entities.ColumnStatus:
		return s.Status
	case entities.ColumnFactoryOverheadPerc:
		return cellValue(s.FactoryOverheadPerc)
	case entities.ColumnDescription:
		return s.Description
	case entities.ColumnPartNo:
		return s.PartNo
	case entities.ColumnDrawingNo:
		return s.DrawingNo
	case entities.ColumnAnnualUsage:
		return cellValue(s.AnnualUsage)
	case entities.ColumnSize:
		return s.Size
	case entities.ColumnSubTotalCost:
		return cellValue(s.SubTotalCost)
	case entities.ColumnTotalFactoryCost:
		return cellValue(s.TotalFactoryCost)
	case entities.ColumnFOBValue:
		return cellValue(s.FOBValue)
	case entities.ColumnCIFValue:
		return cellValue(s.CIFValue)
	case entities.ColumnTotal:
		return cellValue(s.TotalCost)
	}
	return ""
}

// cellValue writes numbers as numeric cells and anything else as text.
func cellValue(a entities.Amount) any {
	if d, ok := a.Decimal(); ok {
		f, _ := d.Float64()
		return f
	}
	return a.String()
}

func materialName(names map[int64]string, id int64) string {
	if id == 0 {
		return ""
	}
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("#%d", id)
}

func kindLabel(k entities.ProductKind) string {
	switch k {
	case entities.ProductKindNonBOM:
		return "Component"
	case entities.ProductKindItemizedBOM:
		return "BOM"
	case entities.ProductKindFinalBOM:
		return "BOM (final cost)"
	}
	return string(k)
}
