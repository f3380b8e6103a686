// Package export renders product selections as spreadsheets.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

const (
	// ContentType is the MIME type of the rendered workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// Filename is the attachment name suggested to clients.
	Filename = "products.xlsx"

	sheetName   = "Products"
	priceFormat = `"RS"#,##0.00`
)

type column struct {
	header string
	width  float64
}

var columns = []column{
	{"ID", 30},
	{"Name", 30},
	{"Category", 20},
	{"Price", 10},
	{"Stock", 10},
}

// ExcelExporter writes one "Products" sheet with a header row.
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Render returns the xlsx bytes for products, one row each, in the given order.
func (e *ExcelExporter) Render(products []domain.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, col := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return nil, fmt.Errorf("set width %s: %w", name, err)
		}
		if err := f.SetCellValue(sheetName, name+"1", col.header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	numFmt := priceFormat
	priceStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, fmt.Errorf("price style: %w", err)
	}
	if err := f.SetColStyle(sheetName, "D", priceStyle); err != nil {
		return nil, fmt.Errorf("apply price style: %w", err)
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{p.ID, p.Name, p.Category, p.Price, p.Stock}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
