// Package report renders inventory data as XLSX workbooks.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/inventory-dashboard/internal/domain"
)

const (
	ProductsSheet = "Products"
	ContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dateLayout    = "2006-01-02 15:04"
)

var productHeaders = []any{
	"SKU", "Name", "Category", "Status", "Current Stock", "Min Stock", "Max Stock",
	"Reorder Point", "Price", "Cost", "Stock Value", "Supplier", "Location", "Last Restocked",
}

// Writer builds workbooks in memory.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// ProductWorkbook returns an XLSX file with one header row and one row per
// product. supplierNames maps supplier id to display name; unknown ids are
// written as-is.
func (w *Writer) ProductWorkbook(products []domain.Product, supplierNames map[string]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", ProductsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := f.SetSheetRow(ProductsSheet, "A1", &productHeaders); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(productHeaders))
	if err := f.SetCellStyle(ProductsSheet, "A1", lastCol+"1", bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		supplier := p.SupplierID
		if name, ok := supplierNames[p.SupplierID]; ok {
			supplier = name
		}

		row := []any{
			p.SKU, p.Name, p.Category, p.Status.String(),
			p.CurrentStock, p.MinStockLevel, p.MaxStockLevel, p.ReorderPoint,
			p.Price.InexactFloat64(), p.Cost.InexactFloat64(), p.StockValue().InexactFloat64(),
			supplier, p.Location, p.LastRestocked.Format(dateLayout),
		}
		if err := f.SetSheetRow(ProductsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(ProductsSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
