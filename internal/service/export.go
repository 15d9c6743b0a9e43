package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tyler2517/creditkeeper/internal/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const DefaultExportSheet = "Customers"

var exportColumns = []string{"ID", "Name", "Email", "Credit", "Note"}

// Export writes the current selection to an xlsx workbook and returns the
// file bytes plus a dated filename.
func (a *Analytics) Export(ctx context.Context, sheetName string) ([]byte, string, error) {
	summary, err := a.Summary(ctx)
	if err != nil {
		return nil, "", err
	}

	workbook, err := buildWorkbook(summary.Customers, summary.TotalCredit, sheetName)
	if err != nil {
		return nil, "", err
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("writing workbook: %w", err)
	}

	filename := fmt.Sprintf("customer-credit-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func buildWorkbook(customers []model.Customer, total decimal.Decimal, sheetName string) (*excelize.File, error) {
	if sheetName == "" {
		sheetName = DefaultExportSheet
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	for col, header := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, customer := range customers {
		row := i + 2
		values := []interface{}{
			customer.ID,
			customer.Name,
			customer.Email,
			customer.Credit.StringFixed(2),
			customer.Note,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	totalRow := len(customers) + 2
	labelCell, err := excelize.CoordinatesToCellName(3, totalRow)
	if err != nil {
		f.Close()
		return nil, err
	}
	totalCell, err := excelize.CoordinatesToCellName(4, totalRow)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellValue(sheetName, labelCell, "Total"); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellValue(sheetName, totalCell, total.StringFixed(2)); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}
