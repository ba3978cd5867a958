// Package xlsxexport renders analysis history as an Excel workbook.
package xlsxexport

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"docanalyzer/internal/csvexport"
	"docanalyzer/internal/domain"
)

// SheetName is the worksheet holding the history rows.
const SheetName = "History"

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var columnWidths = map[string]float64{
	"A": 38, // Record ID
	"B": 30, // Filename
	"C": 20, // Timestamp
	"D": 22, // Created At
	"E": 12,
	"F": 12,
	"G": 16,
	"H": 80, // Summary
}

// Write renders records (newest first, as stored) to w as an .xlsx workbook.
func Write(w io.Writer, records []domain.AnalysisRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsxexport: rename sheet: %w", err)
	}

	header := make([]interface{}, len(csvexport.Columns))
	for i, c := range csvexport.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsxexport: header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsxexport: header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "H1", bold); err != nil {
		return fmt.Errorf("xlsxexport: apply header style: %w", err)
	}

	wrap, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
	if err != nil {
		return fmt.Errorf("xlsxexport: summary style: %w", err)
	}

	for i := range records {
		rec := &records[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsxexport: cell name: %w", err)
		}
		row := []interface{}{
			rec.ID.String(),
			rec.Filename,
			rec.Timestamp,
			rec.CreatedAt.Format(time.RFC3339),
			rec.WordCount,
			rec.LineCount,
			rec.CharCount,
			rec.Summary,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("xlsxexport: row %d: %w", i+2, err)
		}
		summaryCell := fmt.Sprintf("H%d", i+2)
		if err := f.SetCellStyle(SheetName, summaryCell, summaryCell, wrap); err != nil {
			return fmt.Errorf("xlsxexport: row %d style: %w", i+2, err)
		}
	}

	for col, width := range columnWidths {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("xlsxexport: column width: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxexport: write: %w", err)
	}
	return nil
}
