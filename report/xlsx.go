package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/tourplan/store"
)

const (
	SummarySheet = "Summary"
	HistorySheet = "History"
)

// Workbook builds a workbook with a Summary sheet listing runs and, when
// exactly one run is given, a History sheet with its samples.
func Workbook(runs ...store.Run) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeRows(f, SummarySheet, summaryHeader, len(runs), func(i int) []any {
		run := runs[i]
		return []any{
			run.ID, run.Solver, run.CreatedAt.UTC(), run.NumCities, run.TourLength,
			run.Score, run.Steps, millis(run.Elapsed), run.Canceled, FormatTour(run.Tour),
		}
	}); err != nil {
		_ = f.Close()
		return nil, err
	}

	if len(runs) == 1 {
		if _, err := f.NewSheet(HistorySheet); err != nil {
			_ = f.Close()
			return nil, err
		}
		hist := runs[0].History
		if err := writeRows(f, HistorySheet, historyHeader, len(hist), func(i int) []any {
			h := hist[i]
			return []any{h.Step, h.CurrentScore, h.BestScore, millis(h.Elapsed), h.Fraction}
		}); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteXLSX saves the workbook of runs to path.
func WriteXLSX(path string, runs ...store.Run) error {
	f, err := Workbook(runs...)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// WriteXLSXTo streams the workbook of runs to w.
func WriteXLSXTo(w io.Writer, runs ...store.Run) error {
	f, err := Workbook(runs...)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, header []string, n int, row func(int) []any) error {
	for j, name := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		for j, val := range row(i) {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}
	return nil
}
