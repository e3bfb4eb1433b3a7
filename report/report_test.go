package report_test

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/tourplan/report"
	"github.com/katalvlaran/tourplan/store"
)

func sampleRun() store.Run {
	return store.Run{
		ID:         "run-1",
		Solver:     "genetic",
		CreatedAt:  time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC),
		NumCities:  10,
		TourLength: 4,
		Tour:       []int{3, 0, 7, 3},
		Score:      412.5,
		Steps:      2,
		Elapsed:    250 * time.Millisecond,
		History: []store.HistoryPoint{
			{Step: 1, CurrentScore: 300, BestScore: 300, Elapsed: 100 * time.Millisecond, Fraction: 0.5},
			{Step: 2, CurrentScore: 412.5, BestScore: 412.5, Elapsed: 250 * time.Millisecond, Fraction: 1},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, sampleRun()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"step", "current_score", "best_score", "elapsed_ms", "fraction"},
		{"1", "300", "300", "100", "0.5"},
		{"2", "412.5", "412.5", "250", "1"},
	}, rows)
}

func TestWriteSummaryCSV(t *testing.T) {
	second := sampleRun()
	second.ID, second.Solver, second.Canceled = "run-2", "greedy", true

	var buf bytes.Buffer
	require.NoError(t, report.WriteSummaryCSV(&buf, []store.Run{sampleRun(), second}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"run-1", "genetic", "2026-05-02T08:30:00Z", "10", "4", "412.5", "2", "250", "false", "3 0 7 3"}, rows[1])
	assert.Equal(t, "true", rows[2][8])
}

func TestFormatTour(t *testing.T) {
	assert.Equal(t, "", report.FormatTour(nil))
	assert.Equal(t, "5", report.FormatTour([]int{5}))
	assert.Equal(t, "1 2 1", report.FormatTour([]int{1, 2, 1}))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.xlsx")
	require.NoError(t, report.WriteXLSX(path, sampleRun()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.SummarySheet, report.HistorySheet}, f.GetSheetList())

	v, err := f.GetCellValue(report.SummarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "id", v)
	v, err = f.GetCellValue(report.SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "genetic", v)
	v, err = f.GetCellValue(report.SummarySheet, "J2")
	require.NoError(t, err)
	assert.Equal(t, "3 0 7 3", v)

	rows, err := f.GetRows(report.HistorySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "step", rows[0][0])
	assert.Equal(t, "2", rows[2][0])
}

func TestWriteXLSXTo_ManyRunsSummaryOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSXTo(&buf, sampleRun(), sampleRun()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.SummarySheet}, f.GetSheetList())
	rows, err := f.GetRows(report.SummarySheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
