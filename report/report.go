// Package report exports persisted runs as CSV and XLSX.
//
// A run's history table has one row per recorded progress sample:
//
//	step, current_score, best_score, elapsed_ms, fraction
//
// The summary table has one row per run and is shared by WriteSummaryCSV and
// the "Summary" sheet of the workbook.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/tourplan/store"
)

var (
	historyHeader = []string{"step", "current_score", "best_score", "elapsed_ms", "fraction"}
	summaryHeader = []string{"id", "solver", "created_at", "num_cities", "tour_length", "score", "steps", "elapsed_ms", "canceled", "tour"}
)

// WriteCSV writes the history of run to w.
func WriteCSV(w io.Writer, run store.Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(historyHeader); err != nil {
		return err
	}
	for _, h := range run.History {
		rec := []string{
			strconv.Itoa(h.Step),
			formatFloat(h.CurrentScore),
			formatFloat(h.BestScore),
			formatFloat(millis(h.Elapsed)),
			formatFloat(h.Fraction),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes one summary row per run to w.
func WriteSummaryCSV(w io.Writer, runs []store.Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}
	for _, run := range runs {
		if err := cw.Write(summaryRow(run)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func summaryRow(run store.Run) []string {
	return []string{
		run.ID,
		run.Solver,
		run.CreatedAt.UTC().Format(time.RFC3339),
		strconv.Itoa(run.NumCities),
		strconv.Itoa(run.TourLength),
		formatFloat(run.Score),
		strconv.Itoa(run.Steps),
		formatFloat(millis(run.Elapsed)),
		strconv.FormatBool(run.Canceled),
		FormatTour(run.Tour),
	}
}

// FormatTour renders a tour as space-separated city indices, e.g. "3 0 7".
func FormatTour(tour []int) string {
	var b strings.Builder
	for i, c := range tour {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, c)
	}
	return b.String()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func millis(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
