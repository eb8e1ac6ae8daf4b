package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"legiswatch/types"
)

// ErrEmptyExport is returned when there is nothing to export.
// Empty result sets are a hard failure rather than a header-only file.
var ErrEmptyExport = errors.New("no bills to export")

var csvHeader = []string{"Bill ID", "Title", "Summary", "Introduced Date", "Sponsor", "Type", "Congress URL"}

// WriteCSV renders bills to CSV in input order, header first.
func WriteCSV(w io.Writer, bills []*types.Bill) error {
	if len(bills) == 0 {
		return ErrEmptyExport
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, b := range bills {
		record := []string{b.ID, b.Title, b.Summary, b.IntroducedDate, b.Sponsor, b.BillType, b.CongressURL}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write bill %s: %w", b.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename builds the timestamped download name for an export.
func Filename(now time.Time) string {
	return fmt.Sprintf("legiswatch_results_%s.csv", now.Format("20060102_150405"))
}
