package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"legiswatch/types"
)

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, nil)
	if !errors.Is(err, ErrEmptyExport) {
		t.Fatalf("expected ErrEmptyExport, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on empty export, got %q", buf.String())
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	bills := []*types.Bill{
		{
			ID:             "HR3421",
			Title:          `Healthcare, "Accessibility" Act`,
			Summary:        "Line one\nline two",
			IntroducedDate: "2024-12-15",
			Sponsor:        "Rep. Sarah Johnson (D-CA)",
			BillType:       "HR",
			CongressURL:    "https://www.congress.gov/bill/118th-congress/house-bill/3421",
		},
		{
			ID:             "S1247",
			Title:          "Medicare Enhancement and Protection Act",
			Summary:        "To strengthen Medicare benefits.",
			IntroducedDate: "2024-12-10",
			Sponsor:        "Sen. Michael Thompson (R-TX)",
			BillType:       "S",
			CongressURL:    "https://www.congress.gov/bill/118th-congress/senate-bill/1247",
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, bills); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != len(bills)+1 {
		t.Fatalf("expected header + %d rows, got %d records", len(bills), len(records))
	}
	if records[0][0] != "Bill ID" || records[0][6] != "Congress URL" {
		t.Errorf("unexpected header %v", records[0])
	}

	for i, bill := range bills {
		row := records[i+1]
		want := []string{bill.ID, bill.Title, bill.Summary, bill.IntroducedDate, bill.Sponsor, bill.BillType, bill.CongressURL}
		for col, field := range want {
			if row[col] != field {
				t.Errorf("row %d col %d: got %q, want %q", i+1, col, row[col], field)
			}
		}
	}
}

func TestWriteCSVPreservesOrder(t *testing.T) {
	bills := []*types.Bill{
		{ID: "C3"}, {ID: "A1"}, {ID: "B2"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, bills); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	for i, want := range []string{"C3", "A1", "B2"} {
		if records[i+1][0] != want {
			t.Errorf("row %d: got %q, want %q", i+1, records[i+1][0], want)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 12, 15, 10, 30, 45, 0, time.UTC)
	got := Filename(now)
	if got != "legiswatch_results_20241215_103045.csv" {
		t.Errorf("unexpected filename %q", got)
	}
	if !strings.HasSuffix(got, ".csv") {
		t.Errorf("filename should end in .csv, got %q", got)
	}
}
