package export

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
	"time"
)

type row struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Amount   float64  `json:"amount"`
	Active   bool     `json:"active"`
	Tags     []string `json:"tags"`
	internal string
	Skipped  string `json:"-"`
}

func TestCSVEmptySlice(t *testing.T) {
	data, err := CSV([]row{})
	if err != nil {
		t.Fatalf("empty slice: %v", err)
	}
	if data != nil {
		t.Fatalf("empty slice: got %q, want nil", data)
	}
}

func TestCSVRejectsNonSlice(t *testing.T) {
	if _, err := CSV(row{}); err == nil {
		t.Fatal("expected an error for a non-slice")
	}
}

func TestCSVHeadersAndRows(t *testing.T) {
	data, err := CSV([]row{
		{ID: "EMP-1001", Name: "Smith, John", Amount: 412.5, Active: true, Tags: []string{"a", "b"}, Skipped: "hidden"},
		{ID: "EMP-1002", Name: `Ada "the engine" Lovelace`, Amount: 100},
	})
	if err != nil {
		t.Fatalf("csv: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows: got %d, want 3", len(records))
	}

	wantHeader := []string{"id", "name", "amount", "active", "tags"}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Fatalf("header: got %v, want %v", records[0], wantHeader)
	}
	if records[1][1] != "Smith, John" {
		t.Fatalf("comma field did not round-trip: %q", records[1][1])
	}
	if records[2][1] != `Ada "the engine" Lovelace` {
		t.Fatalf("quoted field did not round-trip: %q", records[2][1])
	}
	if records[1][2] != "412.5" || records[2][2] != "100" {
		t.Fatalf("float formatting: %q, %q", records[1][2], records[2][2])
	}
	if records[1][4] != "a; b" {
		t.Fatalf("slice cell: %q", records[1][4])
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	if got := Filename("employees", now); got != "employees_2025-06-15.csv" {
		t.Fatalf("got %q", got)
	}
}

func TestSummaryPDFProducesDocument(t *testing.T) {
	doc, err := SummaryPDF(Summary{
		GeneratedAt:    time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		TotalEmployees: 10,
	})
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", doc[:8])
	}
}
