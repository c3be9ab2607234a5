package store

import (
	"testing"
	"time"
)

func TestDocumentStatusAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry string
		want   string
	}{
		{"no expiry", "", DocumentActive},
		{"unparseable expiry", "next year", DocumentActive},
		{"far future", "2026-06-15", DocumentActive},
		{"inside warning window", "2025-07-01", DocumentExpiring},
		{"day before cutoff", "2025-07-14", DocumentExpiring},
		{"already expired", "2025-06-01", DocumentExpired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DocumentStatusAt(tc.expiry, now); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestAddDocumentSnapshotsEmployeeName(t *testing.T) {
	s := newTestStore(t)
	empID := s.AddEmployee(Employee{Name: "John Smith"})

	docID := s.AddDocument(Document{Name: "Contract", Type: "Contract", EmployeeID: empID})

	doc, _ := s.DocumentByID(docID)
	if doc.EmployeeName != "John Smith" {
		t.Fatalf("employeeName: got %q, want John Smith", doc.EmployeeName)
	}
	if doc.UploadDate != testNow.Format("2006-01-02") {
		t.Fatalf("uploadDate defaulted to %s", doc.UploadDate)
	}
	if doc.Status != DocumentActive {
		t.Fatalf("status: got %s, want %s", doc.Status, DocumentActive)
	}

	// Renaming the employee leaves the stored copy untouched.
	if err := s.UpdateEmployee(empID, EmployeePatch{Name: strPtr("John Renamed")}); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if doc, _ := s.DocumentByID(docID); doc.EmployeeName != "John Smith" {
		t.Fatalf("denormalized name was refreshed: %q", doc.EmployeeName)
	}
}

func TestRefreshDocumentStatuses(t *testing.T) {
	clock := testNow
	s := New(nil, WithClock(func() time.Time { return clock }))
	defer s.Close()

	id := s.AddDocument(Document{Name: "Visa", Type: "Visa", ExpiryDate: "2025-07-01"})
	if doc, _ := s.DocumentByID(id); doc.Status != DocumentExpiring {
		t.Fatalf("status at upload: got %s, want %s", doc.Status, DocumentExpiring)
	}

	// Nothing to do while the derived status still holds.
	if got := s.RefreshDocumentStatuses(); got != 0 {
		t.Fatalf("refresh with fresh statuses touched %d", got)
	}

	clock = clock.AddDate(0, 2, 0)
	if got := s.RefreshDocumentStatuses(); got != 1 {
		t.Fatalf("refresh after expiry touched %d, want 1", got)
	}
	if doc, _ := s.DocumentByID(id); doc.Status != DocumentExpired {
		t.Fatalf("status after refresh: got %s, want %s", doc.Status, DocumentExpired)
	}
}

func TestUpdateDocumentExpiryRederivesStatus(t *testing.T) {
	s := newTestStore(t)
	id := s.AddDocument(Document{Name: "Visa", Type: "Visa", ExpiryDate: "2026-06-15"})

	if err := s.UpdateDocument(id, DocumentPatch{ExpiryDate: strPtr("2025-06-01")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if doc, _ := s.DocumentByID(id); doc.Status != DocumentExpired {
		t.Fatalf("status: got %s, want %s", doc.Status, DocumentExpired)
	}
}
