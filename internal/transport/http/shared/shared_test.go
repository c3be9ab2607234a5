package shared

import (
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"", time.Time{}, false},
		{"2025-06-15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"2025-06-15T10:30:00Z", time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC), false},
		{"June 15th", time.Time{}, true},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLeaveDays(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"single day", day(1), day(1), 1},
		{"three days", day(1), day(3), 3},
		{"reversed", day(3), day(1), 0},
	}
	for _, tc := range tests {
		if got := LeaveDays(tc.start, tc.end); got != tc.want {
			t.Fatalf("%s: got %g, want %g", tc.name, got, tc.want)
		}
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		url  string
		want Pagination
	}{
		{"/x", Pagination{Limit: 50}},
		{"/x?limit=10&offset=20", Pagination{Limit: 10, Offset: 20}},
		{"/x?limit=9999", Pagination{Limit: 200}},
		{"/x?limit=-1&offset=-5", Pagination{Limit: 50}},
		{"/x?limit=abc", Pagination{Limit: 50}},
	}
	for _, tc := range tests {
		r := httptest.NewRequest("GET", tc.url, nil)
		if got := ParsePagination(r, 50, 200); got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.url, got, tc.want)
		}
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	if got := Page(items, Pagination{Limit: 2, Offset: 1}); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Fatalf("window: %v", got)
	}
	if got := Page(items, Pagination{Limit: 10, Offset: 0}); !reflect.DeepEqual(got, items) {
		t.Fatalf("oversized limit: %v", got)
	}
	if got := Page(items, Pagination{Limit: 2, Offset: 99}); got != nil {
		t.Fatalf("offset past end: %v", got)
	}
}

func TestMatchesQuery(t *testing.T) {
	if !MatchesQuery("", "anything") {
		t.Fatal("empty term must match")
	}
	if !MatchesQuery("SMITH", "John Smith", "john@corp.test") {
		t.Fatal("case-insensitive match failed")
	}
	if MatchesQuery("jones", "John Smith", "Engineering") {
		t.Fatal("non-matching term matched")
	}
}

func TestValidator(t *testing.T) {
	v := NewValidator()
	v.Required("name", "", "name is required")
	v.Enum("status", "Bogus", []string{"Active", "Inactive"}, "unknown status")
	v.Positive("amount", -5, "amount must be positive")
	if _, ok := v.Date("joinDate", "not a date"); ok {
		t.Fatal("bad date validated")
	}

	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	if got := len(v.Issues()); got != 4 {
		t.Fatalf("issues: got %d, want 4", got)
	}

	clean := NewValidator()
	clean.Required("name", "Ada", "name is required")
	clean.Enum("status", "Active", []string{"Active", "Inactive"}, "unknown status")
	if clean.HasIssues() {
		t.Fatalf("unexpected issues: %+v", clean.Issues())
	}
}

// Enum skips empty values so optional fields can default; mandatory fields
// must pair it with Required to keep an explicit "" out.
func TestValidatorEnumSkipsEmptyValue(t *testing.T) {
	v := NewValidator()
	v.Enum("status", "", []string{"Active", "Inactive"}, "unknown status")
	if v.HasIssues() {
		t.Fatalf("unexpected issues: %+v", v.Issues())
	}

	v.Required("status", "", "status is required")
	v.Enum("status", "", []string{"Active", "Inactive"}, "unknown status")
	issues := v.Issues()
	if len(issues) != 1 {
		t.Fatalf("issues: got %d, want 1", len(issues))
	}
	if issues[0].Reason != "status is required" {
		t.Fatalf("reason: %q", issues[0].Reason)
	}
}

func TestValidatorReject(t *testing.T) {
	v := NewValidator()
	v.Required("name", "", "name is required")

	w := httptest.NewRecorder()
	if !v.Reject(w, "req-1") {
		t.Fatal("Reject should report true when issues exist")
	}
	if w.Code != 400 {
		t.Fatalf("status: got %d, want 400", w.Code)
	}

	clean := NewValidator()
	w = httptest.NewRecorder()
	if clean.Reject(w, "req-1") {
		t.Fatal("Reject should report false with no issues")
	}
	if w.Code != 200 {
		t.Fatalf("clean recorder should be untouched, got %d", w.Code)
	}
}
