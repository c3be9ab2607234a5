package store

import (
	"reflect"
	"testing"
)

func TestHeadcountByDepartment(t *testing.T) {
	s := newTestStore(t)
	s.AddEmployee(Employee{Name: "A", Department: "Engineering"})
	s.AddEmployee(Employee{Name: "B", Department: "Sales"})
	s.AddEmployee(Employee{Name: "C", Department: "Engineering"})
	s.AddEmployee(Employee{Name: "D"})

	got := s.HeadcountByDepartment()
	want := []NameCount{
		{Name: "Engineering", Count: 2},
		{Name: "Sales", Count: 1},
		{Name: "Other", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("headcount: got %v, want %v", got, want)
	}
}

func TestEmployeeDepartmentsSortedDistinct(t *testing.T) {
	s := newTestStore(t)
	s.AddEmployee(Employee{Name: "A", Department: "Sales"})
	s.AddEmployee(Employee{Name: "B", Department: "Engineering"})
	s.AddEmployee(Employee{Name: "C", Department: "Sales"})
	s.AddEmployee(Employee{Name: "D"})

	got := s.EmployeeDepartments()
	want := []string{"Engineering", "Sales"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("departments: got %v, want %v", got, want)
	}
}

func TestActiveEmployees(t *testing.T) {
	s := newTestStore(t)
	s.AddEmployee(Employee{Name: "A", Status: EmployeeActive})
	s.AddEmployee(Employee{Name: "B", Status: EmployeeInactive})
	s.AddEmployee(Employee{Name: "C", Status: EmployeeActive})

	if got := len(s.ActiveEmployees()); got != 2 {
		t.Fatalf("active: got %d, want 2", got)
	}
}

func TestExpenseStats(t *testing.T) {
	s := newTestStore(t)
	if got := s.ExpenseStats(); got != (Stats{}) {
		t.Fatalf("empty stats: got %+v", got)
	}

	for _, amount := range []float64{100, 50, 250} {
		s.AddExpense(Expense{Title: "x", Category: "Travel", Amount: amount})
	}

	got := s.ExpenseStats()
	want := Stats{Sum: 400, Avg: 400.0 / 3, Min: 50, Max: 250}
	if got != want {
		t.Fatalf("stats: got %+v, want %+v", got, want)
	}
}

func TestPendingCounts(t *testing.T) {
	s := newTestStore(t)
	a := s.AddLeaveRequest(LeaveRequest{EmployeeID: "EMP-0", Type: "Sick", Days: 1})
	s.AddLeaveRequest(LeaveRequest{EmployeeID: "EMP-0", Type: "Annual", Days: 2})
	s.AddExpense(Expense{Title: "x", Category: "Meals", Amount: 10})

	if got := s.PendingLeaveCount(); got != 2 {
		t.Fatalf("pending leave: got %d, want 2", got)
	}
	if got := s.PendingExpenseCount(); got != 1 {
		t.Fatalf("pending expenses: got %d, want 1", got)
	}

	if err := s.ApproveLeave(a); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got := s.PendingLeaveCount(); got != 1 {
		t.Fatalf("pending leave after approve: got %d, want 1", got)
	}
}

func TestCandidatesByStageFollowsPipelineOrderOfInsertion(t *testing.T) {
	s := newTestStore(t)
	a := s.AddCandidate(Candidate{Name: "A", Position: "Eng"})
	s.AddCandidate(Candidate{Name: "B", Position: "Eng"})
	if _, err := s.AdvanceCandidate(a); err != nil {
		t.Fatalf("advance: %v", err)
	}

	got := s.CandidatesByStage()
	want := []NameCount{
		{Name: StageScreening, Count: 1},
		{Name: StageApplied, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("pipeline: got %v, want %v", got, want)
	}
}
