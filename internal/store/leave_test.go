package store

import (
	"errors"
	"strings"
	"testing"
)

func TestAddLeaveRequestStartsPending(t *testing.T) {
	s := newTestStore(t)
	empID := s.AddEmployee(Employee{Name: "John Smith"})

	id := s.AddLeaveRequest(LeaveRequest{
		EmployeeID: empID,
		Type:       "Annual",
		StartDate:  "2025-07-01",
		EndDate:    "2025-07-03",
		Days:       3,
		Status:     StatusApproved, // ignored
	})

	req, _ := s.LeaveRequestByID(id)
	if req.Status != StatusPending {
		t.Fatalf("status: got %s, want %s", req.Status, StatusPending)
	}
	if req.EmployeeName != "John Smith" {
		t.Fatalf("employeeName: got %q", req.EmployeeName)
	}

	notifs := s.Notifications()
	if len(notifs) != 1 {
		t.Fatalf("notifications: got %d, want 1", len(notifs))
	}
	if !strings.Contains(notifs[0].Message, "John Smith requested 3 days Annual leave") {
		t.Fatalf("notification message: %q", notifs[0].Message)
	}
}

func TestLeaveApprovalHasNoTransitionGuard(t *testing.T) {
	s := newTestStore(t)
	id := s.AddLeaveRequest(LeaveRequest{EmployeeID: "EMP-0", Type: "Sick", Days: 1})

	if err := s.ApproveLeave(id); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if req, _ := s.LeaveRequestByID(id); req.Status != StatusApproved {
		t.Fatalf("status: got %s", req.Status)
	}

	// An already-approved request may still be rejected.
	if err := s.RejectLeave(id); err != nil {
		t.Fatalf("reject after approve: %v", err)
	}
	if req, _ := s.LeaveRequestByID(id); req.Status != StatusRejected {
		t.Fatalf("status: got %s", req.Status)
	}
}

func TestLeaveStatusUnknownID(t *testing.T) {
	s := newTestStore(t)
	if err := s.ApproveLeave("LV-999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestAddExpenseStartsPending(t *testing.T) {
	s := newTestStore(t)
	id := s.AddExpense(Expense{
		EmployeeID: "EMP-1001",
		Title:      "Conference travel",
		Category:   "Travel",
		Amount:     412.50,
		Status:     StatusApproved, // ignored
	})

	exp, _ := s.ExpenseByID(id)
	if exp.Status != StatusPending {
		t.Fatalf("status: got %s, want %s", exp.Status, StatusPending)
	}
}

func TestExpenseStatusTransitions(t *testing.T) {
	s := newTestStore(t)
	id := s.AddExpense(Expense{Title: "Meals", Category: "Meals", Amount: 30})

	if err := s.ApproveExpense(id); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := s.UpdateExpenseStatus(id, StatusPending); err != nil {
		t.Fatalf("back to pending: %v", err)
	}
	if err := s.RejectExpense(id); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if exp, _ := s.ExpenseByID(id); exp.Status != StatusRejected {
		t.Fatalf("status: got %s", exp.Status)
	}
}
