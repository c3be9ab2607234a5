package store

import (
	"errors"
	"testing"
)

func TestAddGoalForcesInProgress(t *testing.T) {
	s := newTestStore(t)
	id := s.AddGoal(Goal{Title: "Ship v2", Status: GoalCompleted, Progress: 150})

	goal, _ := s.GoalByID(id)
	if goal.Status != GoalInProgress {
		t.Fatalf("status: got %s, want %s", goal.Status, GoalInProgress)
	}
	if goal.Progress != 100 {
		t.Fatalf("progress not clamped: got %d", goal.Progress)
	}
}

func TestUpdateGoalProgressClamps(t *testing.T) {
	s := newTestStore(t)
	id := s.AddGoal(Goal{Title: "Ship v2"})

	tests := []struct {
		in   int
		want int
	}{
		{-10, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{400, 100},
	}
	for _, tc := range tests {
		if err := s.UpdateGoalProgress(id, tc.in); err != nil {
			t.Fatalf("progress %d: %v", tc.in, err)
		}
		if goal, _ := s.GoalByID(id); goal.Progress != tc.want {
			t.Fatalf("progress %d: got %d, want %d", tc.in, goal.Progress, tc.want)
		}
	}
}

func TestGoalCompletionIsOneWay(t *testing.T) {
	s := newTestStore(t)
	id := s.AddGoal(Goal{Title: "Ship v2", Owner: "Ada"})

	if err := s.UpdateGoalProgress(id, 100); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if goal, _ := s.GoalByID(id); goal.Status != GoalCompleted {
		t.Fatalf("status: got %s, want %s", goal.Status, GoalCompleted)
	}

	unread := s.UnreadNotifications()
	if unread != 1 {
		t.Fatalf("completion notifications: got %d, want 1", unread)
	}

	// Lowering progress afterwards does not reopen the goal, and completing
	// again does not re-notify.
	if err := s.UpdateGoalProgress(id, 40); err != nil {
		t.Fatalf("lower: %v", err)
	}
	goal, _ := s.GoalByID(id)
	if goal.Status != GoalCompleted {
		t.Fatalf("status after lowering: got %s, want %s", goal.Status, GoalCompleted)
	}
	if goal.Progress != 40 {
		t.Fatalf("progress after lowering: got %d, want 40", goal.Progress)
	}

	if err := s.UpdateGoalProgress(id, 100); err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if got := s.UnreadNotifications(); got != 1 {
		t.Fatalf("notifications after re-complete: got %d, want 1", got)
	}
}

func TestUpdateGoalProgressUnknownID(t *testing.T) {
	s := newTestStore(t)
	if err := s.UpdateGoalProgress("GOAL-999", 50); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
