package store

type GoalPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	DueDate     *string   `json:"dueDate"`
	KeyResults  *[]string `json:"keyResults"`
}

func (s *Store) Goals() []Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Goal, len(s.state.Goals))
	for i, goal := range s.state.Goals {
		goal.KeyResults = append([]string(nil), goal.KeyResults...)
		out[i] = goal
	}
	return out
}

func (s *Store) GoalByID(id string) (Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, goal := range s.state.Goals {
		if goal.ID == id {
			goal.KeyResults = append([]string(nil), goal.KeyResults...)
			return goal, true
		}
	}
	return Goal{}, false
}

// AddGoal forces a fresh goal into In Progress regardless of caller input and
// snapshots the owner's name next to the owner id.
func (s *Store) AddGoal(goal Goal) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	goal.ID = s.nextIDLocked(prefixGoal)
	goal.Status = GoalInProgress
	goal.Progress = clampProgress(goal.Progress)
	if goal.Owner == "" {
		goal.Owner = s.employeeNameLocked(goal.OwnerID)
	}
	s.state.Goals = append(s.state.Goals, goal)
	s.pushToastLocked("Goal created successfully", ToastSuccess)
	s.persistLocked()
	return goal.ID
}

func (s *Store) UpdateGoal(id string, patch GoalPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == id {
			goal := &s.state.Goals[i]
			if patch.Title != nil {
				goal.Title = *patch.Title
			}
			if patch.Description != nil {
				goal.Description = *patch.Description
			}
			if patch.Category != nil {
				goal.Category = *patch.Category
			}
			if patch.DueDate != nil {
				goal.DueDate = *patch.DueDate
			}
			if patch.KeyResults != nil {
				goal.KeyResults = append([]string(nil), (*patch.KeyResults)...)
			}
			s.pushToastLocked("Goal updated successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// UpdateGoalProgress clamps progress to [0,100]. Reaching 100 completes the
// goal; the transition is one-way, so lowering progress afterwards leaves the
// goal Completed.
func (s *Store) UpdateGoalProgress(id string, progress int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == id {
			goal := &s.state.Goals[i]
			goal.Progress = clampProgress(progress)
			if goal.Progress >= 100 {
				if goal.Status != GoalCompleted {
					s.pushNotificationLocked("goal", "Goal Completed",
						goal.Owner+" completed \""+goal.Title+"\"")
				}
				goal.Status = GoalCompleted
			}
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == id {
			s.state.Goals = append(s.state.Goals[:i], s.state.Goals[i+1:]...)
			s.pushToastLocked("Goal deleted successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
