package store

type ExpensePatch struct {
	Title       *string  `json:"title"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

func (s *Store) Expenses() []Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Expense(nil), s.state.Expenses...)
}

func (s *Store) ExpenseByID(id string) (Expense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, exp := range s.state.Expenses {
		if exp.ID == id {
			return exp, true
		}
	}
	return Expense{}, false
}

func (s *Store) AddExpense(exp Expense) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp.ID = s.nextIDLocked(prefixExpense)
	exp.Status = StatusPending
	if exp.EmployeeName == "" {
		exp.EmployeeName = s.employeeNameLocked(exp.EmployeeID)
	}
	if exp.Date == "" {
		exp.Date = s.today()
	}
	s.state.Expenses = append(s.state.Expenses, exp)
	s.pushToastLocked("Expense submitted successfully", ToastSuccess)
	s.persistLocked()
	return exp.ID
}

func (s *Store) UpdateExpense(id string, patch ExpensePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Expenses {
		if s.state.Expenses[i].ID == id {
			exp := &s.state.Expenses[i]
			if patch.Title != nil {
				exp.Title = *patch.Title
			}
			if patch.Category != nil {
				exp.Category = *patch.Category
			}
			if patch.Amount != nil {
				exp.Amount = *patch.Amount
			}
			if patch.Date != nil {
				exp.Date = *patch.Date
			}
			if patch.Description != nil {
				exp.Description = *patch.Description
			}
			s.pushToastLocked("Expense updated successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) ApproveExpense(id string) error {
	return s.UpdateExpenseStatus(id, StatusApproved)
}

func (s *Store) RejectExpense(id string) error {
	return s.UpdateExpenseStatus(id, StatusRejected)
}

// UpdateExpenseStatus sets any status from any status; approvals carry no
// state-machine guard.
func (s *Store) UpdateExpenseStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Expenses {
		if s.state.Expenses[i].ID == id {
			s.state.Expenses[i].Status = status
			level := ToastSuccess
			if status == StatusRejected {
				level = ToastWarning
			}
			s.pushToastLocked("Expense marked as "+status, level)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteExpense(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Expenses {
		if s.state.Expenses[i].ID == id {
			s.state.Expenses = append(s.state.Expenses[:i], s.state.Expenses[i+1:]...)
			s.pushToastLocked("Expense deleted successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}
