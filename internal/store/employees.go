package store

// EmployeePatch is a shallow-merge update; nil fields are left untouched.
type EmployeePatch struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
	Status      *string `json:"status"`
	JoinDate    *string `json:"joinDate"`
	Avatar      *string `json:"avatar"`
}

func (p EmployeePatch) apply(emp *Employee) {
	if p.Name != nil {
		emp.Name = *p.Name
	}
	if p.Email != nil {
		emp.Email = *p.Email
	}
	if p.Phone != nil {
		emp.Phone = *p.Phone
	}
	if p.Department != nil {
		emp.Department = *p.Department
	}
	if p.Designation != nil {
		emp.Designation = *p.Designation
	}
	if p.Status != nil {
		emp.Status = *p.Status
	}
	if p.JoinDate != nil {
		emp.JoinDate = *p.JoinDate
	}
	if p.Avatar != nil {
		emp.Avatar = *p.Avatar
	}
}

func (s *Store) Employees() []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Employee(nil), s.state.Employees...)
}

func (s *Store) EmployeeByID(id string) (Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, emp := range s.state.Employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

// AddEmployee assigns an id, appends and persists. Validation is the
// caller's job; the store never rejects fields.
func (s *Store) AddEmployee(emp Employee) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.addEmployeeLocked(emp)
	s.pushToastLocked("Employee added successfully", ToastSuccess)
	s.persistLocked()
	return id
}

func (s *Store) addEmployeeLocked(emp Employee) string {
	emp.ID = s.nextIDLocked(prefixEmployee)
	s.state.Employees = append(s.state.Employees, emp)
	return emp.ID
}

func (s *Store) UpdateEmployee(id string, patch EmployeePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Employees {
		if s.state.Employees[i].ID == id {
			patch.apply(&s.state.Employees[i])
			s.pushToastLocked("Employee updated successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteEmployee(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Employees {
		if s.state.Employees[i].ID == id {
			s.state.Employees = append(s.state.Employees[:i], s.state.Employees[i+1:]...)
			s.pushToastLocked("Employee removed successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}
