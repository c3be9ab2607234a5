package store

type CandidatePatch struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Position   *string  `json:"position"`
	Stage      *string  `json:"stage"`
	Rating     *float64 `json:"rating"`
	Source     *string  `json:"source"`
	Experience *string  `json:"experience"`
	Notes      *string  `json:"notes"`
}

func (s *Store) Candidates() []Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Candidate(nil), s.state.Candidates...)
}

func (s *Store) CandidateByID(id string) (Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, can := range s.state.Candidates {
		if can.ID == id {
			return can, true
		}
	}
	return Candidate{}, false
}

// AddCandidate always starts the candidate at Applied, whatever the caller
// passed for stage.
func (s *Store) AddCandidate(can Candidate) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	can.ID = s.nextIDLocked(prefixCandidate)
	can.Stage = StageApplied
	if can.AppliedDate == "" {
		can.AppliedDate = s.today()
	}
	s.state.Candidates = append(s.state.Candidates, can)
	s.pushToastLocked("Candidate added successfully", ToastSuccess)
	s.persistLocked()
	return can.ID
}

// UpdateCandidate is a direct field edit: unlike AdvanceCandidate it may set
// any stage value, including jumping backwards or out of a terminal stage.
func (s *Store) UpdateCandidate(id string, patch CandidatePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Candidates {
		if s.state.Candidates[i].ID == id {
			can := &s.state.Candidates[i]
			if patch.Name != nil {
				can.Name = *patch.Name
			}
			if patch.Email != nil {
				can.Email = *patch.Email
			}
			if patch.Phone != nil {
				can.Phone = *patch.Phone
			}
			if patch.Position != nil {
				can.Position = *patch.Position
			}
			if patch.Stage != nil {
				can.Stage = *patch.Stage
			}
			if patch.Rating != nil {
				can.Rating = *patch.Rating
			}
			if patch.Source != nil {
				can.Source = *patch.Source
			}
			if patch.Experience != nil {
				can.Experience = *patch.Experience
			}
			if patch.Notes != nil {
				can.Notes = *patch.Notes
			}
			s.pushToastLocked("Candidate updated successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// AdvanceCandidate moves a candidate one step forward along the pipeline.
// Hired and Rejected are terminal for this operation.
func (s *Store) AdvanceCandidate(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Candidates {
		if s.state.Candidates[i].ID != id {
			continue
		}
		can := &s.state.Candidates[i]
		next, ok := nextStage(can.Stage)
		if !ok {
			return "", ErrTerminalStage
		}
		can.Stage = next
		s.pushToastLocked("Candidate moved to "+next, ToastSuccess)
		s.persistLocked()
		return next, nil
	}
	return "", ErrNotFound
}

// RejectCandidate moves a candidate sideways to Rejected from any non-terminal
// stage.
func (s *Store) RejectCandidate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Candidates {
		if s.state.Candidates[i].ID != id {
			continue
		}
		can := &s.state.Candidates[i]
		if can.Stage == StageHired || can.Stage == StageRejected {
			return ErrTerminalStage
		}
		can.Stage = StageRejected
		s.pushToastLocked("Candidate moved to "+StageRejected, ToastWarning)
		s.persistLocked()
		return nil
	}
	return ErrNotFound
}

// HireCandidate synthesizes a probationary employee from the candidate and
// marks the candidate Hired. Both collections change under the same lock, so
// the pair is never observed diverged. A candidate already in Hired cannot be
// hired twice.
func (s *Store) HireCandidate(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Candidates {
		if s.state.Candidates[i].ID != id {
			continue
		}
		can := &s.state.Candidates[i]
		if can.Stage == StageHired {
			return "", ErrAlreadyHired
		}
		empID := s.addEmployeeLocked(Employee{
			Name:        can.Name,
			Email:       can.Email,
			Phone:       can.Phone,
			Department:  PendingAssignment,
			Designation: can.Position,
			Status:      EmployeeProbation,
			JoinDate:    s.today(),
		})
		can.Stage = StageHired
		s.pushNotificationLocked("candidate", "Candidate Hired",
			can.Name+" joined as "+can.Position)
		s.pushToastLocked(can.Name+" has been hired!", ToastSuccess)
		s.persistLocked()
		return empID, nil
	}
	return "", ErrNotFound
}

func (s *Store) DeleteCandidate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Candidates {
		if s.state.Candidates[i].ID == id {
			s.state.Candidates = append(s.state.Candidates[:i], s.state.Candidates[i+1:]...)
			s.pushToastLocked("Candidate removed successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func nextStage(stage string) (string, bool) {
	for i, current := range CandidateStages {
		if current != stage {
			continue
		}
		if i == len(CandidateStages)-1 {
			return "", false
		}
		return CandidateStages[i+1], true
	}
	return "", false
}
