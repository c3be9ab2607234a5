package store

type InterviewPatch struct {
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Type        *string `json:"type"`
	MeetingLink *string `json:"meetingLink"`
	Status      *string `json:"status"`
	Duration    *int    `json:"duration"`
}

func (s *Store) Interviews() []Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Interview(nil), s.state.Interviews...)
}

func (s *Store) InterviewByID(id string) (Interview, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, iv := range s.state.Interviews {
		if iv.ID == id {
			return iv, true
		}
	}
	return Interview{}, false
}

// AddInterview schedules an interview; fresh interviews are always Scheduled.
// Candidate and interviewer names are snapshotted at scheduling time.
func (s *Store) AddInterview(iv Interview) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	iv.ID = s.nextIDLocked(prefixInterview)
	iv.Status = InterviewScheduled
	if iv.CandidateName == "" {
		for _, can := range s.state.Candidates {
			if can.ID == iv.CandidateID {
				iv.CandidateName = can.Name
				if iv.Position == "" {
					iv.Position = can.Position
				}
				break
			}
		}
	}
	if iv.InterviewerName == "" {
		iv.InterviewerName = s.employeeNameLocked(iv.InterviewerID)
	}
	s.state.Interviews = append(s.state.Interviews, iv)
	s.pushNotificationLocked("interview", "Interview Scheduled",
		"Interview with "+iv.CandidateName+" on "+iv.Date+" at "+iv.Time)
	s.pushToastLocked("Interview scheduled successfully", ToastSuccess)
	s.persistLocked()
	return iv.ID
}

func (s *Store) UpdateInterview(id string, patch InterviewPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Interviews {
		if s.state.Interviews[i].ID == id {
			iv := &s.state.Interviews[i]
			if patch.Date != nil {
				iv.Date = *patch.Date
			}
			if patch.Time != nil {
				iv.Time = *patch.Time
			}
			if patch.Type != nil {
				iv.Type = *patch.Type
			}
			if patch.MeetingLink != nil {
				iv.MeetingLink = *patch.MeetingLink
			}
			if patch.Status != nil {
				iv.Status = *patch.Status
			}
			if patch.Duration != nil {
				iv.Duration = *patch.Duration
			}
			s.pushToastLocked("Interview updated successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) CancelInterview(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Interviews {
		if s.state.Interviews[i].ID == id {
			s.state.Interviews[i].Status = InterviewCancelled
			s.pushToastLocked("Interview cancelled", ToastWarning)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteInterview(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Interviews {
		if s.state.Interviews[i].ID == id {
			s.state.Interviews = append(s.state.Interviews[:i], s.state.Interviews[i+1:]...)
			s.pushToastLocked("Interview deleted successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}
