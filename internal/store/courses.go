package store

func (s *Store) Courses() []Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Course(nil), s.state.Courses...)
}

func (s *Store) CourseByID(id string) (Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, course := range s.state.Courses {
		if course.ID == id {
			return course, true
		}
	}
	return Course{}, false
}

func (s *Store) EnrollCourse(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Courses {
		if s.state.Courses[i].ID == id {
			s.state.Courses[i].Enrolled = true
			s.pushToastLocked("Enrolled in "+s.state.Courses[i].Title, ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// UpdateCourseProgress clamps to [0,100] like goal progress. Courses carry no
// status field, so nothing flips at 100.
func (s *Store) UpdateCourseProgress(id string, progress int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Courses {
		if s.state.Courses[i].ID == id {
			if !s.state.Courses[i].Enrolled {
				return ErrNotEnrolled
			}
			s.state.Courses[i].Progress = clampProgress(progress)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}
