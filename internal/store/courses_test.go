package store

import (
	"errors"
	"testing"
)

func seedCourse(s *Store) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextIDLocked(prefixCourse)
	s.state.Courses = append(s.state.Courses, Course{ID: id, Title: "Go Fundamentals", Category: "Technical", Level: "Beginner"})
	return id
}

func TestEnrollCourse(t *testing.T) {
	s := newTestStore(t)
	id := seedCourse(s)

	if err := s.EnrollCourse(id); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if course, _ := s.CourseByID(id); !course.Enrolled {
		t.Fatal("course not marked enrolled")
	}
}

func TestCourseProgressRequiresEnrollment(t *testing.T) {
	s := newTestStore(t)
	id := seedCourse(s)

	if err := s.UpdateCourseProgress(id, 40); !errors.Is(err, ErrNotEnrolled) {
		t.Fatalf("progress before enroll: got %v, want ErrNotEnrolled", err)
	}

	if err := s.EnrollCourse(id); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := s.UpdateCourseProgress(id, 140); err != nil {
		t.Fatalf("progress: %v", err)
	}
	if course, _ := s.CourseByID(id); course.Progress != 100 {
		t.Fatalf("progress not clamped: got %d", course.Progress)
	}
}

func TestCourseProgressUnknownID(t *testing.T) {
	s := newTestStore(t)
	if err := s.UpdateCourseProgress("CRS-999", 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
