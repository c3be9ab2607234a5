package store

import (
	"time"

	"github.com/google/uuid"
)

// Toasts returns the live transient notices, oldest first.
func (s *Store) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Toast(nil), s.toasts...)
}

// AddToast inserts a transient notice that removes itself after the store's
// TTL. This is the only time-based behavior in the whole store.
func (s *Store) AddToast(message, level string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pushToastLocked(message, level)
}

// RemoveToast dismisses a toast before its timer fires.
func (s *Store) RemoveToast(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeToastLocked(id)
}

func (s *Store) pushToastLocked(message, level string) string {
	if level == "" {
		level = ToastInfo
	}
	id := uuid.NewString()
	s.toasts = append(s.toasts, Toast{
		ID:        id,
		Message:   message,
		Level:     level,
		CreatedAt: s.now(),
	})
	s.timers[id] = time.AfterFunc(s.toastTTL, func() {
		s.RemoveToast(id)
	})
	return id
}

func (s *Store) removeToastLocked(id string) {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	for i, toast := range s.toasts {
		if toast.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}
