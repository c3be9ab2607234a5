package store

import (
	"fmt"
	"time"
)

func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification(nil), s.state.Notifications...)
}

func (s *Store) UnreadNotifications() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.state.Notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *Store) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications[i].Read = true
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Notifications {
		s.state.Notifications[i].Read = true
	}
	s.persistLocked()
}

// pushNotificationLocked appends a domain notification. Callers hold s.mu and
// persist afterwards as part of the mutation that raised the event.
func (s *Store) pushNotificationLocked(ntype, title, message string) {
	s.state.Notifications = append(s.state.Notifications, Notification{
		ID:        s.nextIDLocked(prefixNotification),
		Type:      ntype,
		Title:     title,
		Message:   message,
		CreatedAt: s.now(),
	})
}

// RelativeTime renders a notification-style label such as "2 hours ago".
func RelativeTime(t, now time.Time) string {
	if t.IsZero() || t.After(now) {
		return "just now"
	}
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour")
	default:
		return plural(int(elapsed.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
