package store

import "fmt"

// Id prefixes, one counter per family. Counters are persisted inside the
// snapshot, so an id is never reissued after a delete-and-reload cycle.
const (
	prefixEmployee     = "EMP"
	prefixDocument     = "DOC"
	prefixAsset        = "AST"
	prefixGoal         = "GOAL"
	prefixCandidate    = "CAN"
	prefixInterview    = "INT"
	prefixLeave        = "LV"
	prefixExpense      = "EXP"
	prefixCourse       = "CRS"
	prefixPost         = "POST"
	prefixComment      = "CMT"
	prefixNotification = "NOT"
)

// employeeBase keeps employee numbers in the EMP-1001+ range.
const employeeBase = 1000

// nextIDLocked issues the next id for a prefix. Callers hold s.mu.
func (s *Store) nextIDLocked(prefix string) string {
	s.state.Counters[prefix]++
	n := s.state.Counters[prefix]
	switch prefix {
	case prefixEmployee:
		return fmt.Sprintf("%s-%d", prefix, employeeBase+n)
	case prefixComment:
		return fmt.Sprintf("%s-%d", prefix, n)
	default:
		return fmt.Sprintf("%s-%03d", prefix, n)
	}
}
