package store

import "fmt"

func (s *Store) LeaveRequests() []LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LeaveRequest(nil), s.state.LeaveRequests...)
}

func (s *Store) LeaveRequestByID(id string) (LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, req := range s.state.LeaveRequests {
		if req.ID == id {
			return req, true
		}
	}
	return LeaveRequest{}, false
}

// AddLeaveRequest submits a request. Days is computed by the caller at
// submission time and stored as-is; it is never recomputed from the dates.
// Fresh requests are always Pending.
func (s *Store) AddLeaveRequest(req LeaveRequest) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	req.ID = s.nextIDLocked(prefixLeave)
	req.Status = StatusPending
	if req.EmployeeName == "" {
		req.EmployeeName = s.employeeNameLocked(req.EmployeeID)
	}
	s.state.LeaveRequests = append(s.state.LeaveRequests, req)
	s.pushNotificationLocked("leave", "Leave Request",
		fmt.Sprintf("%s requested %g days %s leave", req.EmployeeName, req.Days, req.Type))
	s.pushToastLocked("Leave request submitted", ToastSuccess)
	s.persistLocked()
	return req.ID
}

// ApproveLeave sets the request Approved. Any current status is a legal
// starting point; there is no Pending-only guard. Same for RejectLeave.
func (s *Store) ApproveLeave(id string) error {
	return s.setLeaveStatus(id, StatusApproved, "Leave request approved", ToastSuccess)
}

func (s *Store) RejectLeave(id string) error {
	return s.setLeaveStatus(id, StatusRejected, "Leave request rejected", ToastWarning)
}

func (s *Store) setLeaveStatus(id, status, message, level string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.LeaveRequests {
		if s.state.LeaveRequests[i].ID == id {
			s.state.LeaveRequests[i].Status = status
			s.pushToastLocked(message, level)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteLeaveRequest(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.LeaveRequests {
		if s.state.LeaveRequests[i].ID == id {
			s.state.LeaveRequests = append(s.state.LeaveRequests[:i], s.state.LeaveRequests[i+1:]...)
			s.pushToastLocked("Leave request deleted", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}
