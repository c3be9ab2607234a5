package store

import "time"

// expiryWarningWindow is how close to expiry a document turns Expiring.
const expiryWarningWindow = 30 * 24 * time.Hour

// DocumentStatusAt derives a document status from its expiry date. An empty
// or unparseable expiry never expires.
func DocumentStatusAt(expiryDate string, now time.Time) string {
	if expiryDate == "" {
		return DocumentActive
	}
	expiry, err := time.Parse("2006-01-02", expiryDate)
	if err != nil {
		return DocumentActive
	}
	if expiry.Before(now) {
		return DocumentExpired
	}
	if expiry.Before(now.Add(expiryWarningWindow)) {
		return DocumentExpiring
	}
	return DocumentActive
}

type DocumentPatch struct {
	Name       *string `json:"name"`
	Type       *string `json:"type"`
	ExpiryDate *string `json:"expiryDate"`
}

func (s *Store) Documents() []Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Document(nil), s.state.Documents...)
}

func (s *Store) DocumentByID(id string) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.state.Documents {
		if doc.ID == id {
			return doc, true
		}
	}
	return Document{}, false
}

// AddDocument snapshots the owning employee's name at upload time. The copy
// is never refreshed if the employee is later renamed.
func (s *Store) AddDocument(doc Document) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.ID = s.nextIDLocked(prefixDocument)
	if doc.EmployeeName == "" {
		doc.EmployeeName = s.employeeNameLocked(doc.EmployeeID)
	}
	if doc.UploadDate == "" {
		doc.UploadDate = s.today()
	}
	doc.Status = DocumentStatusAt(doc.ExpiryDate, s.now())
	s.state.Documents = append(s.state.Documents, doc)
	s.pushToastLocked("Document uploaded successfully", ToastSuccess)
	s.persistLocked()
	return doc.ID
}

func (s *Store) UpdateDocument(id string, patch DocumentPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Documents {
		if s.state.Documents[i].ID == id {
			doc := &s.state.Documents[i]
			if patch.Name != nil {
				doc.Name = *patch.Name
			}
			if patch.Type != nil {
				doc.Type = *patch.Type
			}
			if patch.ExpiryDate != nil {
				doc.ExpiryDate = *patch.ExpiryDate
				doc.Status = DocumentStatusAt(doc.ExpiryDate, s.now())
			}
			s.pushToastLocked("Document updated successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) DeleteDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Documents {
		if s.state.Documents[i].ID == id {
			s.state.Documents = append(s.state.Documents[:i], s.state.Documents[i+1:]...)
			s.pushToastLocked("Document deleted successfully", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}

// RefreshDocumentStatuses re-derives every document's status from its expiry
// date. Statuses are computed at upload time and drift as days pass; the
// background refresher calls this periodically. Returns how many changed.
func (s *Store) RefreshDocumentStatuses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	changed := 0
	for i := range s.state.Documents {
		doc := &s.state.Documents[i]
		if next := DocumentStatusAt(doc.ExpiryDate, now); next != doc.Status {
			doc.Status = next
			changed++
		}
	}
	if changed > 0 {
		s.persistLocked()
	}
	return changed
}

func (s *Store) employeeNameLocked(employeeID string) string {
	for _, emp := range s.state.Employees {
		if emp.ID == employeeID {
			return emp.Name
		}
	}
	return ""
}
