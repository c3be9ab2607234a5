package store

import "time"

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

type Employee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Status      string `json:"status"`
	JoinDate    string `json:"joinDate"`
	Avatar      string `json:"avatar,omitempty"`
}

type Document struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	UploadDate   string `json:"uploadDate"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
	Status       string `json:"status"`
	FileSize     string `json:"fileSize,omitempty"`
}

type Asset struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	SerialNumber string  `json:"serialNumber"`
	AssignedTo   string  `json:"assignedTo,omitempty"`
	AssignedName string  `json:"assignedName,omitempty"`
	Status       string  `json:"status"`
	PurchaseDate string  `json:"purchaseDate"`
	Value        float64 `json:"value"`
}

type Goal struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Owner       string   `json:"owner"`
	OwnerID     string   `json:"ownerId"`
	DueDate     string   `json:"dueDate"`
	Progress    int      `json:"progress"`
	Status      string   `json:"status"`
	KeyResults  []string `json:"keyResults"`
}

type Candidate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Position    string  `json:"position"`
	Stage       string  `json:"stage"`
	Rating      float64 `json:"rating,omitempty"`
	Source      string  `json:"source,omitempty"`
	AppliedDate string  `json:"appliedDate"`
	Experience  string  `json:"experience,omitempty"`
	ResumeURL   string  `json:"resumeUrl,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type Interview struct {
	ID              string `json:"id"`
	CandidateID     string `json:"candidateId"`
	CandidateName   string `json:"candidateName"`
	Position        string `json:"position"`
	InterviewerID   string `json:"interviewerId"`
	InterviewerName string `json:"interviewerName"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Type            string `json:"type"`
	MeetingLink     string `json:"meetingLink,omitempty"`
	Status          string `json:"status"`
	Duration        int    `json:"duration,omitempty"`
}

type LeaveRequest struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Type         string  `json:"type"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Days         float64 `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
}

type Expense struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
	Description  string  `json:"description,omitempty"`
	ReceiptURL   string  `json:"receiptUrl,omitempty"`
	Status       string  `json:"status"`
}

type Course struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Level       string  `json:"level"`
	Lessons     int     `json:"lessons"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Enrolled    bool    `json:"enrolled"`
	Progress    int     `json:"progress"`
}

type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type Post struct {
	ID               string    `json:"id"`
	AuthorID         string    `json:"authorId"`
	AuthorName       string    `json:"authorName"`
	AuthorRole       string    `json:"authorRole"`
	Content          string    `json:"content"`
	Type             string    `json:"type"`
	Likes            []string  `json:"likes"`
	Comments         []Comment `json:"comments"`
	CreatedAt        time.Time `json:"createdAt"`
	IsRecognition    bool      `json:"isRecognition"`
	RecognizedPerson string    `json:"recognizedPerson,omitempty"`
}

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Toast is a short-lived UI notice. Toasts are never persisted.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
}
