package store

import "time"

// SeedDemo installs the demo dataset. Used on first start, when no snapshot
// exists yet. Counters are set past the highest seeded id of each family.
func (s *Store) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.state = Snapshot{
		SidebarOpen:   true,
		Employees:     seedEmployees(),
		Documents:     seedDocuments(),
		Assets:        seedAssets(),
		Goals:         seedGoals(),
		Candidates:    seedCandidates(),
		Interviews:    seedInterviews(),
		LeaveRequests: seedLeaveRequests(),
		Expenses:      seedExpenses(),
		Courses:       seedCourses(),
		Posts:         seedPosts(now),
		Notifications: seedNotifications(now),
		Counters: map[string]int{
			prefixEmployee:     10,
			prefixDocument:     5,
			prefixAsset:        5,
			prefixGoal:         4,
			prefixCandidate:    5,
			prefixInterview:    3,
			prefixLeave:        3,
			prefixExpense:      3,
			prefixCourse:       4,
			prefixPost:         3,
			prefixComment:      1,
			prefixNotification: 4,
		},
	}
	s.persistLocked()
}

func seedEmployees() []Employee {
	return []Employee{
		{ID: "EMP-1001", Name: "John Smith", Email: "john.smith@company.com", Phone: "+1 555-0123", Department: "Engineering", Designation: "Senior Software Engineer", Status: EmployeeActive, JoinDate: "2023-01-15"},
		{ID: "EMP-1002", Name: "Sarah Wilson", Email: "sarah.wilson@company.com", Phone: "+1 555-0456", Department: "Sales", Designation: "Sales Manager", Status: EmployeeActive, JoinDate: "2022-03-20"},
		{ID: "EMP-1003", Name: "Michael Chen", Email: "michael.chen@company.com", Phone: "+1 555-0789", Department: "Engineering", Designation: "Tech Lead", Status: EmployeeActive, JoinDate: "2021-08-10"},
		{ID: "EMP-1004", Name: "Emily Davis", Email: "emily.davis@company.com", Phone: "+1 555-0321", Department: "HR", Designation: "HR Manager", Status: EmployeeActive, JoinDate: "2022-06-01"},
		{ID: "EMP-1005", Name: "James Brown", Email: "james.brown@company.com", Phone: "+1 555-0654", Department: "Marketing", Designation: "Marketing Specialist", Status: EmployeeProbation, JoinDate: "2024-01-05"},
		{ID: "EMP-1006", Name: "Maria Garcia", Email: "maria.garcia@company.com", Phone: "+1 555-0987", Department: "Finance", Designation: "Financial Analyst", Status: EmployeeActive, JoinDate: "2023-04-12"},
		{ID: "EMP-1007", Name: "David Lee", Email: "david.lee@company.com", Phone: "+1 555-1234", Department: "Engineering", Designation: "DevOps Engineer", Status: EmployeeActive, JoinDate: "2023-07-22"},
		{ID: "EMP-1008", Name: "Jennifer Taylor", Email: "jennifer.taylor@company.com", Phone: "+1 555-5678", Department: "Design", Designation: "UI/UX Designer", Status: EmployeeOnLeave, JoinDate: "2022-11-30"},
		{ID: "EMP-1009", Name: "Robert Johnson", Email: "robert.johnson@company.com", Phone: "+1 555-9012", Department: "Engineering", Designation: "Backend Developer", Status: EmployeeActive, JoinDate: "2023-02-18"},
		{ID: "EMP-1010", Name: "Lisa Anderson", Email: "lisa.anderson@company.com", Phone: "+1 555-3456", Department: "Support", Designation: "Customer Support Lead", Status: EmployeeInactive, JoinDate: "2021-05-10"},
	}
}

func seedDocuments() []Document {
	return []Document{
		{ID: "DOC-001", Name: "Employment Contract", Type: "Contract", EmployeeID: "EMP-1001", EmployeeName: "John Smith", UploadDate: "2023-01-15", ExpiryDate: "2025-01-15", Status: DocumentActive, FileSize: "245 KB"},
		{ID: "DOC-002", Name: "Work Visa", Type: "Visa", EmployeeID: "EMP-1003", EmployeeName: "Michael Chen", UploadDate: "2024-02-01", ExpiryDate: "2024-12-31", Status: DocumentExpiring, FileSize: "1.2 MB"},
		{ID: "DOC-003", Name: "ID Proof", Type: "ID Proof", EmployeeID: "EMP-1002", EmployeeName: "Sarah Wilson", UploadDate: "2022-03-20", ExpiryDate: "2027-03-20", Status: DocumentActive, FileSize: "520 KB"},
		{ID: "DOC-004", Name: "AWS Certification", Type: "Certification", EmployeeID: "EMP-1007", EmployeeName: "David Lee", UploadDate: "2023-08-15", ExpiryDate: "2024-08-15", Status: DocumentExpired, FileSize: "180 KB"},
		{ID: "DOC-005", Name: "NDA Agreement", Type: "Policy", EmployeeID: "EMP-1001", EmployeeName: "John Smith", UploadDate: "2023-01-15", Status: DocumentActive, FileSize: "95 KB"},
	}
}

func seedAssets() []Asset {
	return []Asset{
		{ID: "AST-001", Name: "MacBook Pro 14\"", Type: "Laptop", SerialNumber: "MBP-2023-001", AssignedTo: "EMP-1001", AssignedName: "John Smith", Status: AssetAssigned, PurchaseDate: "2023-01-10", Value: 2499},
		{ID: "AST-002", Name: "iPhone 15 Pro", Type: "Phone", SerialNumber: "IPH-2024-001", Status: AssetAvailable, PurchaseDate: "2024-01-05", Value: 1199},
		{ID: "AST-003", Name: "Dell UltraSharp 27\"", Type: "Monitor", SerialNumber: "DEL-MON-001", AssignedTo: "EMP-1003", AssignedName: "Michael Chen", Status: AssetAssigned, PurchaseDate: "2022-06-15", Value: 649},
		{ID: "AST-004", Name: "Apple Magic Keyboard", Type: "Keyboard", SerialNumber: "AMK-2023-001", AssignedTo: "EMP-1001", AssignedName: "John Smith", Status: AssetAssigned, PurchaseDate: "2023-01-10", Value: 299},
		{ID: "AST-005", Name: "ThinkPad X1 Carbon", Type: "Laptop", SerialNumber: "TPX-2023-001", Status: AssetMaintenance, PurchaseDate: "2023-03-20", Value: 1899},
	}
}

func seedGoals() []Goal {
	return []Goal{
		{ID: "GOAL-001", Title: "Increase Sales Revenue by 20%", Description: "Achieve 20% increase in quarterly sales revenue", Category: "Team", Owner: "Sarah Wilson", OwnerID: "EMP-1002", DueDate: "2024-12-31", Progress: 72, Status: GoalInProgress, KeyResults: []string{"Close 50 new deals", "Increase average deal size by 15%", "Reduce sales cycle by 10 days"}},
		{ID: "GOAL-002", Title: "Launch New Product Feature", Description: "Develop and launch the analytics dashboard feature", Category: "Individual", Owner: "John Smith", OwnerID: "EMP-1001", DueDate: "2024-06-30", Progress: 100, Status: GoalCompleted, KeyResults: []string{"Design UI mockups", "Implement API endpoints", "Complete QA testing"}},
		{ID: "GOAL-003", Title: "Improve Customer Satisfaction", Description: "Increase NPS score from 35 to 50", Category: "Company OKR", Owner: "Emily Davis", OwnerID: "EMP-1004", DueDate: "2024-12-31", Progress: 45, Status: GoalInProgress, KeyResults: []string{"Reduce response time to < 2 hours", "Implement feedback system", "Train support team"}},
		{ID: "GOAL-004", Title: "Complete AWS Certification", Description: "Obtain AWS Solutions Architect certification", Category: "Individual", Owner: "David Lee", OwnerID: "EMP-1007", DueDate: "2024-03-31", Progress: 20, Status: GoalOverdue, KeyResults: []string{"Complete online course", "Pass practice exams", "Schedule and pass exam"}},
	}
}

func seedCandidates() []Candidate {
	return []Candidate{
		{ID: "CAN-001", Name: "Alex Johnson", Email: "alex.j@email.com", Phone: "+1 555-1111", Position: "Senior Frontend Developer", Stage: StageInterview, Rating: 4.5, Source: "LinkedIn", AppliedDate: "2024-01-10", Notes: "Strong React experience"},
		{ID: "CAN-002", Name: "Emma Williams", Email: "emma.w@email.com", Phone: "+1 555-2222", Position: "Product Designer", Stage: StageOffer, Rating: 4.8, Source: "Referral", AppliedDate: "2024-01-05", Notes: "Excellent portfolio"},
		{ID: "CAN-003", Name: "Ryan Miller", Email: "ryan.m@email.com", Phone: "+1 555-3333", Position: "DevOps Engineer", Stage: StageScreening, Rating: 4.2, Source: "Website", AppliedDate: "2024-01-15", Notes: "AWS certified"},
		{ID: "CAN-004", Name: "Sophie Brown", Email: "sophie.b@email.com", Phone: "+1 555-4444", Position: "Marketing Manager", Stage: StageApplied, Rating: 4.0, Source: "Indeed", AppliedDate: "2024-01-18", Notes: "B2B experience"},
		{ID: "CAN-005", Name: "Chris Taylor", Email: "chris.t@email.com", Phone: "+1 555-5555", Position: "Senior Frontend Developer", Stage: StageApplied, Rating: 3.8, Source: "LinkedIn", AppliedDate: "2024-01-20", Notes: "Vue.js background"},
	}
}

func seedInterviews() []Interview {
	return []Interview{
		{ID: "INT-001", CandidateID: "CAN-001", CandidateName: "Alex Johnson", Position: "Senior Frontend Developer", InterviewerID: "EMP-1003", InterviewerName: "Michael Chen", Date: "2024-01-24", Time: "14:00", Type: "Video", MeetingLink: "https://meet.google.com/abc-defg-hij", Status: InterviewScheduled, Duration: 60},
		{ID: "INT-002", CandidateID: "CAN-002", CandidateName: "Emma Williams", Position: "Product Designer", InterviewerID: "EMP-1008", InterviewerName: "Jennifer Taylor", Date: "2024-01-25", Time: "10:00", Type: "On-site", Status: InterviewScheduled, Duration: 90},
		{ID: "INT-003", CandidateID: "CAN-003", CandidateName: "Ryan Miller", Position: "DevOps Engineer", InterviewerID: "EMP-1007", InterviewerName: "David Lee", Date: "2024-01-23", Time: "15:30", Type: "Phone", Status: InterviewCompleted, Duration: 45},
	}
}

func seedLeaveRequests() []LeaveRequest {
	return []LeaveRequest{
		{ID: "LV-001", EmployeeID: "EMP-1001", EmployeeName: "John Smith", Type: "Annual", StartDate: "2024-01-25", EndDate: "2024-01-30", Days: 5, Reason: "Family vacation", Status: StatusPending},
		{ID: "LV-002", EmployeeID: "EMP-1002", EmployeeName: "Sarah Wilson", Type: "Sick", StartDate: "2024-01-22", EndDate: "2024-01-23", Days: 2, Reason: "Medical appointment", Status: StatusApproved},
		{ID: "LV-003", EmployeeID: "EMP-1007", EmployeeName: "David Lee", Type: "Personal", StartDate: "2024-02-01", EndDate: "2024-02-01", Days: 1, Reason: "Personal errands", Status: StatusPending},
	}
}

func seedExpenses() []Expense {
	return []Expense{
		{ID: "EXP-001", EmployeeID: "EMP-1002", EmployeeName: "Sarah Wilson", Title: "Client dinner", Category: "Meals", Amount: 125, Date: "2024-01-15", Description: "Client dinner meeting", Status: StatusPending},
		{ID: "EXP-002", EmployeeID: "EMP-1001", EmployeeName: "John Smith", Title: "Conference travel", Category: "Travel", Amount: 450, Date: "2024-01-10", Description: "Conference travel expenses", Status: StatusApproved},
		{ID: "EXP-003", EmployeeID: "EMP-1007", EmployeeName: "David Lee", Title: "USB-C hub", Category: "Equipment", Amount: 89, Date: "2024-01-18", Description: "USB-C hub for home office", Status: StatusRejected},
	}
}

func seedCourses() []Course {
	return []Course{
		{ID: "CRS-001", Title: "Effective Leadership", Description: "Learn leadership skills for modern managers", Category: "Leadership", Level: "Intermediate", Lessons: 8, Duration: "3 hours", Rating: 4.5, Reviews: 125, Enrolled: true, Progress: 60},
		{ID: "CRS-002", Title: "React Advanced Patterns", Description: "Master advanced React patterns and best practices", Category: "Technical", Level: "Advanced", Lessons: 12, Duration: "5 hours", Rating: 4.8, Reviews: 89, Enrolled: true, Progress: 100},
		{ID: "CRS-003", Title: "Communication Skills", Description: "Improve your professional communication", Category: "Soft Skills", Level: "Beginner", Lessons: 6, Duration: "2 hours", Rating: 4.3, Reviews: 210},
		{ID: "CRS-004", Title: "Project Management Fundamentals", Description: "Essential project management skills", Category: "Management", Level: "Intermediate", Lessons: 10, Duration: "4 hours", Rating: 4.6, Reviews: 156},
	}
}

func seedPosts(now time.Time) []Post {
	return []Post{
		{
			ID:         "POST-001",
			AuthorID:   "EMP-1003",
			AuthorName: "Michael Chen",
			AuthorRole: "Tech Lead",
			Content:    "Excited to announce that our team just shipped the new dashboard feature! Great work everyone!",
			Type:       PostTypeText,
			Likes:      []string{"EMP-1001", "EMP-1002"},
			Comments: []Comment{
				{ID: "CMT-1", Author: "John Smith", Content: "Awesome work team!", Timestamp: now.Add(-47 * time.Hour)},
			},
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:               "POST-002",
			AuthorID:         "EMP-1004",
			AuthorName:       "Emily Davis",
			AuthorRole:       "HR Manager",
			Content:          "Kudos to Sarah Wilson for closing the biggest deal this quarter! Your dedication is truly inspiring.",
			Type:             PostTypeRecognition,
			Likes:            []string{"EMP-1003", "EMP-1001", "EMP-1002"},
			Comments:         []Comment{},
			CreatedAt:        now.Add(-3 * 24 * time.Hour),
			IsRecognition:    true,
			RecognizedPerson: "Sarah Wilson",
		},
		{
			ID:         "POST-003",
			AuthorID:   "EMP-1001",
			AuthorName: "John Smith",
			AuthorRole: "Senior Software Engineer",
			Content:    "Just completed the AWS Solutions Architect course. Learning never stops!",
			Type:       PostTypeText,
			Likes:      []string{"EMP-1004"},
			Comments:   []Comment{},
			CreatedAt:  now.Add(-4 * 24 * time.Hour),
		},
	}
}

func seedNotifications(now time.Time) []Notification {
	return []Notification{
		{ID: "NOT-001", Type: "leave", Title: "Leave Request", Message: "John Smith requested 5 days annual leave", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "NOT-002", Type: "review", Title: "Performance Review", Message: "Q4 performance reviews are due next week", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "NOT-003", Type: "interview", Title: "Interview Scheduled", Message: "Interview with Alex Johnson at 2:00 PM today", Read: true, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "NOT-004", Type: "goal", Title: "Goal Completed", Message: "Sarah Wilson completed \"Launch New Product Feature\"", Read: true, CreatedAt: now.Add(-2 * 24 * time.Hour)},
	}
}
