package store

// Snapshot is the durable shape of the store: every entity collection, the
// session flags, the sidebar flag, and the id counters. It is serialized to
// local storage after every mutation and restored verbatim on startup. There
// is no schema version field; changing this shape breaks existing snapshots.
type Snapshot struct {
	IsAuthenticated bool           `json:"isAuthenticated"`
	User            *User          `json:"user"`
	Employees       []Employee     `json:"employees"`
	Documents       []Document     `json:"documents"`
	Assets          []Asset        `json:"assets"`
	Goals           []Goal         `json:"goals"`
	Candidates      []Candidate    `json:"candidates"`
	Interviews      []Interview    `json:"interviews"`
	LeaveRequests   []LeaveRequest `json:"leaveRequests"`
	Expenses        []Expense      `json:"expenses"`
	Courses         []Course       `json:"courses"`
	Posts           []Post         `json:"posts"`
	Notifications   []Notification `json:"notifications"`
	SidebarOpen     bool           `json:"sidebarOpen"`
	Counters        map[string]int `json:"counters"`
}

func (snap Snapshot) clone() Snapshot {
	out := snap
	if snap.User != nil {
		user := *snap.User
		out.User = &user
	}
	out.Employees = append([]Employee(nil), snap.Employees...)
	out.Documents = append([]Document(nil), snap.Documents...)
	out.Assets = append([]Asset(nil), snap.Assets...)
	out.Goals = make([]Goal, len(snap.Goals))
	for i, goal := range snap.Goals {
		goal.KeyResults = append([]string(nil), goal.KeyResults...)
		out.Goals[i] = goal
	}
	out.Candidates = append([]Candidate(nil), snap.Candidates...)
	out.Interviews = append([]Interview(nil), snap.Interviews...)
	out.LeaveRequests = append([]LeaveRequest(nil), snap.LeaveRequests...)
	out.Expenses = append([]Expense(nil), snap.Expenses...)
	out.Courses = append([]Course(nil), snap.Courses...)
	out.Posts = make([]Post, len(snap.Posts))
	for i, post := range snap.Posts {
		post.Likes = append([]string(nil), post.Likes...)
		post.Comments = append([]Comment(nil), post.Comments...)
		out.Posts[i] = post
	}
	out.Notifications = append([]Notification(nil), snap.Notifications...)
	out.Counters = make(map[string]int, len(snap.Counters))
	for prefix, n := range snap.Counters {
		out.Counters[prefix] = n
	}
	return out
}
