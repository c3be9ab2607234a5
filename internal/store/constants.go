package store

const (
	EmployeeActive    = "Active"
	EmployeeInactive  = "Inactive"
	EmployeeProbation = "Probation"
	EmployeeOnLeave   = "On Leave"
)

var EmployeeStatuses = []string{EmployeeActive, EmployeeInactive, EmployeeProbation, EmployeeOnLeave}

var Departments = []string{
	"Engineering", "Sales", "Marketing", "HR", "Finance",
	"Design", "Support", "Operations", "Legal", "Product",
}

// PendingAssignment is the placeholder department given to freshly hired
// candidates until HR assigns a real one.
const PendingAssignment = "Pending Assignment"

const (
	DocumentActive   = "Active"
	DocumentExpiring = "Expiring"
	DocumentExpired  = "Expired"
)

var DocumentTypes = []string{"Contract", "ID Proof", "Visa", "Certification", "Policy", "Other"}

const (
	AssetAvailable   = "Available"
	AssetAssigned    = "Assigned"
	AssetMaintenance = "Maintenance"
	AssetRetired     = "Retired"
)

var AssetStatuses = []string{AssetAvailable, AssetAssigned, AssetMaintenance, AssetRetired}

var AssetTypes = []string{"Laptop", "Phone", "Monitor", "Keyboard", "Mouse", "Headset", "Other"}

const (
	GoalInProgress = "In Progress"
	GoalCompleted  = "Completed"
	GoalOverdue    = "Overdue"
)

var GoalCategories = []string{"Individual", "Team", "Company OKR"}

const (
	StageApplied   = "Applied"
	StageScreening = "Screening"
	StageInterview = "Interview"
	StageOffer     = "Offer"
	StageHired     = "Hired"
	StageRejected  = "Rejected"
)

// CandidateStages is the forward path of the recruiting pipeline. Rejected
// sits outside the path; candidates move there sideways from any stage.
var CandidateStages = []string{StageApplied, StageScreening, StageInterview, StageOffer, StageHired}

var CandidateSources = []string{"LinkedIn", "Website", "Referral", "Indeed", "Glassdoor", "Agency", "Other"}

const (
	InterviewScheduled = "Scheduled"
	InterviewCompleted = "Completed"
	InterviewCancelled = "Cancelled"
)

var InterviewTypes = []string{"Phone", "Video", "On-site"}

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

var LeaveTypes = []string{"Annual", "Sick", "Personal", "Maternity", "Paternity", "Unpaid"}

var ExpenseCategories = []string{"Travel", "Meals", "Equipment", "Office Supplies", "Software", "Training", "Other"}

var CourseLevels = []string{"Beginner", "Intermediate", "Advanced"}

var CourseCategories = []string{"Technical", "Leadership", "Soft Skills", "Management", "Compliance", "Product"}

const (
	PostTypeText        = "text"
	PostTypeRecognition = "recognition"
)

const (
	ToastSuccess = "success"
	ToastWarning = "warning"
	ToastInfo    = "info"
)
