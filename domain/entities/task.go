package entities

// Defaults applied when a task is created without a status or priority.
// The GSI2 keys are always computed from the resolved values.
const (
	DefaultTaskStatus   = "pending"
	DefaultTaskPriority = "medium"
)

// Task is stored under its parent project partition at
// (PROJECT#{projectId}, TASK#{id}). GSI2PK/GSI2SK project the task onto the
// status/priority index and must be rewritten whenever status or priority
// changes.
type Task struct {
	PK           string  `dynamodbav:"pk" json:"pk"`
	SK           string  `dynamodbav:"sk" json:"sk"`
	ID           string  `dynamodbav:"ID" json:"id"`
	Title        string  `dynamodbav:"Title" json:"title"`
	Description  string  `dynamodbav:"Description" json:"description"`
	Status       string  `dynamodbav:"Status" json:"status"`
	Priority     string  `dynamodbav:"Priority" json:"priority"`
	Deadline     *string `dynamodbav:"Deadline" json:"deadline"`
	AssignedUser string  `dynamodbav:"AssignedUser" json:"assignedUser"`
	CreatedAt    string  `dynamodbav:"CreatedAt" json:"createdAt"`
	GSI2PK       string  `dynamodbav:"gsi2pk" json:"gsi2pk"`
	GSI2SK       string  `dynamodbav:"gsi2sk" json:"gsi2sk"`
}

// TaskRelation links the assigned user to a task at (USER#{assignee}, TASK#{id}).
// It is written alongside the task and never updated independently.
type TaskRelation struct {
	PK        string `dynamodbav:"pk" json:"pk"`
	SK        string `dynamodbav:"sk" json:"sk"`
	ProjectID string `dynamodbav:"projectId" json:"projectId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}
