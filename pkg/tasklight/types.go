package tasklight

import "time"

// Task represents a single task on the Tasklight server. The client never
// interprets these fields; they are relayed to and from the API as-is.
type Task struct {
	ID          int64      `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Done        bool       `json:"done,omitempty"`
	DoneAt      *time.Time `json:"done_at,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    int        `json:"priority,omitempty"`
	ProjectID   int64      `json:"project_id,omitempty"`
	Labels      []Label    `json:"labels,omitempty"`
	Assignees   []User     `json:"assignees,omitempty"`
	Created     time.Time  `json:"created,omitempty"`
	Updated     time.Time  `json:"updated,omitempty"`
}

// User represents a user account on the server.
type User struct {
	ID       int64     `json:"id,omitempty"`
	Username string    `json:"username,omitempty"`
	Name     string    `json:"name,omitempty"`
	Email    string    `json:"email,omitempty"`
	Created  time.Time `json:"created,omitempty"`
	Updated  time.Time `json:"updated,omitempty"`
}

// Label represents a label that can be attached to tasks.
type Label struct {
	ID          int64     `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	HexColor    string    `json:"hex_color,omitempty"`
	Created     time.Time `json:"created,omitempty"`
	Updated     time.Time `json:"updated,omitempty"`
}

// TaskAssignment is the server's record of a user assigned to a task.
type TaskAssignment struct {
	TaskID  int64     `json:"task_id,omitempty"`
	UserID  int64     `json:"user_id"`
	Created time.Time `json:"created,omitempty"`
}

// TaskLabel is the server's record of a label attached to a task.
type TaskLabel struct {
	TaskID  int64     `json:"task_id,omitempty"`
	LabelID int64     `json:"label_id"`
	Created time.Time `json:"created,omitempty"`
}

// TaskComment represents a comment on a task.
type TaskComment struct {
	ID      int64     `json:"id,omitempty"`
	Comment string    `json:"comment"`
	Author  User      `json:"author,omitempty"`
	Created time.Time `json:"created,omitempty"`
	Updated time.Time `json:"updated,omitempty"`
}

// RelationKind names the kind of relation between two tasks.
type RelationKind string

const (
	RelationSubtask    RelationKind = "subtask"
	RelationParentTask RelationKind = "parenttask"
	RelationRelated    RelationKind = "related"
	RelationBlocking   RelationKind = "blocking"
	RelationBlocked    RelationKind = "blocked"
	RelationPrecedes   RelationKind = "precedes"
	RelationFollows    RelationKind = "follows"
	RelationDuplicates RelationKind = "duplicates"
)

// TaskRelation links a task to another task with a given kind.
type TaskRelation struct {
	TaskID       int64        `json:"task_id,omitempty"`
	OtherTaskID  int64        `json:"other_task_id"`
	RelationKind RelationKind `json:"relation_kind"`
	Created      time.Time    `json:"created,omitempty"`
}

// AttachmentFile describes the file behind a task attachment.
type AttachmentFile struct {
	ID      int64     `json:"id,omitempty"`
	Name    string    `json:"name,omitempty"`
	Mime    string    `json:"mime,omitempty"`
	Size    int64     `json:"size,omitempty"`
	Created time.Time `json:"created,omitempty"`
}

// TaskAttachment represents a file attached to a task.
type TaskAttachment struct {
	ID      int64          `json:"id,omitempty"`
	TaskID  int64          `json:"task_id,omitempty"`
	File    AttachmentFile `json:"file,omitempty"`
	Created time.Time      `json:"created,omitempty"`
}

// BulkAssignees is the payload for assigning multiple users to one task.
type BulkAssignees struct {
	UserIDs []int64 `json:"user_ids"`
}

// LabelTaskBulk is the payload for replacing a task's label set.
type LabelTaskBulk struct {
	LabelIDs []int64 `json:"label_ids"`
}

// TaskBulkOperation updates one field to one value across a set of tasks.
type TaskBulkOperation struct {
	TaskIDs []int64     `json:"task_ids"`
	Field   string      `json:"field"`
	Value   interface{} `json:"value"`
}

// Message is the server's generic acknowledgement body, returned by
// delete-style endpoints.
type Message struct {
	Message string `json:"message"`
}

// addAssigneeRequest is the JSON request body for assigning a single user.
type addAssigneeRequest struct {
	UserID int64 `json:"user_id"`
}

// addLabelRequest is the JSON request body for attaching a single label.
type addLabelRequest struct {
	LabelID int64 `json:"label_id"`
}

// errorResponse is the JSON error body the server sends with non-2xx
// statuses.
type errorResponse struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
