package domain

import "time"

// TaskState is the lifecycle state of a processing task.
type TaskState string

const (
	StatePending  TaskState = "PENDING"
	StateProgress TaskState = "PROGRESS"
	StateSuccess  TaskState = "SUCCESS"
	StateFailure  TaskState = "FAILURE"
)

// Progress is a point-in-time progress report for a running task.
type Progress struct {
	Phase   string `json:"phase"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
}

// PageResult records the outcome for one page. Every PageUnit yields exactly
// one PageResult; a page that could not be identified is still filed under a
// fallback identity and is not an error.
type PageResult struct {
	PageIndex    int           `json:"page_index"`
	Identity     *IdentityInfo `json:"identity,omitempty"`
	Period       PeriodInfo    `json:"period"`
	FinalPath    string        `json:"final_path"`
	UsedFallback bool          `json:"used_fallback_identity"`
	TextSource   TextSource    `json:"text_source"`
	Error        string        `json:"error,omitempty"`
}

// TaskResult aggregates the outcome of a completed task.
// PerEmployeeCounts only counts pages with a real (non-fallback) identity.
type TaskResult struct {
	TotalPages        int            `json:"total_pages"`
	ProcessedPages    int            `json:"processed_pages"`
	PerEmployeeCounts map[string]int `json:"per_employee_counts"`
	FallbackCount     int            `json:"fallback_count"`
	FileCount         int            `json:"file_count"`
	EmployeeCount     int            `json:"employee_count"`
	OutputDir         string         `json:"output_dir"`
	Pages             []PageResult   `json:"pages"`
	Failures          []PageResult   `json:"failures,omitempty"`
}

// Task is the externally observable state of one processing job.
// Result is only set in StateSuccess and is immutable once set.
type Task struct {
	ID        string
	State     TaskState
	Progress  Progress
	Result    *TaskResult
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
