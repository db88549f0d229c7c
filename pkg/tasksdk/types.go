package tasksdk

import "time"

// ============================================================================
// Envelope
// ============================================================================

// Response is the envelope every JSON endpoint answers with.
type Response[T any] struct {
	// Status is "success", "fail" (4xx) or "error" (5xx)
	Status string `json:"status"`

	// Results is the number of items in Data, only set on list endpoints
	Results *int `json:"results,omitempty"`

	Data T `json:"data"`

	// Message explains a failure
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the envelope of a failed request.
type ErrorResponse struct {
	Status  string `json:"status" example:"fail"`
	Message string `json:"message" example:"There is no document with that ID"`
}

// ============================================================================
// Users and sessions
// ============================================================================

type User struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	ProfilePhoto      string     `json:"profilePhoto"`
	PasswordChangedAt *time.Time `json:"passwordChangedAt,omitempty"`
	Tasks             []string   `json:"tasks"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// SessionResponse is returned by every endpoint that issues a token. The same
// token is also set as the "token" cookie.
type SessionResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type SignUpRequest struct {
	Name            string `json:"name" example:"Alice"`
	Email           string `json:"email" example:"alice@example.com"`
	Password        string `json:"password" example:"password123"`
	PasswordConfirm string `json:"passwordConfirm" example:"password123"`
	ProfilePhoto    string `json:"profilePhoto,omitempty"`
}

// CreateUserRequest is accepted by POST /api/v1/users and /api/v1/admins.
type CreateUserRequest = SignUpRequest

type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"password123"`
}

type UpdatePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// UpdateUserRequest patches a user. Omitted fields are left alone.
type UpdateUserRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	ProfilePhoto *string `json:"profilePhoto,omitempty"`
}

// ============================================================================
// Tasks
// ============================================================================

type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Priority     int       `json:"priority"`
	TaskStatus   bool      `json:"taskStatus"`
	TimeToFinish float64   `json:"timeToFinish"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateTaskRequest creates a task. Owner is only read by the admin endpoint;
// tasks created under /tasks/me always belong to the caller.
type CreateTaskRequest struct {
	Title      string     `json:"title" example:"Write report"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Priority   *int       `json:"priority,omitempty" example:"3"`
	TaskStatus *bool      `json:"taskStatus,omitempty"`
	Owner      string     `json:"owner,omitempty"`
}

// UpdateTaskRequest patches a task. timeToFinish is always derived by the
// server and cannot be set.
type UpdateTaskRequest struct {
	Title      *string    `json:"title,omitempty"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Priority   *int       `json:"priority,omitempty"`
	TaskStatus *bool      `json:"taskStatus,omitempty"`
	Owner      *string    `json:"owner,omitempty"`
}

type DeleteSelectedRequest struct {
	IDs []string `json:"ids"`
}

type DeleteSelectedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ListTasksOptions are the query parameters of GET /api/v1/tasks/me.
type ListTasksOptions struct {
	// Sort is one of startTimeAsc, startTimeDesc, endTimeAsc, endTimeDesc.
	// Empty sorts newest first.
	Sort     string
	Priority *int
	Status   *bool
}

// ============================================================================
// Dashboard
// ============================================================================

// DashboardSummary carries its hour figures as two-decimal strings.
type DashboardSummary struct {
	TotalTasks            int    `json:"totalTasks"`
	TasksCompleted        int    `json:"tasksCompleted"`
	TasksPending          int    `json:"tasksPending"`
	AverageCompletionTime string `json:"averageCompletionTime" example:"N/A"`
	TotalTimeLapsed       string `json:"totalTimeLapsed" example:"0.00"`
}

type PriorityRow struct {
	Priority     int     `json:"priority"`
	PendingTasks int     `json:"pendingTasks"`
	TimeLapsed   float64 `json:"timeLapsed"`
	TimeToFinish float64 `json:"timeToFinish"`
}

type Dashboard struct {
	Summary           DashboardSummary `json:"summary"`
	TableSummary      []PriorityRow    `json:"tableSummary"`
	TotalPendingTasks int              `json:"totalPendingTasks"`
	TotalTimeToFinish string           `json:"totalTimeToFinish" example:"0.00"`
}

// ============================================================================
// Bootstrap
// ============================================================================

type BootstrapRequest struct {
	AdminName     string `json:"admin_name" example:"Administrator"`
	AdminEmail    string `json:"admin_email" example:"admin@example.com"`
	AdminPassword string `json:"admin_password" example:"change-me-please"`
}

type BootstrapResponse struct {
	AdminUserID string `json:"admin_user_id"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
