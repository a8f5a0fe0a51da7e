package models

import "time"

// Task is a single to-do item owned by exactly one user.
//
// Ownership is fixed at creation time: UserID is set from the authenticated
// identity and never changes afterwards. Every read, update, and delete of a
// task is scoped by UserID at the persistence layer, so a task is invisible
// to everyone but its owner.
type Task struct {
	// ID is the store-assigned unique identifier of the task.
	ID int64 `json:"id"`

	// UserID references the owning user. Immutable after creation and
	// never exposed via JSON — the API only ever returns the caller's
	// own tasks.
	UserID int64 `json:"-"`

	// Title is the required short summary of the task.
	Title string `json:"title"`

	// Description is an optional free-form elaboration. Defaults to empty.
	Description string `json:"description"`

	// Completed marks the task as done. Toggled via the update endpoint.
	Completed bool `json:"completed"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskUpdate carries the fields of a task that the update endpoint may
// change. Nil fields are left untouched, so a client can toggle Completed
// without resending the title. The task identity and owner come from the
// URL and the verified token respectively, never from the body.
type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
