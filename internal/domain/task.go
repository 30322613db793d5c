package domain

import "time"

// Task represents one task record as the remote service stores it. Instances
// are created and mutated exclusively by the remote service; the client only
// ever holds transient copies.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskInput holds the client-editable content fields for create and update
// requests. Status is never part of a content write; it travels through the
// dedicated status-change operation.
type TaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// TaskPage is one server-confirmed slice of the full task collection.
type TaskPage struct {
	Content       []Task `json:"content"`
	TotalElements int    `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	Size          int    `json:"size"`
	Number        int    `json:"number"`
}
