// Package recordapi defines the backend-agnostic contract for the record service.
package recordapi

// User is a directory entry in the record service.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
}

// Task is a single task record.
type Task struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
