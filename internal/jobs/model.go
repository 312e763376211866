package jobs

import "time"

// Job is a posted position.
type Job struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	WorkspaceType string    `json:"workspace_type"`
	Location      string    `json:"location"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
}
