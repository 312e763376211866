package jobs

import "strings"

// CreateJobRequest is the body of POST /jobs.
type CreateJobRequest struct {
	Title         string `json:"title" validate:"required"`
	Company       string `json:"company" validate:"required"`
	WorkspaceType string `json:"workspace_type" validate:"required,oneof=On-site Hybrid Remote"`
	Location      string `json:"location" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=Full-time Part-time Contract Internship Other"`
	Description   string `json:"description" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
}

func (r *CreateJobRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Company = strings.TrimSpace(r.Company)
	r.WorkspaceType = strings.TrimSpace(r.WorkspaceType)
	r.Location = strings.TrimSpace(r.Location)
	r.Type = strings.TrimSpace(r.Type)
	r.Description = strings.TrimSpace(r.Description)
	r.Email = strings.TrimSpace(r.Email)
}

// CreateJobResponse is returned after a job is created.
type CreateJobResponse struct {
	JobID string `json:"job_id"`
}
