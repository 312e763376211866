package applications

import "strings"

// CreateApplicationRequest is the body of POST /jobs/:id/apply. Pointer
// fields distinguish an explicit zero/false from an absent value.
type CreateApplicationRequest struct {
	Name              string `json:"name" validate:"required,min=1"`
	YearsOfExperience *int   `json:"years_of_experience" validate:"required,min=0"`
	HasDiploma        *bool  `json:"has_diploma" validate:"required"`
	Salary            *int   `json:"salary" validate:"required,min=0"`
	Email             string `json:"email" validate:"required,email"`
	CVURL             string `json:"cv_url" validate:"required,url"`
}

func (r *CreateApplicationRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.CVURL = strings.TrimSpace(r.CVURL)
}

// CreateApplicationResponse is returned after an application is stored.
type CreateApplicationResponse struct {
	ApplicationID string `json:"application_id"`
}
