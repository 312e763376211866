package applications

import "time"

// Application is a candidate's submission for a job. It is never updated
// after creation.
type Application struct {
	ID                string    `json:"id"`
	JobID             string    `json:"job_id"`
	Name              string    `json:"name"`
	YearsOfExperience int       `json:"years_of_experience"`
	HasDiploma        bool      `json:"has_diploma"`
	Salary            int       `json:"salary"`
	Email             string    `json:"email"`
	CVURL             string    `json:"cv_url"`
	CreatedAt         time.Time `json:"created_at"`
}
