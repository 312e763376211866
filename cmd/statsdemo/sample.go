package main

import (
	"fmt"
	"time"

	"jobboard-backend/internal/applications"
)

// sampleApplications is a small applicant pool with a clear
// experience/salary trend.
func sampleApplications() []applications.Application {
	rows := []struct {
		salary  int
		years   int
		diploma bool
	}{
		{1000, 0, false},
		{1500, 1, false},
		{1700, 1, true},
		{1200, 0, false},
		{1150, 0, false},
		{1800, 3, true},
		{1550, 1, false},
		{1750, 2, false},
		{2200, 4, true},
		{2050, 5, true},
		{3000, 5, true},
		{4000, 10, true},
		{3500, 8, true},
		{4500, 10, true},
		{4200, 12, true},
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]applications.Application, len(rows))
	for i, r := range rows {
		out[i] = applications.Application{
			ID:                fmt.Sprintf("app-%02d", i+1),
			JobID:             "demo",
			Name:              fmt.Sprintf("Candidate %d", i+1),
			YearsOfExperience: r.years,
			HasDiploma:        r.diploma,
			Salary:            r.salary,
			Email:             fmt.Sprintf("candidate%d@example.com", i+1),
			CVURL:             fmt.Sprintf("https://example.com/cv/%d.pdf", i+1),
			CreatedAt:         base.Add(time.Duration(i) * time.Minute),
		}
	}
	return out
}
