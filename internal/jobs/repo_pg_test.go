package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var testColumns = []string{"id", "title", "company", "workspace_type", "location", "type", "description", "email", "created_at"}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	job := Job{
		ID:            "job-1",
		Title:         "Backend Engineer",
		Company:       "Acme",
		WorkspaceType: "Remote",
		Location:      "Lisbon",
		Type:          "Full-time",
		Description:   "Build things",
		Email:         "jobs@acme.test",
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO jobs").
		WithArgs(job.ID, job.Title, job.Company, job.WorkspaceType, job.Location, job.Type, job.Description, job.Email, job.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), job); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM jobs WHERE id = \\$1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(testColumns))

	_, err = (&PGRepo{DB: db}).GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(testColumns).
		AddRow("job-2", "B", "Acme", "Hybrid", "Porto", "Contract", "d", "b@acme.test", now).
		AddRow("job-1", "A", "Acme", "Remote", "Lisbon", "Full-time", "d", "a@acme.test", now.Add(-time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM jobs ORDER BY created_at DESC").WillReturnRows(rows)

	got, err := (&PGRepo{DB: db}).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "job-2" || got[1].WorkspaceType != "Remote" {
		t.Fatalf("unexpected jobs: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
