package model

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type failingDriver struct{ err error }

func (d failingDriver) Open(string) (driver.Conn, error) { return nil, d.err }

// failingConnector refuses every connection, standing in for an
// unreachable database.
type failingConnector struct{ err error }

func (c failingConnector) Connect(context.Context) (driver.Conn, error) { return nil, c.err }
func (c failingConnector) Driver() driver.Driver                        { return failingDriver{c.err} }

func unreachableDB(t *testing.T, cause error) *gorm.DB {
	t.Helper()

	conn := sql.OpenDB(failingConnector{err: cause})
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open gorm over failing connector: %v", err)
	}
	return db
}

func TestListJobPostingsRejectsUnknownSort(t *testing.T) {
	for _, col := range []string{"no_such_column", "id; DROP TABLE data_jobs"} {
		rows, total, err := ListJobPostings((&Filter{}).Predicate(), col, 0, 25)
		if err == nil {
			t.Errorf("sort by %q: want error, got %d rows, total %d", col, len(rows), total)
		}
	}
}

func TestListJobPostingsSurfacesQueryError(t *testing.T) {
	orig := DB
	defer func() { DB = orig }()

	cause := errors.New("connection refused")
	DB = unreachableDB(t, cause)

	rows, total, err := ListJobPostings((&Filter{Schedule: "Full-time"}).Predicate(), "job_posted_date", 0, 25)
	if err == nil {
		t.Fatalf("want query error, got %d rows, total %d", len(rows), total)
	}
	if rows != nil {
		t.Errorf("failed query must not return rows, got %d", len(rows))
	}
}
