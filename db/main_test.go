package db

import (
	"context"
	"testing"
	"time"

	"Gin_postgres_redis_library_api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepo opens an in-memory sqlite database. The pool is capped at one
// connection so every session sees the same :memory: database.
func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(gdb))
	return NewRepo(gdb)
}

func seedUser(t *testing.T, r *Repo, email string, active bool) *models.User {
	t.Helper()
	u := &models.User{Name: "Reader " + email, Email: email, Active: active}
	require.NoError(t, r.CreateUser(context.Background(), u))
	if !active {
		// CreateUser writes Active verbatim; make sure the row agrees
		require.NoError(t, r.DB.Model(u).Update("active", false).Error)
	}
	return u
}

func seedBook(t *testing.T, r *Repo, isbn string, copies int) *models.Book {
	t.Helper()
	b := &models.Book{
		Title:           "Book " + isbn,
		ISBN:            isbn,
		PublicationYear: 2001,
		Publisher:       "Test House",
		PageCount:       321,
		TotalCopies:     copies,
	}
	require.NoError(t, r.CreateBook(context.Background(), b, nil, nil))
	return b
}

func seedAuthor(t *testing.T, r *Repo, first, last string) *models.Author {
	t.Helper()
	a := &models.Author{
		FirstName:   first,
		LastName:    last,
		BirthDate:   time.Date(1950, 3, 1, 0, 0, 0, 0, time.UTC),
		Nationality: "Brazilian",
	}
	require.NoError(t, r.CreateAuthor(context.Background(), a))
	return a
}

func availableCopies(t *testing.T, r *Repo, bookID uint) int {
	t.Helper()
	b, err := r.FindBookByID(context.Background(), bookID)
	require.NoError(t, err)
	return b.AvailableCopies
}

func strPtr(s string) *string         { return &s }
func boolPtr(b bool) *bool            { return &b }
func timePtr(ts time.Time) *time.Time { return &ts }
