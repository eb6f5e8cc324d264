package db

import (
	"context"
	"testing"
	"time"

	"Gin_postgres_redis_library_api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func due() time.Time { return time.Now().UTC().Add(14 * 24 * time.Hour) }

func TestCreateLoanTakesOneCopy(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "a@x.com", true)
	b := seedBook(t, r, "isbn-1", 3)

	loan, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: b.ID, DueDate: due()})
	require.NoError(t, err)
	assert.Equal(t, models.LoanActive, loan.Status)
	assert.False(t, loan.LoanDate.IsZero())
	assert.Nil(t, loan.ReturnDate)
	assert.Equal(t, 2, availableCopies(t, r, b.ID))
}

func TestCreateLoanUnknownUserAndBook(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "a@x.com", true)
	b := seedBook(t, r, "isbn-1", 1)

	_, err := r.CreateLoan(ctx, CreateLoanInput{UserID: 999, BookID: b.ID, DueDate: due()})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user", nf.Entity)

	_, err = r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: 999, DueDate: due()})
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "book", nf.Entity)

	// neither failure may touch the counter
	assert.Equal(t, 1, availableCopies(t, r, b.ID))
}

func TestCreateLoanInactiveUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "a@x.com", false)
	b := seedBook(t, r, "isbn-1", 1)

	_, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: b.ID, DueDate: due()})
	require.ErrorIs(t, err, ErrUserInactive)
	assert.Equal(t, 1, availableCopies(t, r, b.ID))
}

func TestCreateLoanExhaustsCopies(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	b := seedBook(t, r, "isbn-1", 2)

	// five requests against two copies: exactly two succeed, in order
	var ok, unavailable int
	for i := 0; i < 5; i++ {
		u := seedUser(t, r, string(rune('a'+i))+"@x.com", true)
		_, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: b.ID, DueDate: due()})
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrBookUnavailable):
			unavailable++
		}
	}
	assert.Equal(t, 2, ok)
	assert.Equal(t, 3, unavailable)
	assert.Equal(t, 0, availableCopies(t, r, b.ID))
}

func TestReturnLoanOnce(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "a@x.com", true)
	b := seedBook(t, r, "isbn-1", 2)
	loan, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: b.ID, DueDate: due()})
	require.NoError(t, err)
	require.Equal(t, 1, availableCopies(t, r, b.ID))

	today := time.Now().UTC()
	got, err := r.UpdateLoan(ctx, loan.ID, LoanUpdate{ReturnDate: timePtr(today)})
	require.NoError(t, err)
	assert.Equal(t, models.LoanReturned, got.Status)
	require.NotNil(t, got.ReturnDate)
	assert.Equal(t, 2, availableCopies(t, r, b.ID))
}

func TestReturnLoanIsIdempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "a@x.com", true)
	b := seedBook(t, r, "isbn-1", 1)
	loan, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: b.ID, DueDate: due()})
	require.NoError(t, err)

	first := time.Now().UTC()
	_, err = r.UpdateLoan(ctx, loan.ID, LoanUpdate{ReturnDate: timePtr(first)})
	require.NoError(t, err)
	require.Equal(t, 1, availableCopies(t, r, b.ID))

	// re-supplying a return date on a returned loan must not increment again
	got, err := r.UpdateLoan(ctx, loan.ID, LoanUpdate{ReturnDate: timePtr(first.Add(time.Hour))})
	require.NoError(t, err)
	assert.Equal(t, models.LoanReturned, got.Status)
	assert.Equal(t, 1, availableCopies(t, r, b.ID))
}

func TestReturnDateRuleOverridesPatchedStatus(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "a@x.com", true)
	b := seedBook(t, r, "isbn-1", 1)
	loan, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: b.ID, DueDate: due()})
	require.NoError(t, err)

	late := models.LoanLate
	got, err := r.UpdateLoan(ctx, loan.ID, LoanUpdate{
		ReturnDate: timePtr(time.Now().UTC()),
		Status:     &late,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LoanReturned, got.Status)
	assert.Equal(t, 1, availableCopies(t, r, b.ID))
}

func TestUpdateLoanPlainFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "a@x.com", true)
	b := seedBook(t, r, "isbn-1", 1)
	loan, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: b.ID, DueDate: due()})
	require.NoError(t, err)

	late := models.LoanLate
	newDue := due().Add(7 * 24 * time.Hour)
	got, err := r.UpdateLoan(ctx, loan.ID, LoanUpdate{
		DueDate: timePtr(newDue),
		Status:  &late,
		Notes:   strPtr("renewed once, then overdue"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.LoanLate, got.Status)
	assert.WithinDuration(t, newDue, got.DueDate, time.Second)
	require.NotNil(t, got.Notes)
	// no return date supplied, so availability stays as it was
	assert.Equal(t, 0, availableCopies(t, r, b.ID))

	_, err = r.UpdateLoan(ctx, 999, LoanUpdate{Notes: strPtr("x")})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDeleteActiveLoanRestoresCopy(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "a@x.com", true)
	b := seedBook(t, r, "isbn-1", 1)
	loan, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: b.ID, DueDate: due()})
	require.NoError(t, err)
	require.Equal(t, 0, availableCopies(t, r, b.ID))

	_, err = r.DeleteLoan(ctx, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, availableCopies(t, r, b.ID))

	_, err = r.FindLoanByID(ctx, loan.ID)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDeleteReturnedLoanLeavesAvailability(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "a@x.com", true)
	b := seedBook(t, r, "isbn-1", 1)
	loan, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: b.ID, DueDate: due()})
	require.NoError(t, err)
	_, err = r.UpdateLoan(ctx, loan.ID, LoanUpdate{ReturnDate: timePtr(time.Now().UTC())})
	require.NoError(t, err)
	require.Equal(t, 1, availableCopies(t, r, b.ID))

	_, err = r.DeleteLoan(ctx, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, availableCopies(t, r, b.ID))
}

// The walkthrough from the requirements: two copies, three borrowers, one
// return, one delete.
func TestLoanLifecycleScenario(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u1 := seedUser(t, r, "u1@x.com", true)
	u2 := seedUser(t, r, "u2@x.com", true)
	u3 := seedUser(t, r, "u3@x.com", true)
	b := seedBook(t, r, "isbn-1", 2)

	loan1, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u1.ID, BookID: b.ID, DueDate: due()})
	require.NoError(t, err)
	assert.Equal(t, 1, availableCopies(t, r, b.ID))

	loan2, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u2.ID, BookID: b.ID, DueDate: due()})
	require.NoError(t, err)
	assert.Equal(t, 0, availableCopies(t, r, b.ID))

	_, err = r.CreateLoan(ctx, CreateLoanInput{UserID: u3.ID, BookID: b.ID, DueDate: due()})
	require.ErrorIs(t, err, ErrBookUnavailable)

	got1, err := r.UpdateLoan(ctx, loan1.ID, LoanUpdate{ReturnDate: timePtr(time.Now().UTC())})
	require.NoError(t, err)
	assert.Equal(t, models.LoanReturned, got1.Status)
	assert.Equal(t, 1, availableCopies(t, r, b.ID))

	_, err = r.DeleteLoan(ctx, loan2.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, availableCopies(t, r, b.ID))
}

func TestSearchLoans(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u1 := seedUser(t, r, "u1@x.com", true)
	u2 := seedUser(t, r, "u2@x.com", true)
	b1 := seedBook(t, r, "isbn-1", 5)
	b2 := seedBook(t, r, "isbn-2", 5)

	l1, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u1.ID, BookID: b1.ID, DueDate: due()})
	require.NoError(t, err)
	l2, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u2.ID, BookID: b1.ID, DueDate: due()})
	require.NoError(t, err)
	l3, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u1.ID, BookID: b2.ID, DueDate: due()})
	require.NoError(t, err)
	_, err = r.UpdateLoan(ctx, l3.ID, LoanUpdate{ReturnDate: timePtr(time.Now().UTC())})
	require.NoError(t, err)

	byUser, err := r.SearchLoans(ctx, LoanSearchQuery{UserID: &u1.ID})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	active := models.LoanActive
	got, err := r.SearchLoans(ctx, LoanSearchQuery{UserID: &u1.ID, Status: &active})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, l1.ID, got[0].ID)

	byBook, err := r.SearchLoans(ctx, LoanSearchQuery{BookID: &b1.ID})
	require.NoError(t, err)
	assert.Len(t, byBook, 2)
	_ = l2

	// no predicates: everything
	all, err := r.SearchLoans(ctx, LoanSearchQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSearchLoansDateRangeCoversWholeDay(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "u1@x.com", true)
	b := seedBook(t, r, "isbn-1", 1)
	_, err := r.CreateLoan(ctx, CreateLoanInput{UserID: u.ID, BookID: b.ID, DueDate: due()})
	require.NoError(t, err)

	today := time.Now().UTC()
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	got, err := r.SearchLoans(ctx, LoanSearchQuery{DateFrom: &today, DateTo: &today})
	require.NoError(t, err)
	assert.Len(t, got, 1, "bounds are inclusive over the loan day")

	got, err = r.SearchLoans(ctx, LoanSearchQuery{DateTo: &yesterday})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.SearchLoans(ctx, LoanSearchQuery{DateFrom: &tomorrow})
	require.NoError(t, err)
	assert.Empty(t, got)
}
