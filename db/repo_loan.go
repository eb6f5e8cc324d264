package db

import (
	"context"
	"time"

	"Gin_postgres_redis_library_api/models"

	"gorm.io/gorm"
)

type CreateLoanInput struct {
	UserID  uint
	BookID  uint
	DueDate time.Time
	Notes   *string
}

type LoanUpdate struct {
	DueDate    *time.Time `json:"due_date"`
	ReturnDate *time.Time `json:"return_date"`
	Status     *string    `json:"status"`
	Notes      *string    `json:"notes"`
}

type LoanSearchQuery struct {
	UserID   *uint
	BookID   *uint
	Status   *string
	DateFrom *time.Time
	DateTo   *time.Time
}

// CreateLoan inserts the loan and takes one copy in a single transaction. The
// guarded UPDATE is the race check: when two creates contend for the last
// copy, one sees zero rows affected and fails instead of driving the count
// negative.
func (r *Repo) CreateLoan(ctx context.Context, in CreateLoanInput) (*models.Loan, error) {
	var loan *models.Loan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := findByID[models.User](ctx, tx, "user", in.UserID)
		if err != nil {
			return err
		}
		if !user.Active {
			return ErrUserInactive
		}
		if _, err := findByID[models.Book](ctx, tx, "book", in.BookID); err != nil {
			return err
		}

		res := tx.Model(&models.Book{}).
			Where("id = ? AND available_copies > 0", in.BookID).
			Update("available_copies", gorm.Expr("available_copies - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookUnavailable
		}

		l := &models.Loan{
			UserID:   in.UserID,
			BookID:   in.BookID,
			LoanDate: time.Now().UTC(),
			DueDate:  in.DueDate,
			Status:   models.LoanActive,
			Notes:    in.Notes,
		}
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		loan = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

func (r *Repo) FindLoanByID(ctx context.Context, id uint) (*models.Loan, error) {
	return findByID[models.Loan](ctx, r.DB, "loan", id)
}

func (r *Repo) ListLoans(ctx context.Context, page, limit int) (*Page[models.Loan], error) {
	return listPage[models.Loan](ctx, r.DB, page, limit)
}

func (r *Repo) CountLoans(ctx context.Context) (int64, error) {
	return countAll[models.Loan](ctx, r.DB)
}

func restoreAvailability(ctx context.Context, tx *gorm.DB, bookID uint) error {
	return tx.WithContext(ctx).Model(&models.Book{}).
		Where("id = ? AND available_copies < total_copies", bookID).
		Update("available_copies", gorm.Expr("available_copies + 1")).Error
}

// UpdateLoan applies the patch. Supplying a return date while the loan is
// still active is the return transition: the copy goes back on the shelf and
// the status becomes "returned" no matter what the patch says. A loan that
// has already been returned never increments availability again.
func (r *Repo) UpdateLoan(ctx context.Context, id uint, patch LoanUpdate) (*models.Loan, error) {
	var out *models.Loan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := findByID[models.Loan](ctx, tx, "loan", id)
		if err != nil {
			return err
		}
		returning := patch.ReturnDate != nil && l.Status == models.LoanActive

		if patch.DueDate != nil {
			l.DueDate = *patch.DueDate
		}
		if patch.ReturnDate != nil {
			l.ReturnDate = patch.ReturnDate
		}
		if patch.Notes != nil {
			l.Notes = patch.Notes
		}
		if patch.Status != nil {
			l.Status = *patch.Status
		}
		if returning {
			l.Status = models.LoanReturned
			if err := restoreAvailability(ctx, tx, l.BookID); err != nil {
				return err
			}
		}
		if err := tx.Save(l).Error; err != nil {
			return err
		}
		out = l
		return nil
	})
	return out, err
}

// DeleteLoan removes the row; an active loan gives its copy back first, in
// the same transaction, mirroring the return transition.
func (r *Repo) DeleteLoan(ctx context.Context, id uint) (*models.Loan, error) {
	var out *models.Loan
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := findByID[models.Loan](ctx, tx, "loan", id)
		if err != nil {
			return err
		}
		if l.Status == models.LoanActive {
			if err := restoreAvailability(ctx, tx, l.BookID); err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Loan{}, id).Error; err != nil {
			return err
		}
		out = l
		return nil
	})
	return out, err
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// SearchLoans ANDs the supplied predicates; the date range is inclusive over
// the full day span of the loan timestamp.
func (r *Repo) SearchLoans(ctx context.Context, q LoanSearchQuery) ([]models.Loan, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Loan{}).Order("loan_date DESC")
	if q.UserID != nil {
		tx = tx.Where("user_id = ?", *q.UserID)
	}
	if q.BookID != nil {
		tx = tx.Where("book_id = ?", *q.BookID)
	}
	if q.Status != nil {
		tx = tx.Where("status = ?", *q.Status)
	}
	if q.DateFrom != nil {
		tx = tx.Where("loan_date >= ?", startOfDay(*q.DateFrom))
	}
	if q.DateTo != nil {
		tx = tx.Where("loan_date <= ?", endOfDay(*q.DateTo))
	}
	loans := []models.Loan{}
	err := tx.Find(&loans).Error
	return loans, err
}
