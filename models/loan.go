package models

import "time"

const LoanTable = "loans"

// Loan status values. "late" is only ever set explicitly; there is no
// background sweep that flips active loans past their due date.
const (
	LoanActive   = "active"
	LoanReturned = "returned"
	LoanLate     = "late"
)

type Loan struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"index;not null" json:"user_id"`
	BookID     uint       `gorm:"index;not null" json:"book_id"`
	LoanDate   time.Time  `gorm:"index;not null" json:"loan_date"`
	DueDate    time.Time  `gorm:"not null" json:"due_date"`
	ReturnDate *time.Time `gorm:"index" json:"return_date,omitempty"`
	Status     string     `gorm:"size:20;not null;default:'active'" json:"status"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Loan) TableName() string { return LoanTable }
