package models

import "time"

const (
	BookTable         = "books"
	BookAuthorTable   = "book_authors"
	BookCategoryTable = "book_categories"
)

// Book owns the two many-to-many link sets. Invariant kept by the loan
// lifecycle: 0 <= available_copies <= total_copies.
type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:200;not null" json:"title"`
	ISBN            string    `gorm:"size:20;uniqueIndex;not null" json:"isbn"`
	PublicationYear int       `gorm:"not null" json:"publication_year"`
	Publisher       string    `gorm:"size:100;not null" json:"publisher"`
	PageCount       int       `gorm:"not null" json:"page_count"`
	TotalCopies     int       `gorm:"not null;default:1" json:"total_copies"`
	AvailableCopies int       `gorm:"not null;default:1" json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`

	Authors    []Author   `gorm:"many2many:book_authors" json:"authors,omitempty"`
	Categories []Category `gorm:"many2many:book_categories" json:"categories,omitempty"`
}

func (Book) TableName() string { return BookTable }
