package models

import "time"

const AuthorTable = "authors"

type Author struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"size:100;not null" json:"first_name"`
	LastName    string    `gorm:"size:100;not null" json:"last_name"`
	BirthDate   time.Time `json:"birth_date"`
	Nationality string    `gorm:"size:50;not null" json:"nationality"`
	Biography   *string   `json:"biography,omitempty"`
	CPF         *string   `gorm:"index" json:"cpf,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Author) TableName() string { return AuthorTable }
