package models

import "time"

const (
	UserTable    = "users"
	ProfileTable = "user_profiles"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     *string   `gorm:"size:20" json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return UserTable }

// UserProfile is the 1:1 extension of a User; the unique index on UserID is the
// backstop for the one-profile-per-user guard.
type UserProfile struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	PhotoURL          *string   `json:"photo_url,omitempty"`
	Profession        *string   `gorm:"size:100" json:"profession,omitempty"`
	LiteraryInterests *string   `json:"literary_interests,omitempty"`
	FavoriteBooks     *string   `json:"favorite_books,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func (UserProfile) TableName() string { return ProfileTable }
