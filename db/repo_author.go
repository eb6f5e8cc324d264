package db

import (
	"context"
	"time"

	"Gin_postgres_redis_library_api/models"

	"gorm.io/gorm"
)

type AuthorUpdate struct {
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	BirthDate   *time.Time `json:"birth_date"`
	Nationality *string    `json:"nationality"`
	Biography   *string    `json:"biography"`
	CPF         *string    `json:"cpf"`
}

func (r *Repo) CreateAuthor(ctx context.Context, a *models.Author) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *Repo) FindAuthorByID(ctx context.Context, id uint) (*models.Author, error) {
	return findByID[models.Author](ctx, r.DB, "author", id)
}

func (r *Repo) ListAuthors(ctx context.Context, page, limit int) (*Page[models.Author], error) {
	return listPage[models.Author](ctx, r.DB, page, limit)
}

func (r *Repo) CountAuthors(ctx context.Context) (int64, error) {
	return countAll[models.Author](ctx, r.DB)
}

func (r *Repo) UpdateAuthor(ctx context.Context, id uint, patch AuthorUpdate) (*models.Author, error) {
	var out *models.Author
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := findByID[models.Author](ctx, tx, "author", id)
		if err != nil {
			return err
		}
		if patch.FirstName != nil {
			a.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			a.LastName = *patch.LastName
		}
		if patch.BirthDate != nil {
			a.BirthDate = *patch.BirthDate
		}
		if patch.Nationality != nil {
			a.Nationality = *patch.Nationality
		}
		if patch.Biography != nil {
			a.Biography = patch.Biography
		}
		if patch.CPF != nil {
			a.CPF = patch.CPF
		}
		if err := tx.Save(a).Error; err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}

// DeleteAuthor drops the author's side of the book link set before removing
// the row, so no dangling pairs survive.
func (r *Repo) DeleteAuthor(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Author](ctx, tx, "author", id); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM "+models.BookAuthorTable+" WHERE author_id = ?", id).Error; err != nil {
			return err
		}
		return deleteByID[models.Author](ctx, tx, "author", id)
	})
}

func (r *Repo) SearchAuthors(ctx context.Context, name, nationality string) ([]models.Author, error) {
	q := r.DB.WithContext(ctx).Model(&models.Author{})
	if name != "" {
		like := "%" + name + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ?", like, like)
	}
	if nationality != "" {
		q = q.Where("nationality LIKE ?", "%"+nationality+"%")
	}
	authors := []models.Author{}
	err := q.Find(&authors).Error
	return authors, err
}
