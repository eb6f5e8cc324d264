package db

import (
	"context"

	"Gin_postgres_redis_library_api/models"

	"gorm.io/gorm"
)

type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

func categoryNameTaken(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	var n int64
	err := tx.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name).Count(&n).Error
	return n > 0, err
}

// CreateCategory checks the name before writing; the unique index is only the
// backstop for the race window between two concurrent creates.
func (r *Repo) CreateCategory(ctx context.Context, cat *models.Category) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := categoryNameTaken(ctx, tx, cat.Name)
		if err != nil {
			return err
		}
		if taken {
			return conflict("category", "name", cat.Name)
		}
		return tx.Create(cat).Error
	})
}

func (r *Repo) FindCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	return findByID[models.Category](ctx, r.DB, "category", id)
}

func (r *Repo) ListCategories(ctx context.Context, page, limit int) (*Page[models.Category], error) {
	return listPage[models.Category](ctx, r.DB, page, limit)
}

func (r *Repo) CountCategories(ctx context.Context) (int64, error) {
	return countAll[models.Category](ctx, r.DB)
}

func (r *Repo) UpdateCategory(ctx context.Context, id uint, patch CategoryUpdate) (*models.Category, error) {
	var out *models.Category
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cat, err := findByID[models.Category](ctx, tx, "category", id)
		if err != nil {
			return err
		}
		// the guard only fires when the name actually changes; re-submitting
		// the current name is a no-op, not a conflict
		if patch.Name != nil && *patch.Name != cat.Name {
			taken, err := categoryNameTaken(ctx, tx, *patch.Name)
			if err != nil {
				return err
			}
			if taken {
				return conflict("category", "name", *patch.Name)
			}
			cat.Name = *patch.Name
		}
		if patch.Description != nil {
			cat.Description = patch.Description
		}
		if patch.Active != nil {
			cat.Active = *patch.Active
		}
		if err := tx.Save(cat).Error; err != nil {
			return err
		}
		out = cat
		return nil
	})
	return out, err
}

func (r *Repo) DeleteCategory(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Category](ctx, tx, "category", id); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM "+models.BookCategoryTable+" WHERE category_id = ?", id).Error; err != nil {
			return err
		}
		return deleteByID[models.Category](ctx, tx, "category", id)
	})
}

func (r *Repo) SearchCategories(ctx context.Context, name string, active *bool) ([]models.Category, error) {
	q := r.DB.WithContext(ctx).Model(&models.Category{})
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}
	if active != nil {
		q = q.Where("active = ?", *active)
	}
	cats := []models.Category{}
	err := q.Find(&cats).Error
	return cats, err
}
