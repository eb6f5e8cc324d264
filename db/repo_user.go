package db

import (
	"context"

	"Gin_postgres_redis_library_api/models"

	"gorm.io/gorm"
)

type UserUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Active  *bool   `json:"active"`
}

func userEmailTaken(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	var n int64
	err := tx.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := userEmailTaken(ctx, tx, u.Email)
		if err != nil {
			return err
		}
		if taken {
			return conflict("user", "email", u.Email)
		}
		return tx.Create(u).Error
	})
}

func (r *Repo) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	return findByID[models.User](ctx, r.DB, "user", id)
}

func (r *Repo) ListUsers(ctx context.Context, page, limit int) (*Page[models.User], error) {
	return listPage[models.User](ctx, r.DB, page, limit)
}

func (r *Repo) CountUsers(ctx context.Context) (int64, error) {
	return countAll[models.User](ctx, r.DB)
}

func (r *Repo) UpdateUser(ctx context.Context, id uint, patch UserUpdate) (*models.User, error) {
	var out *models.User
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := findByID[models.User](ctx, tx, "user", id)
		if err != nil {
			return err
		}
		if patch.Email != nil && *patch.Email != u.Email {
			taken, err := userEmailTaken(ctx, tx, *patch.Email)
			if err != nil {
				return err
			}
			if taken {
				return conflict("user", "email", *patch.Email)
			}
			u.Email = *patch.Email
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Phone != nil {
			u.Phone = patch.Phone
		}
		if patch.Address != nil {
			u.Address = patch.Address
		}
		if patch.Active != nil {
			u.Active = *patch.Active
		}
		if err := tx.Save(u).Error; err != nil {
			return err
		}
		out = u
		return nil
	})
	return out, err
}

// DeleteUser also removes the owned profile row; loans stay as history.
func (r *Repo) DeleteUser(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.User](ctx, tx, "user", id); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		return deleteByID[models.User](ctx, tx, "user", id)
	})
}

func (r *Repo) SearchUsers(ctx context.Context, name, email string, active *bool) ([]models.User, error) {
	q := r.DB.WithContext(ctx).Model(&models.User{})
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}
	if email != "" {
		q = q.Where("email LIKE ?", "%"+email+"%")
	}
	if active != nil {
		q = q.Where("active = ?", *active)
	}
	users := []models.User{}
	err := q.Find(&users).Error
	return users, err
}
