package db

import (
	"context"
	"errors"
	"strconv"

	"Gin_postgres_redis_library_api/models"

	"gorm.io/gorm"
)

type ProfileUpdate struct {
	PhotoURL          *string `json:"photo_url"`
	Profession        *string `json:"profession"`
	LiteraryInterests *string `json:"literary_interests"`
	FavoriteBooks     *string `json:"favorite_books"`
}

// CreateProfile enforces one profile per user: the owning user must exist and
// must not already have a profile row.
func (r *Repo) CreateProfile(ctx context.Context, p *models.UserProfile) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.User](ctx, tx, "user", p.UserID); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&models.UserProfile{}).Where("user_id = ?", p.UserID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return conflict("profile", "user_id", strconv.FormatUint(uint64(p.UserID), 10))
		}
		return tx.Create(p).Error
	})
}

func (r *Repo) FindProfileByID(ctx context.Context, id uint) (*models.UserProfile, error) {
	return findByID[models.UserProfile](ctx, r.DB, "profile", id)
}

func (r *Repo) FindProfileByUserID(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("profile for user", userID)
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) ListProfiles(ctx context.Context, page, limit int) (*Page[models.UserProfile], error) {
	return listPage[models.UserProfile](ctx, r.DB, page, limit)
}

func (r *Repo) CountProfiles(ctx context.Context) (int64, error) {
	return countAll[models.UserProfile](ctx, r.DB)
}

func (r *Repo) UpdateProfile(ctx context.Context, id uint, patch ProfileUpdate) (*models.UserProfile, error) {
	var out *models.UserProfile
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := findByID[models.UserProfile](ctx, tx, "profile", id)
		if err != nil {
			return err
		}
		if patch.PhotoURL != nil {
			p.PhotoURL = patch.PhotoURL
		}
		if patch.Profession != nil {
			p.Profession = patch.Profession
		}
		if patch.LiteraryInterests != nil {
			p.LiteraryInterests = patch.LiteraryInterests
		}
		if patch.FavoriteBooks != nil {
			p.FavoriteBooks = patch.FavoriteBooks
		}
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}

func (r *Repo) DeleteProfile(ctx context.Context, id uint) error {
	return deleteByID[models.UserProfile](ctx, r.DB, "profile", id)
}

func (r *Repo) SearchProfiles(ctx context.Context, profession, interests string) ([]models.UserProfile, error) {
	q := r.DB.WithContext(ctx).Model(&models.UserProfile{})
	if profession != "" {
		q = q.Where("profession LIKE ?", "%"+profession+"%")
	}
	if interests != "" {
		q = q.Where("literary_interests LIKE ?", "%"+interests+"%")
	}
	profiles := []models.UserProfile{}
	err := q.Find(&profiles).Error
	return profiles, err
}
