package db

import (
	"context"
	"errors"
	"strings"

	"Gin_postgres_redis_library_api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookUpdate struct {
	Title           *string `json:"title"`
	ISBN            *string `json:"isbn"`
	PublicationYear *int    `json:"publication_year"`
	Publisher       *string `json:"publisher"`
	PageCount       *int    `json:"page_count"`
	TotalCopies     *int    `json:"total_copies"`
	// nil = leave the link set alone; non-nil (even empty) = full replacement
	AuthorIDs   *[]uint `json:"author_ids"`
	CategoryIDs *[]uint `json:"category_ids"`
}

type BookSearchQuery struct {
	Title    string
	Author   string
	Category string
	YearMin  *int
	YearMax  *int
}

// replaceBookAuthors swaps the book's author set for the one resolved from
// ids. Ids that match no author row are skipped, not rejected; the resulting
// set holds exactly the authors that exist.
func replaceBookAuthors(ctx context.Context, tx *gorm.DB, b *models.Book, ids []uint) error {
	authors := []models.Author{}
	if len(ids) > 0 {
		if err := tx.WithContext(ctx).Find(&authors, "id IN ?", ids).Error; err != nil {
			return err
		}
	}
	if err := tx.WithContext(ctx).Model(b).Association("Authors").Replace(&authors); err != nil {
		return err
	}
	b.Authors = authors
	return nil
}

func replaceBookCategories(ctx context.Context, tx *gorm.DB, b *models.Book, ids []uint) error {
	cats := []models.Category{}
	if len(ids) > 0 {
		if err := tx.WithContext(ctx).Find(&cats, "id IN ?", ids).Error; err != nil {
			return err
		}
	}
	if err := tx.WithContext(ctx).Model(b).Association("Categories").Replace(&cats); err != nil {
		return err
	}
	b.Categories = cats
	return nil
}

// CreateBook inserts the book (all copies available) and populates both link
// sets in the same transaction.
func (r *Repo) CreateBook(ctx context.Context, b *models.Book, authorIDs, categoryIDs []uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b.AvailableCopies = b.TotalCopies
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}
		if err := replaceBookAuthors(ctx, tx, b, authorIDs); err != nil {
			return err
		}
		return replaceBookCategories(ctx, tx, b, categoryIDs)
	})
}

func (r *Repo) FindBookByID(ctx context.Context, id uint) (*models.Book, error) {
	var b models.Book
	err := r.DB.WithContext(ctx).
		Preload("Authors").
		Preload("Categories").
		First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("book", id)
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repo) ListBooks(ctx context.Context, page, limit int) (*Page[models.Book], error) {
	page, limit = clampPaging(page, limit)

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Book{}).Count(&total).Error; err != nil {
		return nil, err
	}

	books := []models.Book{}
	if err := r.DB.WithContext(ctx).
		Preload("Authors").
		Preload("Categories").
		Order("id").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&books).Error; err != nil {
		return nil, err
	}

	return &Page[models.Book]{
		Items:      books,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (r *Repo) CountBooks(ctx context.Context) (int64, error) {
	return countAll[models.Book](ctx, r.DB)
}

func (r *Repo) UpdateBook(ctx context.Context, id uint, patch BookUpdate) (*models.Book, error) {
	var out *models.Book
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Book
		if err := tx.Preload("Authors").Preload("Categories").First(&b, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("book", id)
			}
			return err
		}
		if patch.Title != nil {
			b.Title = *patch.Title
		}
		if patch.ISBN != nil {
			b.ISBN = *patch.ISBN
		}
		if patch.PublicationYear != nil {
			b.PublicationYear = *patch.PublicationYear
		}
		if patch.Publisher != nil {
			b.Publisher = *patch.Publisher
		}
		if patch.PageCount != nil {
			b.PageCount = *patch.PageCount
		}
		if patch.TotalCopies != nil {
			b.TotalCopies = *patch.TotalCopies
		}
		if err := tx.Omit(clause.Associations).Save(&b).Error; err != nil {
			return err
		}
		if patch.AuthorIDs != nil {
			if err := replaceBookAuthors(ctx, tx, &b, *patch.AuthorIDs); err != nil {
				return err
			}
		}
		if patch.CategoryIDs != nil {
			if err := replaceBookCategories(ctx, tx, &b, *patch.CategoryIDs); err != nil {
				return err
			}
		}
		out = &b
		return nil
	})
	return out, err
}

func (r *Repo) DeleteBook(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findByID[models.Book](ctx, tx, "book", id); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM "+models.BookAuthorTable+" WHERE book_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM "+models.BookCategoryTable+" WHERE book_id = ?", id).Error; err != nil {
			return err
		}
		return deleteByID[models.Book](ctx, tx, "book", id)
	})
}

// SearchBooks pushes the direct predicates into SQL; author and category name
// filters run over the preloaded sets, since the relationship is many-to-many.
// That is O(n*m) over the candidate rows, which is fine at catalog scale.
func (r *Repo) SearchBooks(ctx context.Context, q BookSearchQuery) ([]models.Book, error) {
	tx := r.DB.WithContext(ctx).
		Preload("Authors").
		Preload("Categories")
	if q.Title != "" {
		tx = tx.Where("title LIKE ?", "%"+q.Title+"%")
	}
	if q.YearMin != nil {
		tx = tx.Where("publication_year >= ?", *q.YearMin)
	}
	if q.YearMax != nil {
		tx = tx.Where("publication_year <= ?", *q.YearMax)
	}

	books := []models.Book{}
	if err := tx.Find(&books).Error; err != nil {
		return nil, err
	}

	if q.Author != "" {
		needle := strings.ToLower(q.Author)
		filtered := books[:0]
		for _, b := range books {
			for _, a := range b.Authors {
				if strings.Contains(strings.ToLower(a.FirstName), needle) ||
					strings.Contains(strings.ToLower(a.LastName), needle) {
					filtered = append(filtered, b)
					break
				}
			}
		}
		books = filtered
	}

	if q.Category != "" {
		needle := strings.ToLower(q.Category)
		filtered := books[:0]
		for _, b := range books {
			for _, c := range b.Categories {
				if strings.Contains(strings.ToLower(c.Name), needle) {
					filtered = append(filtered, b)
					break
				}
			}
		}
		books = filtered
	}

	return books, nil
}
