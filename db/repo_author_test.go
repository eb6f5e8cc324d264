package db

import (
	"context"
	"testing"

	"Gin_postgres_redis_library_api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAuthorPatchesOnlySuppliedFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	a := seedAuthor(t, r, "Machado", "de Assis")

	got, err := r.UpdateAuthor(ctx, a.ID, AuthorUpdate{
		Biography: strPtr("Founder of the Brazilian Academy of Letters."),
	})
	require.NoError(t, err)
	assert.Equal(t, "Machado", got.FirstName)
	assert.Equal(t, "de Assis", got.LastName)
	require.NotNil(t, got.Biography)

	var nf *NotFoundError
	_, err = r.UpdateAuthor(ctx, 999, AuthorUpdate{FirstName: strPtr("x")})
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "author", nf.Entity)
}

func TestDeleteAuthorClearsBookLinks(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	a := seedAuthor(t, r, "Machado", "de Assis")
	b := &models.Book{Title: "Dom Casmurro", ISBN: "isbn-1", PublicationYear: 1899,
		Publisher: "Garnier", PageCount: 256, TotalCopies: 1}
	require.NoError(t, r.CreateBook(ctx, b, []uint{a.ID}, nil))

	require.NoError(t, r.DeleteAuthor(ctx, a.ID))

	var n int64
	require.NoError(t, r.DB.Table(models.BookAuthorTable).Count(&n).Error)
	assert.Zero(t, n)

	got, err := r.FindBookByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Authors)
}

func TestSearchAuthorsMatchesEitherName(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedAuthor(t, r, "Machado", "de Assis")
	seedAuthor(t, r, "Clarice", "Lispector")

	got, err := r.SearchAuthors(ctx, "Lispector", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Clarice", got[0].FirstName)

	got, err = r.SearchAuthors(ctx, "Machado", "")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = r.SearchAuthors(ctx, "", "Brazil")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
