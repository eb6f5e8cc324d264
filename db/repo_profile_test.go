package db

import (
	"context"
	"testing"

	"Gin_postgres_redis_library_api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfileNeedsExistingUser(t *testing.T) {
	r := newTestRepo(t)
	err := r.CreateProfile(context.Background(), &models.UserProfile{UserID: 42})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user", nf.Entity)
}

func TestCreateProfileOnePerUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "ana@example.com", true)
	require.NoError(t, r.CreateProfile(ctx, &models.UserProfile{UserID: u.ID}))

	err := r.CreateProfile(ctx, &models.UserProfile{UserID: u.ID, Profession: strPtr("Teacher")})
	var cf *ConflictError
	require.ErrorAs(t, err, &cf)
	assert.Equal(t, "profile", cf.Entity)
	assert.Equal(t, "user_id", cf.Field)
}

func TestFindProfileByUserID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "ana@example.com", true)
	p := &models.UserProfile{UserID: u.ID, Profession: strPtr("Librarian")}
	require.NoError(t, r.CreateProfile(ctx, p))

	got, err := r.FindProfileByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	var nf *NotFoundError
	_, err = r.FindProfileByUserID(ctx, 999)
	require.ErrorAs(t, err, &nf)
}

func TestUpdateProfilePatchesOnlySuppliedFields(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUser(t, r, "ana@example.com", true)
	p := &models.UserProfile{UserID: u.ID, Profession: strPtr("Librarian")}
	require.NoError(t, r.CreateProfile(ctx, p))

	got, err := r.UpdateProfile(ctx, p.ID, ProfileUpdate{
		LiteraryInterests: strPtr("modernism, crime"),
	})
	require.NoError(t, err)
	require.NotNil(t, got.Profession)
	assert.Equal(t, "Librarian", *got.Profession)
	require.NotNil(t, got.LiteraryInterests)
	assert.Equal(t, "modernism, crime", *got.LiteraryInterests)
}

func TestSearchProfiles(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u1 := seedUser(t, r, "ana@example.com", true)
	u2 := seedUser(t, r, "bruno@example.com", true)
	require.NoError(t, r.CreateProfile(ctx, &models.UserProfile{
		UserID: u1.ID, Profession: strPtr("Teacher"), LiteraryInterests: strPtr("poetry"),
	}))
	require.NoError(t, r.CreateProfile(ctx, &models.UserProfile{
		UserID: u2.ID, Profession: strPtr("Engineer"), LiteraryInterests: strPtr("science fiction"),
	}))

	got, err := r.SearchProfiles(ctx, "Teach", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, u1.ID, got[0].UserID)

	got, err = r.SearchProfiles(ctx, "", "science")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, u2.ID, got[0].UserID)
}
