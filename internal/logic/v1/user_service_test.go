package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinelshield/shield/internal/auth"
	"github.com/sentinelshield/shield/internal/core/domain"
	"github.com/sentinelshield/shield/internal/testutil"
)

func TestUserService_Lookup(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewUserService(store.Users(), testHasher)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.UserRequest{Email: "erin@example.com", Name: "Erin", Password: "hunter22"})
	require.NoError(t, err)

	byID, err := svc.Lookup(ctx, created.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "erin@example.com", byID.Email)

	byEmail, err := svc.Lookup(ctx, 0, "erin@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = svc.Lookup(ctx, 0, "")
	requireValidation(t, err, "User ID or email is required")

	_, err = svc.Lookup(ctx, 999, "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_CreateRejectsDuplicates(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewUserService(store.Users(), testHasher)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.UserRequest{Email: "erin@example.com", Name: "Erin"})
	requireValidation(t, err, "Email, name, and password are required")

	_, err = svc.Create(ctx, domain.UserRequest{Email: "erin@example.com", Name: "Erin", Password: "hunter22"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.UserRequest{Email: "erin@example.com", Name: "Erin", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestUserService_UpdateRehashesOnlyWhenPasswordGiven(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewUserService(store.Users(), testHasher)
	ctx := context.Background()

	user, err := svc.Create(ctx, domain.UserRequest{Email: "f@example.com", Name: "F", Password: "first-pass"})
	require.NoError(t, err)
	original := store.PasswordHash(user.ID)

	_, err = svc.Update(ctx, domain.UserRequest{ID: user.ID, Email: "f@example.com", Name: "Frank"})
	require.NoError(t, err)
	assert.Equal(t, original, store.PasswordHash(user.ID))

	updated, err := svc.Update(ctx, domain.UserRequest{ID: user.ID, Email: "f@example.com", Name: "Frank", Password: "second-pass"})
	require.NoError(t, err)
	assert.Equal(t, "Frank", updated.Name)
	assert.True(t, testHasher.Verify("second-pass", store.PasswordHash(user.ID)))

	_, err = svc.Update(ctx, domain.UserRequest{ID: 999, Email: "x@example.com", Name: "X"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteCascadesToOwnedRecords(t *testing.T) {
	store := testutil.NewMemStore()
	users := NewUserService(store.Users(), testHasher)
	notes := NewNoteService(store.Notes())
	ctx := context.Background()

	user, err := users.Create(ctx, domain.UserRequest{Email: "g@example.com", Name: "G", Password: "hunter22"})
	require.NoError(t, err)
	caller := &auth.Identity{UserID: user.ID}

	_, err = notes.Create(ctx, caller, domain.NoteRequest{Title: "todo"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, user.ID))
	assert.ErrorIs(t, users.Delete(ctx, user.ID), ErrUserNotFound)

	remaining, err := notes.List(ctx, caller)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestUserService_Profile(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewUserService(store.Users(), testHasher)
	ctx := context.Background()

	user, err := svc.Create(ctx, domain.UserRequest{Email: "h@example.com", Name: "H", Password: "hunter22"})
	require.NoError(t, err)
	caller := &auth.Identity{UserID: user.ID, Email: user.Email, Name: user.Name}

	_, err = svc.UpdateProfile(ctx, caller, domain.ProfileRequest{})
	requireValidation(t, err, "Name is required")

	updated, err := svc.UpdateProfile(ctx, caller, domain.ProfileRequest{Name: "Helen"})
	require.NoError(t, err)
	assert.Equal(t, "Helen", updated.Name)
	assert.Equal(t, "h@example.com", updated.Email)

	profile, err := svc.Profile(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, "Helen", profile.Name)

	_, err = svc.Profile(ctx, &auth.Identity{UserID: 404})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
