package service

import (
	"context"
	"testing"

	"mindful/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "Alice@example.com", NormalizeEmail("  Alice@EXAMPLE.com "))
	assert.Equal(t, "no-at-sign", NormalizeEmail("no-at-sign"))
}

func TestSignupHashesPassword(t *testing.T) {
	db := newTestDB(t)
	accounts := newTestAccounts(db)

	user, err := accounts.Signup(context.Background(), SignupInput{
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		FirstName: "Alice",
		LastName:  "Liddell",
	})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.True(t, stored.IsActive)
	assert.False(t, stored.IsStaff)
	assert.Nil(t, stored.LastLogin)
}

func TestSignupSuperuserIsStaff(t *testing.T) {
	db := newTestDB(t)
	user, err := newTestAccounts(db).Signup(context.Background(), SignupInput{
		Email:       "root@example.com",
		Password:    "password123",
		FirstName:   "Root",
		LastName:    "User",
		IsSuperuser: true,
	})
	require.NoError(t, err)
	assert.True(t, user.IsSuperuser)
	assert.True(t, user.IsStaff)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	accounts := newTestAccounts(db)
	in := SignupInput{Email: "bob@example.com", Password: "password123", FirstName: "Bob", LastName: "B"}

	_, err := accounts.Signup(context.Background(), in)
	require.NoError(t, err)

	in.Email = "bob@EXAMPLE.COM"
	_, err = accounts.Signup(context.Background(), in)
	ve, ok := IsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	assert.Equal(t, []string{"user with this email already exists."}, ve.Fields["email"])

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSignupRequiredFields(t *testing.T) {
	db := newTestDB(t)
	_, err := newTestAccounts(db).Signup(context.Background(), SignupInput{Email: "x@example.com"})
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "password")
	assert.Contains(t, ve.Fields, "first_name")
	assert.Contains(t, ve.Fields, "last_name")
	assert.NotContains(t, ve.Fields, "email")
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	accounts := newTestAccounts(db)
	user := createUser(t, db, "carol")

	got, err := accounts.Authenticate(context.Background(), "carol@EXAMPLE.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = accounts.Authenticate(context.Background(), "carol@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = accounts.Authenticate(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, db.Model(user).Update("is_active", false).Error)
	_, err = accounts.Authenticate(context.Background(), "carol@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRecordLoginAndGet(t *testing.T) {
	db := newTestDB(t)
	accounts := newTestAccounts(db)
	user := createUser(t, db, "dave")

	require.NoError(t, accounts.RecordLogin(context.Background(), user))
	got, err := accounts.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastLogin)

	_, err = accounts.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
