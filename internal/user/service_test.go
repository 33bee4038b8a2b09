package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ksaito/giftapi/internal/auth"
	"github.com/ksaito/giftapi/internal/config"
)

func newTestService(t *testing.T) (*Service, *auth.Repository, auth.User) {
	t.Helper()

	repo := auth.NewRepository()
	cfg := config.AuthConfig{BcryptCost: bcrypt.MinCost}

	hash, err := bcrypt.GenerateFromPassword([]byte("longenough"), cfg.BcryptCost)
	require.NoError(t, err)

	seeded := auth.User{
		ID:              "u1",
		Email:           "a@b.com",
		PasswordHash:    string(hash),
		FirstName:       "A",
		LastName:        "B",
		BirthDate:       "2000-01-01",
		JoinDate:        time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		MembershipLevel: "basic",
		Points:          100,
	}
	require.NoError(t, repo.Insert(context.Background(), seeded))

	return NewService(repo, cfg, nil), repo, seeded
}

func TestGetProfile(t *testing.T) {
	service, _, seeded := newTestService(t)

	got, err := service.GetProfile(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, seeded.Email, got.Email)
	assert.Equal(t, seeded.FirstName, got.FirstName)
	assert.Empty(t, got.PasswordHash, "profile must never carry the hash")
}

func TestGetProfileUnknownUser(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	service, repo, seeded := newTestService(t)

	got, err := service.UpdateProfile(context.Background(), "u1", UpdateProfileInput{FirstName: "X"})
	require.NoError(t, err)

	assert.Equal(t, "X", got.FirstName)
	assert.Equal(t, seeded.LastName, got.LastName, "omitted field must keep prior value")
	assert.Equal(t, seeded.BirthDate, got.BirthDate, "omitted field must keep prior value")

	stored, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "X", stored.FirstName)
	assert.NotEmpty(t, stored.PasswordHash, "update must not clear the stored hash")
}

func TestUpdateProfileAllFields(t *testing.T) {
	service, _, _ := newTestService(t)

	got, err := service.UpdateProfile(context.Background(), "u1", UpdateProfileInput{
		FirstName: "New",
		LastName:  "Name",
		BirthDate: "1999-12-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "New", got.FirstName)
	assert.Equal(t, "Name", got.LastName)
	assert.Equal(t, "1999-12-31", got.BirthDate)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	service, repo, seeded := newTestService(t)

	err := service.ChangePassword(context.Background(), "u1", "wrongpassword", "replacement")
	assert.ErrorIs(t, err, ErrWrongPassword)

	stored, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, seeded.PasswordHash, stored.PasswordHash, "stored hash must be unchanged")
}

func TestChangePassword(t *testing.T) {
	service, repo, _ := newTestService(t)

	require.NoError(t, service.ChangePassword(context.Background(), "u1", "longenough", "replacement"))

	stored, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("replacement")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longenough")))
}

func TestChangePasswordSkipsLengthCheck(t *testing.T) {
	service, _, _ := newTestService(t)

	// Unlike registration, no minimum length applies here.
	assert.NoError(t, service.ChangePassword(context.Background(), "u1", "longenough", "tiny"))
}
