package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safebite/backend/internal/models"
	"github.com/safebite/backend/internal/service"
	"github.com/safebite/backend/internal/testhelpers"
	"github.com/safebite/backend/internal/types"
)

func newAuthFixture(t *testing.T) (*service.AuthService, *service.ProfileService) {
	t.Helper()
	db := testhelpers.SetupTestDatabase(t)
	profiles := service.NewProfileService(testhelpers.NewMemoryStore())
	return service.NewAuthService(db, profiles, "test-secret"), profiles
}

func registerRequest() *types.RegisterRequest {
	return &types.RegisterRequest{
		Name:      "Test Patient",
		Birthdate: "1990-04-12",
		Age:       36,
		Weight:    70,
		Email:     "patient@example.com",
		Password:  "password123",
		Allergies: "peanut, milk",
		Symptoms:  "hives",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token that validates to the new user", func(t *testing.T) {
		auth, _ := newAuthFixture(t)

		token, err := auth.Register(ctx, registerRequest())

		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := auth.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "patient@example.com", claims.Email)
		assert.NotEqual(t, claims.UserID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("mirrors allergies and symptoms into the profile store", func(t *testing.T) {
		auth, profiles := newAuthFixture(t)

		token, err := auth.Register(ctx, registerRequest())
		require.NoError(t, err)
		claims, err := auth.ValidateToken(token)
		require.NoError(t, err)

		profile, err := profiles.LoadProfile(ctx, claims.UserID)
		require.NoError(t, err)
		assert.Equal(t, []string{"peanut", "milk"}, profile.Allergens)
		assert.Equal(t, "hives", profile.Symptoms)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		auth, _ := newAuthFixture(t)

		_, err := auth.Register(ctx, registerRequest())
		require.NoError(t, err)

		_, err = auth.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, service.ErrUserExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		auth, _ := newAuthFixture(t)
		_, err := auth.Register(ctx, registerRequest())
		require.NoError(t, err)

		token, err := auth.Login(ctx, "patient@example.com", "password123")

		require.NoError(t, err)
		claims, err := auth.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "patient@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		auth, _ := newAuthFixture(t)
		_, err := auth.Register(ctx, registerRequest())
		require.NoError(t, err)

		_, err = auth.Login(ctx, "patient@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		auth, _ := newAuthFixture(t)

		_, err := auth.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	auth, _ := newAuthFixture(t)

	t.Run("rejects garbage", func(t *testing.T) {
		claims, err := auth.ValidateToken("not-a-token")

		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		db := testhelpers.SetupTestDatabase(t)
		other := service.NewAuthService(db, service.NewProfileService(testhelpers.NewMemoryStore()), "other-secret")
		token, err := other.Register(context.Background(), registerRequest())
		require.NoError(t, err)

		claims, err := auth.ValidateToken(token)
		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}

func TestAuthService_RegisterStoresAllergenRows(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.SetupTestDatabase(t)
	profiles := service.NewProfileService(testhelpers.NewMemoryStore())
	auth := service.NewAuthService(db, profiles, "test-secret")

	token, err := auth.Register(ctx, registerRequest())
	require.NoError(t, err)
	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)

	var rows []models.Allergen
	require.NoError(t, db.Where("user_id = ?", claims.UserID).Find(&rows).Error)
	require.Len(t, rows, 2)
	names := []string{rows[0].AllergenName, rows[1].AllergenName}
	assert.ElementsMatch(t, []string{"peanut", "milk"}, names)
	assert.Equal(t, 1, rows[0].SeverityLevel)
}
