package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"intervuex/infras/jwt"
	"intervuex/internal/domains/auth/model/dto"
	"intervuex/shared/timezone"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	t.Run("defaults to candidate when no role given", func(t *testing.T) {
		req := dto.RegisterRequest{
			Email:    "new@example.com",
			Password: "plaintext",
			FullName: stringPtr("New User"),
		}

		user := req.ToUserModel("guest", "hashed")

		assert.Equal(t, "candidate", user.Role)
		assert.Equal(t, "hashed", user.Password)
		assert.True(t, user.Active)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("keeps the requested interviewer role", func(t *testing.T) {
		req := dto.RegisterRequest{
			Email:    "provider@example.com",
			Password: "plaintext",
			Role:     "interviewer",
		}

		user := req.ToUserModel("guest", "hashed")

		assert.Equal(t, "interviewer", user.Role)
	})
}

func TestUpdatePasswordRequest(t *testing.T) {
	hashedPassword := "hashed-new-password"

	req := dto.UpdatePasswordRequest{
		Password: hashedPassword,
	}

	assert.Equal(t, hashedPassword, req.Password)
}

// Helper function to create string pointer
func stringPtr(s string) *string {
	return &s
}
