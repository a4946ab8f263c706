package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	tests := []struct {
		name        string
		setup       func() string
		tokenString string
		expectError bool
		userID      string
	}{
		{
			name: "Valid token",
			setup: func() string {
				return signToken(t, "test-secret", &Claims{
					UserID: "user-1",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
					},
				})
			},
			expectError: false,
			userID:      "user-1",
		},
		{
			name: "Token without expiry",
			setup: func() string {
				return signToken(t, "test-secret", &Claims{UserID: "user-1"})
			},
			expectError: false,
			userID:      "user-1",
		},
		{
			name:        "Invalid token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Wrong signing secret",
			setup: func() string {
				return signToken(t, "other-secret", &Claims{UserID: "user-1"})
			},
			expectError: true,
		},
		{
			name: "Expired token",
			setup: func() string {
				return signToken(t, "test-secret", &Claims{
					UserID: "user-1",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(-time.Hour).Unix(),
					},
				})
			},
			expectError: true,
		},
		{
			name: "Missing user id claim",
			setup: func() string {
				return signToken(t, "test-secret", jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
				})
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, tt.userID, claims.UserID)
			}
		})
	}
}
