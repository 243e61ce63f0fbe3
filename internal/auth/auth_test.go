package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthService(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		_, err := NewAuthService("", time.Hour)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("default ttl", func(t *testing.T) {
		s, err := NewAuthService("secret", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, s.ttl)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	s, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)

	token, err := s.GenerateJWT("user-42")
	require.NoError(t, err)

	claims, err := s.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, tokenIssuer, claims.Issuer)

	_, err = s.GenerateJWT("")
	assert.Error(t, err)
}

func TestValidateJWT_Rejections(t *testing.T) {
	s, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := NewAuthService("another-key", time.Hour)
		token, _ := other.GenerateJWT("user-1")
		_, err := s.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &AuthClaims{UserID: "user-1", RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
		_, err := s.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("missing user id", func(t *testing.T) {
		claims := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
		_, err := s.ValidateJWT(token)
		assert.ErrorContains(t, err, "user_id")
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)
	valid, err := s.GenerateJWT("user-7")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", NewAuthMiddleware(s).RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer abc", http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), "user-7")
			}
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetUserID(c)
	assert.False(t, ok)
}
