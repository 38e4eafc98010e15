package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeValidator struct {
	validateFunc func(ctx context.Context, token string) (uuid.UUID, error)
}

func (f *fakeValidator) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	return f.validateFunc(ctx, token)
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw)
	router.GET("/me", func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(uuid.UUID)
		c.String(http.StatusOK, userID.String())
	})
	return router
}

func doAuth(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	userID := uuid.New()
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{"user_id claim", "Bearer " + signToken(t, jwt.MapClaims{"user_id": userID.String(), "exp": exp}, testSecret), http.StatusOK},
		{"sub claim", "Bearer " + signToken(t, jwt.MapClaims{"sub": userID.String(), "exp": exp}, testSecret), http.StatusOK},
		{"uid claim", "Bearer " + signToken(t, jwt.MapClaims{"uid": userID.String(), "exp": exp}, testSecret), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, jwt.MapClaims{"user_id": userID.String()}, "other"), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, jwt.MapClaims{"user_id": userID.String(), "exp": time.Now().Add(-time.Hour).Unix()}, testSecret), http.StatusUnauthorized},
		{"no user claim", "Bearer " + signToken(t, jwt.MapClaims{"exp": exp}, testSecret), http.StatusUnauthorized},
		{"non uuid user", "Bearer " + signToken(t, jwt.MapClaims{"user_id": "alice"}, testSecret), http.StatusUnauthorized},
	}

	router := authRouter(Auth(testSecret))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuth(router, tt.header)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
			}
		})
	}
}

func TestAuthWithValidator(t *testing.T) {
	userID := uuid.New()
	validator := &fakeValidator{validateFunc: func(ctx context.Context, token string) (uuid.UUID, error) {
		if token == "good" {
			return userID, nil
		}
		return uuid.Nil, errors.New("revoked")
	}}
	router := authRouter(AuthWithValidator(validator))

	w := doAuth(router, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, doAuth(router, "Bearer revoked").Code)
	assert.Equal(t, http.StatusUnauthorized, doAuth(router, "Bearer ").Code)
	assert.Equal(t, http.StatusUnauthorized, doAuth(router, "").Code)
}
