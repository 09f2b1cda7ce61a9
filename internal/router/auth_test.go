package router_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"lila/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	token := env.login(t)
	assert.NotEmpty(t, token)

	status, res := env.sendJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, res.Success)

	// unknown username gets the same generic message
	status, res2 := env.sendJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "nobody",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, res.Message, res2.Message)

	status, _ = env.sendJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "",
		"password": "",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestVerifyToken(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	status, res := env.sendJSON(t, http.MethodPost, "/api/auth/verify", token, nil)
	require.Equal(t, http.StatusOK, status)
	var user struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(res.User, &user))
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)

	status, _ = env.sendJSON(t, http.MethodPost, "/api/auth/verify", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = env.sendJSON(t, http.MethodPost, "/api/auth/verify", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestExpiredTokenRejected(t *testing.T) {
	env := newTestEnv(t)

	// issued 25h ago with a 24h validity window
	expired, err := auth.GenerateTokenAt(&env.Cfg.JWT, 1, "admin", "admin", time.Now().Add(-25*time.Hour))
	require.NoError(t, err)

	status, _ := env.sendJSON(t, http.MethodGet, "/api/contact", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	fresh, err := auth.GenerateTokenAt(&env.Cfg.JWT, 1, "admin", "admin", time.Now())
	require.NoError(t, err)
	status, _ = env.sendJSON(t, http.MethodGet, "/api/contact", fresh, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	status, _ := env.sendJSON(t, http.MethodPut, "/api/settings/password", token, map[string]string{
		"currentPassword": "wrong",
		"newPassword":     "newpass123",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.sendJSON(t, http.MethodPut, "/api/settings/password", token, map[string]string{
		"currentPassword": "123456",
		"newPassword":     "short",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, res := env.sendJSON(t, http.MethodPut, "/api/settings/password", token, map[string]string{
		"currentPassword": "123456",
		"newPassword":     "newpass123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.True(t, res.Success)

	// old password no longer works, the new one does
	status, _ = env.sendJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "123456",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, res = env.sendJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": "newpass123",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, res.Token)

	// stateless verification: the pre-change token stays valid
	status, _ = env.sendJSON(t, http.MethodPost, "/api/auth/verify", token, nil)
	assert.Equal(t, http.StatusOK, status)

	// change password without a token is rejected
	status, _ = env.sendJSON(t, http.MethodPut, "/api/settings/password", "", map[string]string{
		"currentPassword": "newpass123",
		"newPassword":     "another123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}
