package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"username": "bunni",
		"email":    "bunni@example.com",
		"password": "Secret123",
	}
	rec := env.doJSONRequest(http.MethodPost, "/user/signup", payload, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Data    struct {
			UserID   uint   `json:"user_id"`
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "User created successfully", resp.Message)
	require.NotZero(t, resp.Data.UserID)
	require.Equal(t, "bunni", resp.Data.Username)

	// Duplicate username is a conflict.
	rec = env.doJSONRequest(http.MethodPost, "/user/signup", payload, "")
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignup_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodPost, "/user/signup", map[string]string{"username": "bunni"}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	signupAndLogin(t, env, "bunni")

	rec := env.doJSONRequest(http.MethodPost, "/user/login", map[string]string{
		"username": "bunni",
		"password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, hasToken := resp["access_token"]
	require.False(t, hasToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	env := newTestEnv(t)
	token := signupAndLogin(t, env, "bunni")

	// The token works before logout.
	rec := env.doJSONRequest(http.MethodGet, "/user", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSONRequest(http.MethodDelete, "/user/logout", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Access token successfully revoked", resp["msg"])

	// And is rejected afterwards.
	rec = env.doJSONRequest(http.MethodGet, "/user", nil, token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetIdentity_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(http.MethodGet, "/user", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSONRequest(http.MethodGet, "/user", nil, "not-a-valid-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateUser_OnlyOwnProfile(t *testing.T) {
	env := newTestEnv(t)
	token := signupAndLogin(t, env, "bunni")
	signupAndLogin(t, env, "other")

	// User 1 may update themselves.
	rec := env.doJSONRequest(http.MethodPut, "/user/update/1/email", map[string]string{
		"email": "new@example.com",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// But not user 2.
	rec = env.doJSONRequest(http.MethodPut, "/user/update/2/email", map[string]string{
		"email": "stolen@example.com",
	}, token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateUser_FieldRequired(t *testing.T) {
	env := newTestEnv(t)
	token := signupAndLogin(t, env, "bunni")

	rec := env.doJSONRequest(http.MethodPut, "/user/update/1/username", map[string]string{}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
