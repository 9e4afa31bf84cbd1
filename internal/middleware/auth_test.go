package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/tokens"
)

type fakeBlocklist struct {
	blocked map[string]bool
}

func (f *fakeBlocklist) TokenBlocked(_ context.Context, jti string) (bool, error) {
	return f.blocked[jti], nil
}

var secret = []byte("test-jwt-secret")

func runAuth(t *testing.T, req *http.Request, blocklist Blocklist) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireAuth(secret, blocklist)(func(c echo.Context) error {
		id, err := UserID(c)
		require.NoError(t, err)
		return c.JSON(http.StatusOK, echo.Map{"user_id": id})
	})
	return rec, handler(c)
}

func TestRequireAuth_BearerHeader(t *testing.T) {
	t.Parallel()

	signed, _, err := tokens.NewAccessToken(7, secret, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)

	rec, err := runAuth(t, req, &fakeBlocklist{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_AccessCookie(t *testing.T) {
	t.Parallel()

	signed, _, err := tokens.NewAccessToken(7, secret, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: signed})

	rec, err := runAuth(t, req, &fakeBlocklist{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := runAuth(t, req, &fakeBlocklist{})
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-valid-jwt")

	_, err := runAuth(t, req, &fakeBlocklist{})
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuth_RevokedToken(t *testing.T) {
	t.Parallel()

	signed, _, err := tokens.NewAccessToken(7, secret, time.Now())
	require.NoError(t, err)

	claims, err := tokens.ClaimsFromToken(signed, secret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)

	_, err = runAuth(t, req, &fakeBlocklist{blocked: map[string]bool{claims.ID: true}})
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Equal(t, "token revoked", he.Message)
}
