package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/session"
	"github.com/heartmarshall/inventory-dashboard/internal/adapter/memory/user"
	"github.com/heartmarshall/inventory-dashboard/internal/config"
	"github.com/heartmarshall/inventory-dashboard/internal/domain"
	"github.com/heartmarshall/inventory-dashboard/internal/service/auth"
	"github.com/heartmarshall/inventory-dashboard/pkg/ctxutil"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *auth.Service) {
	t.Helper()

	db := memory.NewDB()
	users := user.New(db)
	require.NoError(t, users.Create(context.Background(), &domain.User{
		ID: "1", Email: "admin@inventory.com", Name: "Admin User", Role: domain.UserRoleAdmin,
	}))

	cfg := config.AuthConfig{SessionTTL: time.Hour, CookieName: "session"}
	svc := auth.NewService(discardLogger(), users, session.New(db), cfg)
	return NewAuthHandler(svc, cfg, discardLogger()), svc
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	h, svc := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"admin@inventory.com","password":"demo"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	var body loginResponse
	decodeEnvelope(t, rec, &body)
	assert.Equal(t, cookies[0].Value, body.Token)
	assert.Equal(t, "admin", body.User.Role)

	u, err := svc.ResolveSession(context.Background(), body.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"unknown email", `{"email":"who@inventory.com","password":"x"}`, http.StatusUnauthorized},
		{"empty password", `{"email":"admin@inventory.com","password":""}`, http.StatusUnauthorized},
		{"malformed", `not json`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newAuthHandler(t)
			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.want, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
			assert.False(t, decodeEnvelope(t, rec, nil).Success)
		})
	}
}

func TestAuth_LogoutAndMe(t *testing.T) {
	t.Parallel()

	h, svc := newAuthHandler(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, auth.LoginInput{Email: "admin@inventory.com", Password: "x"})
	require.NoError(t, err)

	authed := ctxutil.WithSessionToken(ctxutil.WithUserID(ctx, "1"), result.Session.Token)

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil).WithContext(authed))
	require.Equal(t, http.StatusOK, rec.Code)
	var me userResponse
	decodeEnvelope(t, rec, &me)
	assert.Equal(t, "admin@inventory.com", me.Email)

	rec = httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil).WithContext(authed))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decodeEnvelope(t, rec, nil).Message)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)

	_, err = svc.ResolveSession(ctx, result.Session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Anonymous logout still succeeds.
	rec = httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
