package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plink_backend/internal/model"
	"plink_backend/internal/service"
	"plink_backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettings struct {
	debugEnabled bool
}

var _ service.SettingsService = (*fakeSettings)(nil)

func (f *fakeSettings) ThemeMode(context.Context) (model.ThemeMode, error) {
	return model.ThemeSystem, nil
}

func (f *fakeSettings) SetThemeMode(context.Context, model.ThemeMode) error { return nil }

func (f *fakeSettings) ToggleTheme(context.Context) (model.ThemeMode, error) {
	return model.ThemeDark, nil
}

func (f *fakeSettings) DebugMenuEnabled(context.Context) (bool, error) {
	return f.debugEnabled, nil
}

func (f *fakeSettings) SetDebugMenuEnabled(context.Context, bool) error { return nil }

func (f *fakeSettings) ToggleDebugMenu(context.Context) (bool, error) { return false, nil }

func callProtected(t *testing.T, secret []byte, enabled bool, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := DebugAuth(secret, &fakeSettings{debugEnabled: enabled})(next)

	r := httptest.NewRequest(http.MethodPost, "/debug/coins/add", nil)
	if authorization != "" {
		r.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func TestDebugAuthAllowsValidToken(t *testing.T) {
	secret := []byte("secret")
	tok, err := token.GenerateAccessToken("debug", secret, time.Minute)
	require.NoError(t, err)

	w := callProtected(t, secret, true, "Bearer "+tok)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDebugAuthRejectsMissingToken(t *testing.T) {
	w := callProtected(t, []byte("secret"), true, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDebugAuthRejectsForgedToken(t *testing.T) {
	tok, err := token.GenerateAccessToken("debug", []byte("other-secret"), time.Minute)
	require.NoError(t, err)

	w := callProtected(t, []byte("secret"), true, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDebugAuthRequiresEnabledMenu(t *testing.T) {
	secret := []byte("secret")
	tok, err := token.GenerateAccessToken("debug", secret, time.Minute)
	require.NoError(t, err)

	w := callProtected(t, secret, false, "Bearer "+tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
