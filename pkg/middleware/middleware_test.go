package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/saturation-api/internal/domain"
	"github.com/vfg2006/saturation-api/internal/usecases/authenticating"
	"github.com/vfg2006/saturation-api/pkg/apiErrors"
	"github.com/vfg2006/saturation-api/pkg/log"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (v fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return v.claims, v.err
}

func capture(called *bool, claims **domain.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if c, ok := ClaimsFromContext(r.Context()); ok && claims != nil {
			*claims = c
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func serve(h http.Handler, method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Healthcheck é público", func(t *testing.T) {
		var called bool
		h := AuthMiddleware(fakeValidator{err: errors.New("nunca chamado")})(capture(&called, nil))

		rec := serve(h, http.MethodGet, "/healthcheck", "")

		assert.True(t, called)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Sem validador - roda como administrador", func(t *testing.T) {
		var called bool
		var claims *domain.Claims
		h := AuthMiddleware(nil)(capture(&called, &claims))

		serve(h, http.MethodGet, "/v1/campaigns/cmp_1/saturation", "")

		assert.True(t, called)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
	})

	t.Run("Sem header Authorization", func(t *testing.T) {
		var called bool
		h := AuthMiddleware(fakeValidator{})(capture(&called, nil))

		rec := serve(h, http.MethodGet, "/v1/cron/status", "")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidToken)
	})

	t.Run("Header sem prefixo Bearer", func(t *testing.T) {
		var called bool
		h := AuthMiddleware(fakeValidator{})(capture(&called, nil))

		rec := serve(h, http.MethodGet, "/v1/cron/status", "Basic abc")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token expirado", func(t *testing.T) {
		var called bool
		h := AuthMiddleware(fakeValidator{err: authenticating.ErrExpiredToken})(capture(&called, nil))

		rec := serve(h, http.MethodGet, "/v1/cron/status", "Bearer abc")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredToken)
	})

	t.Run("Token válido - claims no contexto", func(t *testing.T) {
		var called bool
		var claims *domain.Claims
		h := AuthMiddleware(fakeValidator{claims: &domain.Claims{Name: "Ana", Role: domain.RoleViewer}})(capture(&called, &claims))

		serve(h, http.MethodGet, "/v1/cron/status", "Bearer abc")

		assert.True(t, called)
		assert.Equal(t, "Ana", claims.Name)
	})
}

func TestRoleMiddleware(t *testing.T) {
	withClaims := func(claims *domain.Claims, next http.Handler) http.Handler {
		return AuthMiddleware(fakeValidator{claims: claims})(next)
	}

	t.Run("Analista pode prever", func(t *testing.T) {
		var called bool
		h := withClaims(&domain.Claims{Role: domain.RoleAnalyst}, CanForecast()(capture(&called, nil)))

		rec := serve(h, http.MethodPost, "/v1/campaigns/cmp_1/saturation", "Bearer abc")

		assert.True(t, called)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Viewer não pode prever", func(t *testing.T) {
		var called bool
		h := withClaims(&domain.Claims{Role: domain.RoleViewer}, CanForecast()(capture(&called, nil)))

		rec := serve(h, http.MethodPost, "/v1/campaigns/cmp_1/saturation", "Bearer abc")

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Analista não dispara cron", func(t *testing.T) {
		var called bool
		h := withClaims(&domain.Claims{Role: domain.RoleAnalyst}, AdminOnly()(capture(&called, nil)))

		rec := serve(h, http.MethodPost, "/v1/cron/saturation/run", "Bearer abc")

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Sem claims no contexto", func(t *testing.T) {
		var called bool
		rec := serve(AllRoles()(capture(&called, nil)), http.MethodGet, "/v1/campaigns/cmp_1/saturation", "")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCors(t *testing.T) {
	h := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Origem desconhecida - sem headers de CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde 200 sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/campaigns/cmp_1/saturation", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	var seen string
	h := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	t.Run("Reaproveita o ID de correlação recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
		req.Header.Set(log.CorrelationIDHeader, "req-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", seen)
		assert.Equal(t, "req-123", rec.Header().Get(log.CorrelationIDHeader))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("Gera um ID quando ausente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(log.CorrelationIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	h := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
