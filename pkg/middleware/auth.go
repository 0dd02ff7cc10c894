package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

const apiPrefix = "/api/"

// TokenValidator é o recorte do autenticador usado pelo middleware
type TokenValidator interface {
	ValidateToken(token string) (*domain.Claims, error)
}

var publicPaths = map[string]struct{}{
	"/api/login":   {},
	"/healthcheck": {},
}

// isPublic libera o login, o healthcheck e tudo que não é API (arquivos do frontend)
func isPublic(path string) bool {
	if _, ok := publicPaths[path]; ok {
		return true
	}
	return !strings.HasPrefix(path, apiPrefix)
}

func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token rejeitado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			if slot, ok := r.Context().Value(identitySlotKey).(*identitySlot); ok {
				slot.claims = claims
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext devolve as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

// WithClaims grava claims no contexto; usado pelos testes de handler
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}
