package middleware

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos papéis
func RoleMiddleware(allowedRoles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !hasRole(userClaims.UserRole, allowedRoles) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id": userClaims.UserID,
					"role":    userClaims.UserRole,
					"path":    r.URL.Path,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SelfOrRoles exige que o id do caminho seja o do próprio usuário, a menos que ele
// tenha um dos papéis privilegiados informados
func SelfOrRoles(param string, privileged ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if hasRole(userClaims.UserRole, privileged) {
				next.ServeHTTP(w, r)
				return
			}

			raw := httprouter.ParamsFromContext(r.Context()).ByName(param)
			id, err := strconv.Atoi(raw)
			if err != nil || id != userClaims.UserID {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id": userClaims.UserID,
					"role":    userClaims.UserRole,
					"path":    r.URL.Path,
				}).Warn("Acesso a recurso de outro usuário negado")
				apiErrors.WriteError(w, apiErrors.ErrIdentityMismatch, "Você não tem permissão para acessar dados de outro usuário", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func hasRole(role domain.Role, allowed []domain.Role) bool {
	for _, candidate := range allowed {
		if candidate == role {
			return true
		}
	}
	return false
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// ManagerOrAdmin permite acesso para gestores e administradores
func ManagerOrAdmin() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleManager)
}

// AllRoles libera qualquer usuário autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin, domain.RoleManager, domain.RolePromoter)
}
