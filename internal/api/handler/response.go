package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/authenticating"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
	"github.com/vfg2006/tradelite-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const internalErrorMessage = "Erro interno do servidor"

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeSuccess escreve {"success": true} mais as chaves informadas
func writeSuccess(w http.ResponseWriter, r *http.Request, payload map[string]any) {
	body := make(map[string]any, len(payload)+1)
	for key, value := range payload {
		body[key] = value
	}
	body["success"] = true

	writeJSON(w, r, http.StatusOK, body)
}

// handleError é a única tradução de erro para resposta HTTP. Mensagens internas
// ficam só no log.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		logger.WithField("code", domainErr.Code).Warn("Requisição rejeitada")
		apiErrors.WriteError(w, domainErr.Code, domainErr.Message, nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		logger.WithField("code", authErr.Code).Warn("Falha de autenticação")
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	logger.Error("Erro não tratado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, internalErrorMessage, nil)
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewError(err, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
	}
	return nil
}

// bindPromoterID aplica a identidade do token ao promoter_id do corpo. Gestores e
// administradores podem agir por qualquer promotor; um promotor só por si mesmo.
func bindPromoterID(r *http.Request, promoterID *int) (*int, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return nil, domain.NewError(nil, apiErrors.ErrInvalidToken, "Usuário não autenticado")
	}

	if claims.IsPrivileged() {
		return promoterID, nil
	}

	if promoterID == nil {
		id := claims.UserID
		return &id, nil
	}

	if *promoterID != claims.UserID {
		return nil, domain.NewError(nil, apiErrors.ErrIdentityMismatch,
			"Você não tem permissão para registrar dados de outro promotor")
	}

	return promoterID, nil
}

// bindUserID faz o mesmo para o user_id textual do suporte. Só o administrador
// abre chamados e conversas em nome de outro usuário.
func bindUserID(r *http.Request, userID string) (string, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return "", domain.NewError(nil, apiErrors.ErrInvalidToken, "Usuário não autenticado")
	}

	own := strconv.Itoa(claims.UserID)
	switch {
	case userID == "":
		return own, nil
	case userID == own || claims.UserRole == domain.RoleAdmin:
		return userID, nil
	default:
		return "", domain.NewError(nil, apiErrors.ErrIdentityMismatch,
			"Você não tem permissão para abrir atendimento em nome de outro usuário")
	}
}

// canReadTicket libera o chamado ao dono e ao administrador
func canReadTicket(r *http.Request, ticket *domain.Ticket) error {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return domain.NewError(nil, apiErrors.ErrInvalidToken, "Usuário não autenticado")
	}
	if claims.UserRole == domain.RoleAdmin || ticket.UserID == strconv.Itoa(claims.UserID) {
		return nil
	}
	return domain.NewError(nil, apiErrors.ErrIdentityMismatch, "Você não tem permissão para acessar chamados de outro usuário")
}
