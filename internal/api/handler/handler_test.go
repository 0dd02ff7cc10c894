package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tradelite-api/internal/api/handler/router"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/authenticating"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
	"github.com/vfg2006/tradelite-api/pkg/middleware"
)

var (
	promoterClaims = &domain.Claims{UserID: 1, UserName: "João Silva", UserRole: domain.RolePromoter}
	managerClaims  = &domain.Claims{UserID: 2, UserName: "Maria Santos", UserRole: domain.RoleManager}
	adminClaims    = &domain.Claims{UserID: 3, UserName: "Admin User", UserRole: domain.RoleAdmin}
)

// serve executa a requisição pelo router real, com as claims já gravadas no contexto
func serve(t *testing.T, routes []router.Route, method, path, body string, claims *domain.Claims) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func assertFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	assert.Equal(t, status, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, code, body["code"])
}

func TestHandleError(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "Erro de domínio usa código e mensagem próprios",
			err:             domain.NewError(errors.New("sql: no rows"), apiErrors.ErrResourceNotFound, "Chamado não encontrado"),
			expectedStatus:  http.StatusNotFound,
			expectedCode:    apiErrors.ErrResourceNotFound,
			expectedMessage: "Chamado não encontrado",
		},
		{
			name:            "Erro de domínio embrulhado continua reconhecido",
			err:             errors.Join(errors.New("contexto"), domain.NewError(nil, apiErrors.ErrInvalidTransition, "Transição inválida")),
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    apiErrors.ErrInvalidTransition,
			expectedMessage: "Transição inválida",
		},
		{
			name:            "Erro de autenticação expõe apenas os detalhes",
			err:             authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas"),
			expectedStatus:  http.StatusUnauthorized,
			expectedCode:    apiErrors.ErrInvalidCredentials,
			expectedMessage: "Credenciais inválidas",
		},
		{
			name:            "Erro inesperado vira 500 sem o texto interno",
			err:             errors.New("pq: connection refused"),
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    apiErrors.ErrInternalServer,
			expectedMessage: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleError(rec, httptest.NewRequest(http.MethodGet, "/api/x", nil), tt.err)

			assertFailure(t, rec, tt.expectedStatus, tt.expectedCode)
			body := decodeResponse(t, rec)
			assert.Equal(t, tt.expectedMessage, body["error"])
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestBindPromoterID(t *testing.T) {
	log.SetupTestLogger()

	other := 7
	own := 1

	tests := []struct {
		name         string
		claims       *domain.Claims
		bodyID       *int
		expectedID   *int
		expectedCode string
	}{
		{name: "Promotor sem id no corpo recebe o id do token", claims: promoterClaims, expectedID: &own},
		{name: "Promotor com o próprio id", claims: promoterClaims, bodyID: &own, expectedID: &own},
		{name: "Promotor com id de outro é rejeitado", claims: promoterClaims, bodyID: &other, expectedCode: apiErrors.ErrIdentityMismatch},
		{name: "Gestor age por outro promotor", claims: managerClaims, bodyID: &other, expectedID: &other},
		{name: "Administrador sem id mantém vazio", claims: adminClaims},
		{name: "Sem claims é rejeitado", expectedCode: apiErrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/promoter/register_price", nil)
			if tt.claims != nil {
				req = req.WithContext(middleware.WithClaims(req.Context(), tt.claims))
			}

			id, err := bindPromoterID(req, tt.bodyID)

			if tt.expectedCode != "" {
				var domainErr *domain.Error
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, tt.expectedCode, domainErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(), http.MethodGet, "/healthcheck", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
