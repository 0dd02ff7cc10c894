package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tradelite-api/infrastructure/events"
	"github.com/vfg2006/tradelite-api/infrastructure/mockdata"
	"github.com/vfg2006/tradelite-api/infrastructure/referencedata"
	"github.com/vfg2006/tradelite-api/infrastructure/repository"
	"github.com/vfg2006/tradelite-api/internal/api/handler"
	"github.com/vfg2006/tradelite-api/internal/config"
	"github.com/vfg2006/tradelite-api/internal/usecases/administering"
	"github.com/vfg2006/tradelite-api/internal/usecases/authenticating"
	"github.com/vfg2006/tradelite-api/internal/usecases/managing"
	"github.com/vfg2006/tradelite-api/internal/usecases/mentoring"
	"github.com/vfg2006/tradelite-api/internal/usecases/promoting"
	"github.com/vfg2006/tradelite-api/internal/usecases/supporting"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const allowedOrigin = "http://localhost:5173"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Auth:   config.Auth{Secret: "segredo-de-teste", TokenTTL: time.Hour, BcryptCost: 4},
		Cors:   config.Cors{AllowedOrigins: []string{allowedOrigin}},
		Static: config.Static{Dir: t.TempDir()},
	}

	catalog := referencedata.Default()
	authenticator, err := authenticating.NewService(catalog.Users, cfg.Auth)
	require.NoError(t, err)

	repos, err := repository.New(config.StorageMemory, nil)
	require.NoError(t, err)

	generator := mockdata.New(catalog, 42)

	return NewHandler(cfg, Services{
		Authenticator: authenticator,
		Admin:         administering.NewService(generator, catalog),
		Manager:       managing.NewService(generator, catalog),
		Mentor:        mentoring.NewService(catalog, generator, nil),
		Promoter:      promoting.NewService(generator, repos.Prices, events.NewLogPublisher(), catalog),
		Support:       supporting.NewService(generator, repos.Tickets, catalog),
		CronJobs:      handler.CronJobServices{},
	})
}

func do(t *testing.T, h http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func login(t *testing.T, h http.Handler, email, role string) string {
	t.Helper()

	rec, body := do(t, h, http.MethodPost, "/api/login",
		`{"email":"`+email+`","password":"123456","role":"`+role+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	token, ok := body["token"].(string)
	require.True(t, ok)
	return token
}

func TestServer_FluxoDoPromotor(t *testing.T) {
	log.SetupTestLogger()
	h := newTestHandler(t)

	token := login(t, h, "joao@tradelite.com", "promoter")

	rec, body := do(t, h, http.MethodGet, "/api/promoter/visit_history/1", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["visits"])

	rec, body = do(t, h, http.MethodGet, "/api/promoter/visit_history/4", "", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrIdentityMismatch, body["code"])

	rec, body = do(t, h, http.MethodGet, "/api/admin/products", "", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, body["code"])

	rec, body = do(t, h, http.MethodPost, "/api/promoter/register_price",
		`{"store":"Mercado Central","product_sku":"SKU002","current_price":5.40}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	entry := body["price_entry"].(map[string]any)
	assert.Equal(t, float64(1), entry["promoter_id"])
	assert.Contains(t, body, "comparison")
}

func TestServer_ChamadoDeSuporte(t *testing.T) {
	log.SetupTestLogger()
	h := newTestHandler(t)

	promoterToken := login(t, h, "joao@tradelite.com", "promoter")
	adminToken := login(t, h, "admin@tradelite.com", "admin")

	rec, body := do(t, h, http.MethodPost, "/api/support/create_ticket",
		`{"user_id":"1","title":"Falha no envio de fotos","category":"photos"}`, promoterToken)
	require.Equal(t, http.StatusOK, rec.Code)
	ticketID := body["ticket"].(map[string]any)["id"].(string)
	require.NotEmpty(t, ticketID)

	rec, body = do(t, h, http.MethodGet, "/api/support/ticket/"+ticketID, "", promoterToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Open", body["ticket"].(map[string]any)["status"])

	rec, _ = do(t, h, http.MethodPut, "/api/support/ticket/"+ticketID+"/status", `{"status":"Resolved"}`, promoterToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, body = do(t, h, http.MethodPut, "/api/support/ticket/"+ticketID+"/status", `{"status":"Resolved"}`, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Resolved", body["ticket"].(map[string]any)["status"])
}

func TestServer_Borda(t *testing.T) {
	log.SetupTestLogger()
	h := newTestHandler(t)

	t.Run("Healthcheck é público", func(t *testing.T) {
		rec, _ := do(t, h, http.MethodGet, "/healthcheck", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rota protegida sem token retorna 401", func(t *testing.T) {
		rec, body := do(t, h, http.MethodGet, "/api/mentor/dashboard_kpis", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, body["code"])
	})

	t.Run("Token adulterado retorna 401", func(t *testing.T) {
		rec, _ := do(t, h, http.MethodGet, "/api/mentor/dashboard_kpis", "", "abc.def.ghi")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Senha errada retorna 401", func(t *testing.T) {
		rec, body := do(t, h, http.MethodPost, "/api/login", `{"email":"joao@tradelite.com","password":"errada","role":"promoter"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, body["code"])
	})

	t.Run("Rota de API desconhecida retorna 404 em JSON", func(t *testing.T) {
		token := login(t, h, "maria@tradelite.com", "manager")
		rec, body := do(t, h, http.MethodGet, "/api/inexistente", "", token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceNotFound, body["code"])
	})

	t.Run("Preflight de origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
		req.Header.Set("Origin", allowedOrigin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida não recebe cabeçalho CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
