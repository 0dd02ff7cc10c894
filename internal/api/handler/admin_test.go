package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/administering/mocks"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestAdminRoutes_Permissoes(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		claims         *domain.Claims
		expectCall     bool
		expectedStatus int
	}{
		{name: "Administrador lista categorias", claims: adminClaims, expectCall: true, expectedStatus: http.StatusOK},
		{name: "Gestor não acessa o painel administrativo", claims: managerClaims, expectedStatus: http.StatusForbidden},
		{name: "Promotor não acessa o painel administrativo", claims: promoterClaims, expectedStatus: http.StatusForbidden},
		{name: "Sem autenticação retorna 401", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAdminService(ctrl)
			if tt.expectCall {
				service.EXPECT().ListCategories().Return([]string{"Sucos", "Refrigerantes"})
			}

			rec := serve(t, Admin(service), http.MethodGet, "/api/admin/categories", "", tt.claims)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectCall {
				body := decodeResponse(t, rec)
				assert.Equal(t, true, body["success"])
				assert.Equal(t, []any{"Sucos", "Refrigerantes"}, body["categories"])
			}
		})
	}
}

func TestCreateProduct(t *testing.T) {
	log.SetupTestLogger()

	price := 6.49

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *mocks.MockAdminService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Produto criado com a mensagem de sucesso",
			body: `{"sku":"SKU9001","name":"Suco de Uva 1L","brand":"Del Valle","category":"Sucos","volume":"1000ml","suggested_price":6.49}`,
			mockSetup: func(m *mocks.MockAdminService) {
				m.EXPECT().CreateProduct(domain.ProductRequest{
					SKU:            "SKU9001",
					Name:           "Suco de Uva 1L",
					Brand:          "Del Valle",
					Category:       "Sucos",
					Volume:         "1000ml",
					SuggestedPrice: &price,
				}).Return(&domain.Product{ID: 4321, SKU: "SKU9001", Name: "Suco de Uva 1L", Active: true})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "JSON inválido retorna 400",
			body:           `[1,2`,
			mockSetup:      func(m *mocks.MockAdminService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAdminService(ctrl)
			tt.mockSetup(service)

			rec := serve(t, Admin(service), http.MethodPost, "/api/admin/products", tt.body, adminClaims)

			if tt.expectedCode != "" {
				assertFailure(t, rec, tt.expectedStatus, tt.expectedCode)
				return
			}

			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeResponse(t, rec)
			assert.Equal(t, "Produto criado com sucesso", body["message"])
			product := body["product"].(map[string]any)
			assert.Equal(t, "SKU9001", product["sku"])
		})
	}
}

func TestContactSupport(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockAdminService(ctrl)
	service.EXPECT().ContactSupport(domain.SupportContactRequest{Subject: "Fatura", Message: "Cobrança duplicada", Priority: "Alta"}).
		Return(&domain.AdminTicket{ID: "TL123", Type: "admin_support", Status: "Aberto"})

	rec := serve(t, Admin(service), http.MethodPost, "/api/admin/support_contact",
		`{"subject":"Fatura","message":"Cobrança duplicada","priority":"Alta"}`, adminClaims)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "TL123", body["ticket"].(map[string]any)["id"])
	assert.Contains(t, body["message"], "4h úteis")
}
