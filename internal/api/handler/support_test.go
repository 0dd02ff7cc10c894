package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/supporting"
	"github.com/vfg2006/tradelite-api/internal/usecases/supporting/mocks"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestGetFAQ(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		faqID          string
		mockSetup      func(m *mocks.MockSupportService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:  "Item existente",
			faqID: "2",
			mockSetup: func(m *mocks.MockSupportService) {
				m.EXPECT().GetFAQ("2").Return(&domain.FAQItem{ID: 2, Title: "Erro ao enviar fotos"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Item inexistente retorna 404",
			faqID: "99",
			mockSetup: func(m *mocks.MockSupportService) {
				m.EXPECT().GetFAQ("99").Return(nil,
					domain.NewError(supporting.ErrFAQNotFound, apiErrors.ErrResourceNotFound, "Item do FAQ não encontrado"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSupportService(ctrl)
			tt.mockSetup(service)

			rec := serve(t, Support(service), http.MethodGet, "/api/support/faq/"+tt.faqID, "", promoterClaims)

			if tt.expectedCode != "" {
				assertFailure(t, rec, tt.expectedStatus, tt.expectedCode)
				return
			}

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, decodeResponse(t, rec), "faq_item")
		})
	}
}

func TestListFAQ_Categoria(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupportService(ctrl)
	service.EXPECT().ListFAQ("photos").Return([]domain.FAQItem{{ID: 2, Category: "photos"}})

	rec := serve(t, Support(service), http.MethodGet, "/api/support/faq?category=photos", "", managerClaims)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeResponse(t, rec)["faq_items"], 1)
}

func TestUpdateTicketStatus(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		claims         *domain.Claims
		mockSetup      func(m *mocks.MockSupportService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "Administrador avança o chamado",
			claims: adminClaims,
			mockSetup: func(m *mocks.MockSupportService) {
				m.EXPECT().UpdateTicketStatus(gomock.Any(), "TL-abc123", "Resolved").
					Return(&domain.Ticket{ID: "TL-abc123", Status: domain.TicketResolved}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Regressão de status retorna 400",
			claims: adminClaims,
			mockSetup: func(m *mocks.MockSupportService) {
				m.EXPECT().UpdateTicketStatus(gomock.Any(), "TL-abc123", "Resolved").Return(nil,
					domain.NewError(supporting.ErrStatusRegression, apiErrors.ErrInvalidTransition, "Não é possível mudar o chamado de Closed para Resolved"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidTransition,
		},
		{
			name:           "Promotor não altera status",
			claims:         promoterClaims,
			mockSetup:      func(m *mocks.MockSupportService) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrInsufficientPrivilege,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSupportService(ctrl)
			tt.mockSetup(service)

			rec := serve(t, Support(service), http.MethodPut, "/api/support/ticket/TL-abc123/status", `{"status":"Resolved"}`, tt.claims)

			if tt.expectedCode != "" {
				assertFailure(t, rec, tt.expectedStatus, tt.expectedCode)
				return
			}

			assert.Equal(t, tt.expectedStatus, rec.Code)
			ticket := decodeResponse(t, rec)["ticket"].(map[string]any)
			assert.Equal(t, "Resolved", ticket["status"])
		})
	}
}

func TestGetUserInfo(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		path           string
		claims         *domain.Claims
		expectType     string
		expectedStatus int
	}{
		{name: "Usuário consulta as próprias informações", path: "/api/support/user_info/2?type=gestor", claims: managerClaims, expectType: "gestor", expectedStatus: http.StatusOK},
		{name: "Gestor não consulta informações de outro usuário", path: "/api/support/user_info/1", claims: managerClaims, expectedStatus: http.StatusForbidden},
		{name: "Administrador consulta qualquer usuário", path: "/api/support/user_info/1", claims: adminClaims, expectType: "", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSupportService(ctrl)
			if tt.expectedStatus == http.StatusOK {
				service.EXPECT().GetUserInfo(gomock.Any(), gomock.Any(), tt.expectType).Return(&domain.UserSupportInfo{
					UserInfo:        domain.TechnicalInfo{UserID: "1"},
					ActivityHistory: []domain.Activity{},
					TicketsHistory:  []domain.Ticket{},
				}, nil)
			}

			rec := serve(t, Support(service), http.MethodGet, tt.path, "", tt.claims)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				body := decodeResponse(t, rec)
				assert.Contains(t, body, "user_info")
				assert.Contains(t, body, "activity_history")
				assert.Contains(t, body, "tickets_history")
			}
		})
	}
}

func TestCreateTicket_FalhaDoRepositorio(t *testing.T) {
	log.SetupTestLogger()

	repoErr := errors.New("pq: duplicate key value")

	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupportService(ctrl)
	service.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).Return(nil,
		domain.NewError(repoErr, apiErrors.ErrDatabaseOperation, "Erro ao salvar chamado"))

	rec := serve(t, Support(service), http.MethodPost, "/api/support/create_ticket", `{"user_id":"1","title":"Problema"}`, promoterClaims)

	assertFailure(t, rec, http.StatusInternalServerError, apiErrors.ErrDatabaseOperation)
	assert.NotContains(t, rec.Body.String(), repoErr.Error())
}

func TestEscalateAndUrgent(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupportService(ctrl)
	service.EXPECT().EscalateToHuman(domain.EscalationRequest{SessionID: "chat_abc"}).Return(&domain.Escalation{
		SessionID:     "chat_abc",
		Message:       "Conectando você com um atendente humano. Tempo estimado: 3-5 minutos.",
		QueuePosition: 3,
	})
	service.EXPECT().UrgentSupport(gomock.Any()).Return(&domain.UrgentTicket{
		TicketID:          "URG042",
		Message:           "Solicitação de atendimento urgente registrada.",
		EstimatedResponse: "15 minutos",
	})

	routes := Support(service)

	rec := serve(t, routes, http.MethodPost, "/api/support/escalate_to_human", `{"session_id":"chat_abc"}`, promoterClaims)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), decodeResponse(t, rec)["queue_position"])

	rec = serve(t, routes, http.MethodPost, "/api/support/urgent_support", `{"user_id":"1","message":"Sistema fora do ar"}`, promoterClaims)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "URG042", body["ticket_id"])
	assert.Equal(t, "15 minutos", body["estimated_response"])
}

func TestCreateTicket_IdentidadeDoToken(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		body           string
		claims         *domain.Claims
		expectedUserID string
		expectedStatus int
		expectedCode   string
	}{
		{name: "Sem user_id usa o do token", body: `{"title":"Fotos"}`, claims: promoterClaims, expectedUserID: "1", expectedStatus: http.StatusOK},
		{name: "Mesmo user_id do token", body: `{"user_id":"1","title":"Fotos"}`, claims: promoterClaims, expectedUserID: "1", expectedStatus: http.StatusOK},
		{name: "Promotor não abre chamado por outro usuário", body: `{"user_id":"2","title":"Fotos"}`, claims: promoterClaims, expectedStatus: http.StatusForbidden, expectedCode: apiErrors.ErrIdentityMismatch},
		{name: "Gestor não abre chamado por outro usuário", body: `{"user_id":"1","title":"Fotos"}`, claims: managerClaims, expectedStatus: http.StatusForbidden, expectedCode: apiErrors.ErrIdentityMismatch},
		{name: "Administrador abre chamado por qualquer usuário", body: `{"user_id":"2","title":"Fotos"}`, claims: adminClaims, expectedUserID: "2", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSupportService(ctrl)
			if tt.expectedCode == "" {
				service.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req domain.TicketRequest) (*domain.Ticket, error) {
						assert.Equal(t, tt.expectedUserID, req.UserID)
						return &domain.Ticket{ID: "TL-abc123", UserID: req.UserID, Status: domain.TicketOpen}, nil
					})
			}

			rec := serve(t, Support(service), http.MethodPost, "/api/support/create_ticket", tt.body, tt.claims)

			if tt.expectedCode != "" {
				assertFailure(t, rec, tt.expectedStatus, tt.expectedCode)
				return
			}

			assert.Equal(t, tt.expectedStatus, rec.Code)
			ticket := decodeResponse(t, rec)["ticket"].(map[string]any)
			assert.Equal(t, tt.expectedUserID, ticket["user_id"])
		})
	}
}

func TestStartChatEUrgente_IdentidadeDoToken(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupportService(ctrl)
	service.EXPECT().StartChat(domain.ChatRequest{UserID: "1", Message: "Oi"}).
		Return(&domain.ChatSession{SessionID: "chat_abc", UserID: "1"}, nil)
	service.EXPECT().UrgentSupport(domain.UrgentSupportRequest{UserID: "2", Message: "Fora do ar"}).
		Return(&domain.UrgentTicket{TicketID: "URG001"})

	routes := Support(service)

	rec := serve(t, routes, http.MethodPost, "/api/support/chat/start", `{"message":"Oi"}`, promoterClaims)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, routes, http.MethodPost, "/api/support/chat/start", `{"user_id":"3","message":"Oi"}`, promoterClaims)
	assertFailure(t, rec, http.StatusForbidden, apiErrors.ErrIdentityMismatch)

	rec = serve(t, routes, http.MethodPost, "/api/support/urgent_support", `{"user_id":"3","message":"Fora do ar"}`, managerClaims)
	assertFailure(t, rec, http.StatusForbidden, apiErrors.ErrIdentityMismatch)

	rec = serve(t, routes, http.MethodPost, "/api/support/urgent_support", `{"message":"Fora do ar"}`, managerClaims)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTicket_SomenteDonoOuAdministrador(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		claims         *domain.Claims
		expectedStatus int
		expectedCode   string
	}{
		{name: "Dono lê o próprio chamado", claims: promoterClaims, expectedStatus: http.StatusOK},
		{name: "Administrador lê qualquer chamado", claims: adminClaims, expectedStatus: http.StatusOK},
		{name: "Gestor não lê chamado de outro usuário", claims: managerClaims, expectedStatus: http.StatusForbidden, expectedCode: apiErrors.ErrIdentityMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSupportService(ctrl)
			service.EXPECT().GetTicket(gomock.Any(), "TL-abc123").
				Return(&domain.Ticket{ID: "TL-abc123", UserID: "1", Status: domain.TicketOpen}, nil)

			rec := serve(t, Support(service), http.MethodGet, "/api/support/ticket/TL-abc123", "", tt.claims)

			if tt.expectedCode != "" {
				assertFailure(t, rec, tt.expectedStatus, tt.expectedCode)
				assert.NotContains(t, rec.Body.String(), "TL-abc123")
				return
			}

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, decodeResponse(t, rec), "ticket")
		})
	}
}
