package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/mentoring/mocks"
	"github.com/vfg2006/tradelite-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestAnalyzeVisit(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockMentorService(ctrl)
	service.EXPECT().AnalyzeVisit(domain.AnalyzeVisitRequest{
		Store:     "Mercado Central",
		Checklist: map[string]bool{"a": true, "b": true, "c": false, "d": true},
	}).Return(&domain.VisitAnalysisResult{
		Analysis:      domain.VisitAnalysis{Store: "Mercado Central", ChecklistScore: 75, ExecutionGrade: "B"},
		MentorMessage: "Boa execução!",
	})

	rec := serve(t, Mentor(service), http.MethodPost, "/api/mentor/analyze_visit",
		`{"store":"Mercado Central","checklist":{"a":true,"b":true,"c":false,"d":true}}`, promoterClaims)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Boa execução!", body["mentor_message"])
	analysis := body["analysis"].(map[string]any)
	assert.Equal(t, float64(75), analysis["checklist_score"])
	assert.Equal(t, "B", analysis["execution_grade"])
}

func TestGetInsights(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockMentorService(ctrl)
	service.EXPECT().GetInsights("Loja Express").Return(&domain.StoreInsights{
		Store:    "Loja Express",
		Insights: domain.VisitAnalysis{Store: "Loja Express"},
	})

	rec := serve(t, Mentor(service), http.MethodGet, "/api/mentor/get_insights/Loja%20Express", "", managerClaims)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Loja Express", body["store"])
	assert.Contains(t, body, "insights")
	assert.Contains(t, body, "historical_trend")
	assert.Contains(t, body, "benchmark")
}

func TestGetDashboardKPIs(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		claims         *domain.Claims
		expectCall     bool
		expectedStatus int
	}{
		{name: "Promotor consulta o painel", claims: promoterClaims, expectCall: true, expectedStatus: http.StatusOK},
		{name: "Administrador consulta o painel", claims: adminClaims, expectCall: true, expectedStatus: http.StatusOK},
		{name: "Sem autenticação retorna 401", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockMentorService(ctrl)
			if tt.expectCall {
				service.EXPECT().GetDashboardKPIs(gomock.Any()).Return(&domain.DashboardKPIs{TotalStores: 5, ComplianceRate: 80})
			}

			rec := serve(t, Mentor(service), http.MethodGet, "/api/mentor/dashboard_kpis", "", tt.claims)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectCall {
				kpis := decodeResponse(t, rec)["kpis"].(map[string]any)
				assert.Equal(t, float64(5), kpis["total_stores"])
			}
		})
	}
}
