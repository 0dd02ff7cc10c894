package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/mentoring"
)

// AnalyzeVisit pontua o checklist da visita e devolve a mensagem do Mentor PDV
func AnalyzeVisit(service mentoring.MentorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AnalyzeVisitRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		result := service.AnalyzeVisit(req)
		writeSuccess(w, r, map[string]any{
			"analysis":       result.Analysis,
			"mentor_message": result.MentorMessage,
		})
	}
}

func GetInsights(service mentoring.MentorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := httprouter.ParamsFromContext(r.Context()).ByName("store_name")

		insights := service.GetInsights(store)
		writeSuccess(w, r, map[string]any{
			"store":            insights.Store,
			"insights":         insights.Insights,
			"historical_trend": insights.HistoricalTrend,
			"benchmark":        insights.Benchmark,
		})
	}
}

func GetDashboardKPIs(service mentoring.MentorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"kpis": service.GetDashboardKPIs(r.Context())})
	}
}

func GenerateReport(service mentoring.MentorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ReportRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{"report": service.GenerateReport(req)})
	}
}
