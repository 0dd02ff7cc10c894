package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/managing"
)

func GetPromoterPerformance(service managing.ManagerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"performance": service.GetPromoterPerformance()})
	}
}

func GetPendingStores(service managing.ManagerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"pending_stores": service.GetPendingStores()})
	}
}

func GetManagerNotifications(service managing.ManagerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		managerID := httprouter.ParamsFromContext(r.Context()).ByName("manager_id")
		writeSuccess(w, r, map[string]any{"notifications": service.GetNotifications(managerID)})
	}
}

func GetPriceVariations(service managing.ManagerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"price_variations": service.GetPriceVariations()})
	}
}

func AssignResponsibility(service managing.ManagerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AssignmentRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{
			"assignment": service.AssignResponsibility(req),
			"message":    "Responsabilidade atribuída com sucesso",
		})
	}
}

// HandleContest aprova, rejeita ou transfere a contestação de um promotor
func HandleContest(service managing.ManagerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ContestDecisionRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		decision, err := service.HandleContest(req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{"result": decision})
	}
}

func GetPromoterProfile(service managing.ManagerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promoterID := httprouter.ParamsFromContext(r.Context()).ByName("promoter_id")

		profile, err := service.GetPromoterProfile(promoterID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{"profile": profile})
	}
}

func ScheduleReevaluation(service managing.ManagerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ReevaluationRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{
			"reevaluation": service.ScheduleReevaluation(req),
			"message":      "Reavaliação agendada e notificação enviada ao promotor",
		})
	}
}

func GetManagerProductHistory(service managing.ManagerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"products": service.GetProductHistory()})
	}
}

func UpdateProduct(service managing.ManagerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ProductUpdateRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{
			"update":  service.UpdateProduct(req),
			"message": "Produto atualizado com sucesso",
		})
	}
}
