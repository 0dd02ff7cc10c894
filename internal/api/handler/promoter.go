package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/promoting"
)

func promoterIDParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("promoter_id")
}

func GetVisitHistory(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"visits": service.GetVisitHistory(promoterIDParam(r))})
	}
}

func GetWeeklySchedule(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"schedule": service.GetWeeklySchedule(promoterIDParam(r))})
	}
}

func GetRuptureHistory(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"ruptures": service.GetRuptureHistory(promoterIDParam(r))})
	}
}

func GetPromoterNotifications(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"notifications": service.GetNotifications(promoterIDParam(r))})
	}
}

func GetFeedbackHistory(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"feedbacks": service.GetFeedbackHistory(promoterIDParam(r))})
	}
}

func GetPromoterProductHistory(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"products": service.GetProductHistory(promoterIDParam(r))})
	}
}

func ContestProduct(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ContestRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		promoterID, err := bindPromoterID(r, req.PromoterID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		req.PromoterID = promoterID

		writeSuccess(w, r, map[string]any{
			"contest": service.ContestProduct(r.Context(), req),
			"message": "Contestação enviada para o gestor. Aguarde análise.",
		})
	}
}

func UpdateProfile(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ProfileUpdateRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		promoterID, err := bindPromoterID(r, req.PromoterID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		req.PromoterID = promoterID

		writeSuccess(w, r, map[string]any{
			"profile": service.UpdateProfile(req),
			"message": "Perfil atualizado com sucesso",
		})
	}
}

// RegisterPrice grava o preço encontrado na gôndola e compara com o último registro
func RegisterPrice(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.PriceRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		promoterID, err := bindPromoterID(r, req.PromoterID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		req.PromoterID = promoterID

		registration, err := service.RegisterPrice(r.Context(), req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		payload := map[string]any{
			"price_entry": registration.Entry,
			"comparison":  registration.Comparison,
		}
		if registration.AlertSentToManager {
			payload["alert_sent_to_manager"] = true
			payload["alert_message"] = registration.AlertMessage
		}

		writeSuccess(w, r, payload)
	}
}

func RegisterExpiry(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ExpiryRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		promoterID, err := bindPromoterID(r, req.PromoterID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		req.PromoterID = promoterID

		registration, err := service.RegisterExpiry(r.Context(), req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		payload := map[string]any{"expiry_entry": registration.Entry}
		if registration.Alert != nil {
			payload["expiry_alert"] = registration.Alert
		}

		writeSuccess(w, r, payload)
	}
}

func GetTrainingMaterials(service promoting.PromoterService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"materials": service.GetTrainingMaterials()})
	}
}
