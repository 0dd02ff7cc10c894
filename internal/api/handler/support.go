package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/supporting"
)

func ListFAQ(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		writeSuccess(w, r, map[string]any{"faq_items": service.ListFAQ(category)})
	}
}

func GetFAQ(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := service.GetFAQ(httprouter.ParamsFromContext(r.Context()).ByName("faq_id"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{"faq_item": item})
	}
}

func GetErrorCode(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := service.GetErrorCode(httprouter.ParamsFromContext(r.Context()).ByName("code"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{"error_info": info})
	}
}

func CreateTicket(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.TicketRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		userID, err := bindUserID(r, req.UserID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		req.UserID = userID

		ticket, err := service.CreateTicket(r.Context(), req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{
			"ticket":  ticket,
			"message": "Chamado criado com sucesso. Resposta esperada em até 2h úteis.",
		})
	}
}

func GetTicket(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticket, err := service.GetTicket(r.Context(), httprouter.ParamsFromContext(r.Context()).ByName("ticket_id"))
		if err != nil {
			handleError(w, r, err)
			return
		}
		if err := canReadTicket(r, ticket); err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{"ticket": ticket})
	}
}

// UpdateTicketStatus é usado pela equipe de suporte para avançar o chamado
func UpdateTicketStatus(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.StatusUpdateRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		ticketID := httprouter.ParamsFromContext(r.Context()).ByName("ticket_id")
		ticket, err := service.UpdateTicketStatus(r.Context(), ticketID, req.Status)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{
			"ticket":  ticket,
			"message": "Status do chamado atualizado",
		})
	}
}

func ListTickets(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tickets, err := service.ListTickets(r.Context(), httprouter.ParamsFromContext(r.Context()).ByName("user_id"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{"tickets": tickets})
	}
}

func GetUserInfo(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := httprouter.ParamsFromContext(r.Context()).ByName("user_id")

		info, err := service.GetUserInfo(r.Context(), userID, r.URL.Query().Get("type"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{
			"user_info":        info.UserInfo,
			"activity_history": info.ActivityHistory,
			"tickets_history":  info.TicketsHistory,
		})
	}
}

func StartChat(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ChatRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		userID, err := bindUserID(r, req.UserID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		req.UserID = userID

		session, err := service.StartChat(req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{"chat_session": session})
	}
}

func EscalateToHuman(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.EscalationRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		escalation := service.EscalateToHuman(req)
		writeSuccess(w, r, map[string]any{
			"session_id":     escalation.SessionID,
			"message":        escalation.Message,
			"queue_position": escalation.QueuePosition,
		})
	}
}

func UrgentSupport(service supporting.SupportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UrgentSupportRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		userID, err := bindUserID(r, req.UserID)
		if err != nil {
			handleError(w, r, err)
			return
		}
		req.UserID = userID

		urgent := service.UrgentSupport(req)
		writeSuccess(w, r, map[string]any{
			"message":            urgent.Message,
			"ticket_id":          urgent.TicketID,
			"estimated_response": urgent.EstimatedResponse,
		})
	}
}
