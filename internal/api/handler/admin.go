package handler

import (
	"net/http"

	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/administering"
)

func GetBillingInfo(service administering.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"billing_info": service.GetBillingInfo()})
	}
}

func ListProducts(service administering.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"products": service.ListProducts()})
	}
}

func CreateProduct(service administering.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ProductRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{
			"product": service.CreateProduct(req),
			"message": "Produto criado com sucesso",
		})
	}
}

func ListStores(service administering.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"stores": service.ListStores()})
	}
}

func CreateStore(service administering.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.StoreRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{
			"store":   service.CreateStore(req),
			"message": "Loja criada com sucesso",
		})
	}
}

func ListCategories(service administering.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"categories": service.ListCategories()})
	}
}

func ListBrands(service administering.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"brands": service.ListBrands()})
	}
}

// ContactSupport abre um chamado do administrador com a equipe TradeLite
func ContactSupport(service administering.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SupportContactRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{
			"ticket":  service.ContactSupport(req),
			"message": "Solicitação enviada para o suporte TradeLite. Retorno em até 4h úteis.",
		})
	}
}

func GetDashboardStats(service administering.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, r, map[string]any{"stats": service.GetDashboardStats()})
	}
}
