package handler

import (
	"net/http"

	"github.com/vfg2006/tradelite-api/internal/usecases/authenticating"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeBody(r, &req); err != nil {
			handleError(w, r, err)
			return
		}

		identity, token, err := service.Login(req.Email, req.Password, req.Role)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeSuccess(w, r, map[string]any{
			"user":  identity,
			"token": token,
		})
	}
}
