package http

import (
	"net/http"

	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.LoginRequest
	if err := decodeJSON(w, r, &credentials); err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	log.Debug().Str("user_id", token.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, token, http.StatusOK)
}
