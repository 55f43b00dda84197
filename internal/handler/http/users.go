package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hbnb/hbnb-server/internal/service"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var input models.UserInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeServiceError(w, r, "*Handler.createUser", err)
		return
	}

	user, err := h.services.Facade.CreateUser(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, "*Handler.createUser", err)
		return
	}

	utils.WriteJSON(w, user.Response(), http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.Facade.GetAllUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listUsers", err)
		return
	}

	response := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, user.Response())
	}
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.Facade.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getUser", err)
		return
	}

	utils.WriteJSON(w, user.Response(), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateUser", err)
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, "*Handler.updateUser", err)
		return
	}

	user, err := h.services.Facade.UpdateUserAs(r.Context(), identity, chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateUser", err)
		return
	}

	utils.WriteJSON(w, user.Response(), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.Facade.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteUser", err)
		return
	}
	if !deleted {
		writeServiceError(w, r, "*Handler.deleteUser", service.ErrUserNotFound)
		return
	}

	writeDeleted(w, "user")
}
