package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hbnb/hbnb-server/internal/service"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
)

func (h *Handler) createAmenity(w http.ResponseWriter, r *http.Request) {
	var input models.AmenityInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeServiceError(w, r, "*Handler.createAmenity", err)
		return
	}

	amenity, err := h.services.Facade.CreateAmenity(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, "*Handler.createAmenity", err)
		return
	}

	utils.WriteJSON(w, amenity, http.StatusCreated)
}

func (h *Handler) listAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.services.Facade.GetAllAmenities(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listAmenities", err)
		return
	}

	utils.WriteJSON(w, amenities, http.StatusOK)
}

func (h *Handler) getAmenity(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.services.Facade.GetAmenity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getAmenity", err)
		return
	}

	utils.WriteJSON(w, amenity, http.StatusOK)
}

func (h *Handler) updateAmenity(w http.ResponseWriter, r *http.Request) {
	var update models.AmenityUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, "*Handler.updateAmenity", err)
		return
	}

	amenity, err := h.services.Facade.UpdateAmenity(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateAmenity", err)
		return
	}

	utils.WriteJSON(w, amenity, http.StatusOK)
}

func (h *Handler) deleteAmenity(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.Facade.DeleteAmenity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteAmenity", err)
		return
	}
	if !deleted {
		writeServiceError(w, r, "*Handler.deleteAmenity", service.ErrAmenityNotFound)
		return
	}

	writeDeleted(w, "amenity")
}
