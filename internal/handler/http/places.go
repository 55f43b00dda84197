package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
)

// createPlace stores a place owned by the caller. Administrators may name
// another owner.
func (h *Handler) createPlace(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.createPlace", err)
		return
	}

	var input models.PlaceInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeServiceError(w, r, "*Handler.createPlace", err)
		return
	}
	if !identity.IsAdmin || input.OwnerID == "" {
		input.OwnerID = identity.UserID
	}

	place, err := h.services.Facade.CreatePlace(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, "*Handler.createPlace", err)
		return
	}

	utils.WriteJSON(w, place, http.StatusCreated)
}

func (h *Handler) listPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.services.Facade.GetAllPlaces(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listPlaces", err)
		return
	}

	utils.WriteJSON(w, places, http.StatusOK)
}

func (h *Handler) getPlace(w http.ResponseWriter, r *http.Request) {
	details, err := h.services.Facade.GetPlaceDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getPlace", err)
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) updatePlace(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updatePlace", err)
		return
	}

	var update models.PlaceUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, "*Handler.updatePlace", err)
		return
	}

	place, err := h.services.Facade.UpdatePlaceAs(r.Context(), identity, chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, "*Handler.updatePlace", err)
		return
	}

	utils.WriteJSON(w, place, http.StatusOK)
}

func (h *Handler) deletePlace(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deletePlace", err)
		return
	}

	placeID := chi.URLParam(r, "id")
	if _, err = h.services.Facade.DeletePlaceAs(r.Context(), identity, placeID); err != nil {
		writeServiceError(w, r, "*Handler.deletePlace", err)
		return
	}

	logger.FromRequest(r).Info().Str("place_id", placeID).Str("by", identity.UserID).Msg("place deleted")
	writeDeleted(w, "place")
}

func (h *Handler) listPlaceReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.Facade.GetReviewsByPlace(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.listPlaceReviews", err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}
