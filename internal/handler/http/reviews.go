package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
)

// createReview stores a review written by the caller; a user_id in the body
// is ignored.
func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.createReview", err)
		return
	}

	var input models.ReviewInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeServiceError(w, r, "*Handler.createReview", err)
		return
	}
	input.UserID = identity.UserID

	review, err := h.services.Facade.CreateReview(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, "*Handler.createReview", err)
		return
	}

	utils.WriteJSON(w, review, http.StatusCreated)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.Facade.GetAllReviews(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listReviews", err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.services.Facade.GetReview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getReview", err)
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateReview", err)
		return
	}

	var update models.ReviewUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, r, "*Handler.updateReview", err)
		return
	}

	review, err := h.services.Facade.UpdateReviewAs(r.Context(), identity, chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateReview", err)
		return
	}

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteReview", err)
		return
	}

	if _, err = h.services.Facade.DeleteReviewAs(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteReview", err)
		return
	}

	writeDeleted(w, "review")
}
