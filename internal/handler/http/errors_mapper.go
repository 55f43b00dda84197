package http

import (
	"errors"
	"net/http"

	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/service"
	"github.com/hbnb/hbnb-server/internal/store"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched in order: the first entry err wraps wins. Domain
// errors come before the generic storage failures they are often wrapped in.
var errorStatuses = []errorStatus{
	{models.ErrValidation, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrSelfReviewForbidden, http.StatusForbidden},
	{ErrAdminRequired, http.StatusForbidden},

	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrPlaceNotFound, http.StatusNotFound},
	{service.ErrAmenityNotFound, http.StatusNotFound},
	{service.ErrReviewNotFound, http.StatusNotFound},

	{service.ErrDuplicateEmail, http.StatusConflict},
	{service.ErrDuplicateAmenityName, http.StatusConflict},
	{service.ErrAlreadyReviewed, http.StatusConflict},
	{store.ErrConflict, http.StatusConflict},
	{store.ErrReferenceViolation, http.StatusConflict},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the mapped status. Messages of
// server errors are not exposed.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Info().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
