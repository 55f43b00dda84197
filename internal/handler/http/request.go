package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// identityFromRequest returns the caller stored by the auth middleware.
func identityFromRequest(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrEmptyAuthorizationHeader
	}
	return identity, nil
}

func writeDeleted(w http.ResponseWriter, what string) {
	utils.WriteJSON(w, models.MessageResponse{Message: what + " deleted successfully"}, http.StatusOK)
}
