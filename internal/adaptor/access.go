package adaptor

import (
	"net/http"

	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
)

// authorizeSelfOrAdmin gates per-user resources: the requester must be the
// user in the URL or an admin. Writes the error response and returns false
// when access is denied.
func authorizeSelfOrAdmin(w http.ResponseWriter, r *http.Request, userID uuid.UUID) bool {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return false
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	if requesterID != userID && role != "admin" {
		utils.ResponseForbidden(w, "Access denied")
		return false
	}

	return true
}
