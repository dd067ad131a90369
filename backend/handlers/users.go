package handlers

import (
	"net/http"

	"github.com/overpowerdb/deckvault/backend/middleware"
	"github.com/overpowerdb/deckvault/deckvault/database/models"
)

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Role     string `json:"role" validate:"omitempty,oneof=USER ADMIN GUEST"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	APIToken string `json:"apiToken"`
	Role     string `json:"role"`
}

// CreateUser provisions an account and issues its API token. Admin only; the
// token is returned exactly once.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	if caller.Role != models.RoleAdmin {
		respondError(w, r, http.StatusForbidden, "Admin access required")
		return
	}

	var req createUserRequest
	if !h.decode(w, r, &req) {
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user, err := h.users.Create(r.Context(), req.Username, role)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondCreated(w, r, userResponse{
		ID:       user.ID,
		Username: user.Username,
		APIToken: user.APIToken,
		Role:     user.Role,
	})
}
