package http

import (
	"net/http"

	"github.com/tasche-dev/tasche/pkg/httpx"
)

type UsersHandler struct{}

// HandleMe returns the authenticated user's record.
//
//	@Summary		Get current user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	httpx.APIError
//	@Failure		404	{object}	httpx.APIError	"USER_NOT_FOUND"
//	@Router			/api/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		httpx.ErrInvalidToken.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
