package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/books-api/internal/api/shared"
	"github.com/phrazzld/books-api/internal/service"
	"github.com/phrazzld/books-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService service.UserService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, MsgInvalidUserData)
		return
	}

	result, err := h.userService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, MsgInvalidUserData)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToAuthResponse(result.User, result.Token))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	result, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgInvalidCredentials, err,
				shared.WithElevatedLogLevel())
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToAuthResponse(result.User, result.Token))
}

// Profile handles GET /api/auth/profile. It must sit behind the auth middleware.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgTokenFailed, auth.ErrMissingToken)
		return
	}

	user, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}
