package http

import (
	"encoding/json"
	"net/http"

	"github.com/kerjahub/roster-backend-go/internal/domain/user"
	"github.com/kerjahub/roster-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	UpdatePushToken(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userRepo user.UserRepository
}

func NewUserHandler(userRepo user.UserRepository) UserHandler {
	return &userHandlerImpl{
		userRepo: userRepo,
	}
}

type updatePushTokenRequest struct {
	FCMToken string `json:"fcm_token"`
}

// UpdatePushToken implements UserHandler. An empty token clears the
// registration, which is how the app signs a device out of pushes.
func (h *userHandlerImpl) UpdatePushToken(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req updatePushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.userRepo.UpdateOwnPushToken(r.Context(), userID, req.FCMToken); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Push token updated", nil)
}
