package http

import (
	"net/http"

	"github.com/kerjahub/roster-backend-go/internal/domain/employee"
	"github.com/kerjahub/roster-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	GetWorkProfile(w http.ResponseWriter, r *http.Request)
	GetAvailableShifts(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	profileService employee.ProfileService
}

func NewProfileHandler(profileService employee.ProfileService) ProfileHandler {
	return &profileHandlerImpl{
		profileService: profileService,
	}
}

// GetWorkProfile implements ProfileHandler.
func (h *profileHandlerImpl) GetWorkProfile(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.profileService.GetWorkProfile(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAvailableShifts implements ProfileHandler.
func (h *profileHandlerImpl) GetAvailableShifts(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.profileService.GetAvailableShifts(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
