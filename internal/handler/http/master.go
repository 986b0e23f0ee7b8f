package http

import (
	"encoding/json"
	"net/http"

	"github.com/kerjahub/roster-backend-go/internal/domain/master/pattern"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/store"
	"github.com/kerjahub/roster-backend-go/internal/handler/http/response"
	"github.com/kerjahub/roster-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateWorkPattern(w http.ResponseWriter, r *http.Request)
	CreateStoreLocation(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// CreateWorkPattern implements MasterHandler.
func (h *masterHandlerImpl) CreateWorkPattern(w http.ResponseWriter, r *http.Request) {
	var req pattern.CreateWorkPatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateWorkPattern(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work pattern created successfully", result)
}

// CreateStoreLocation implements MasterHandler.
func (h *masterHandlerImpl) CreateStoreLocation(w http.ResponseWriter, r *http.Request) {
	var req store.CreateStoreLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateStoreLocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Store location created successfully", result)
}
