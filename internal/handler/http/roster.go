package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kerjahub/roster-backend-go/internal/domain/roster"
	"github.com/kerjahub/roster-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetBookedDates(w http.ResponseWriter, r *http.Request)
	GetMyRosters(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	CancelBatch(w http.ResponseWriter, r *http.Request)

	// Supervisor actions
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	ApproveBatch(w http.ResponseWriter, r *http.Request)
	RejectBatch(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
	}
}

// Submit implements RosterHandler.
func (h *rosterHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req roster.SubmitRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.rosterService.SubmitRoster(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule request submitted", result)
}

// GetBookedDates implements RosterHandler.
func (h *rosterHandlerImpl) GetBookedDates(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		response.BadRequest(w, "Query parameters 'start' and 'end' are required", nil)
		return
	}

	result, err := h.rosterService.GetBookedDates(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyRosters implements RosterHandler.
func (h *rosterHandlerImpl) GetMyRosters(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.rosterService.GetRosterHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Cancel implements RosterHandler.
func (h *rosterHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rosterID := chi.URLParam(r, "rosterID")

	if err := h.rosterService.CancelByEmployee(r.Context(), rosterID, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule request cancelled", nil)
}

// CancelBatch implements RosterHandler.
func (h *rosterHandlerImpl) CancelBatch(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	batchID := chi.URLParam(r, "batchID")

	if err := h.rosterService.CancelBatchByEmployee(r.Context(), batchID, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Submission batch cancelled", nil)
}

// Approve implements RosterHandler.
func (h *rosterHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approverID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rosterID := chi.URLParam(r, "rosterID")

	if err := h.rosterService.Approve(r.Context(), rosterID, approverID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule approved", nil)
}

// Reject implements RosterHandler.
func (h *rosterHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	approverID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req roster.RejectRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "rosterID")

	if err := h.rosterService.Reject(r.Context(), req, approverID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule rejected", nil)
}

// Reset implements RosterHandler.
func (h *rosterHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	rosterID := chi.URLParam(r, "rosterID")

	if err := h.rosterService.ResetToDraft(r.Context(), rosterID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule reset to draft", nil)
}

// ApproveBatch implements RosterHandler.
func (h *rosterHandlerImpl) ApproveBatch(w http.ResponseWriter, r *http.Request) {
	approverID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	batchID := chi.URLParam(r, "batchID")

	if err := h.rosterService.ApproveBatch(r.Context(), batchID, approverID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Submission batch approved", nil)
}

// RejectBatch implements RosterHandler.
func (h *rosterHandlerImpl) RejectBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")

	if err := h.rosterService.RejectBatch(r.Context(), batchID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Submission batch rejected", nil)
}
