package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffsync/attendance-backend-go/internal/domain/wfh"
	"github.com/staffsync/attendance-backend-go/internal/handler/http/response"
)

type WFHHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type wfhHandlerImpl struct {
	wfhService wfh.WFHService
}

func NewWFHHandler(wfhService wfh.WFHService) WFHHandler {
	return &wfhHandlerImpl{
		wfhService: wfhService,
	}
}

// Create implements WFHHandler.
func (h *wfhHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req wfh.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode wfh request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.wfhService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work-from-home request created", result)
}

// ListPending implements WFHHandler.
func (h *wfhHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	result, err := h.wfhService.ListPending(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee implements WFHHandler.
func (h *wfhHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.wfhService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Decide implements WFHHandler.
func (h *wfhHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req wfh.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode wfh decision body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "requestID")

	result, err := h.wfhService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work-from-home request updated", result)
}
