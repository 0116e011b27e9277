package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sumit123-456/backend-project/internal/domain/leave"
	"github.com/sumit123-456/backend-project/internal/handler/http/middleware"
	"github.com/sumit123-456/backend-project/internal/handler/http/response"
)

type LeaveHandler struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

func (h *LeaveHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	resp, err := h.leaveService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", resp)
}

func (h *LeaveHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.Get(r.Context(), chi.URLParam(r, "leaveID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListMine returns the caller's own requests.
func (h *LeaveHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	filter := leaveFilterFromQuery(r)
	filter.EmployeeID = &employeeID

	resp, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Requests, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
	})
}

// List returns requests across all employees.
func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := leaveFilterFromQuery(r)
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	resp, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Requests, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
	})
}

func leaveFilterFromQuery(r *http.Request) leave.LeaveFilter {
	var filter leave.LeaveFilter
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	return filter
}

// ListPending returns the requests awaiting the caller's review stage.
func (h *LeaveHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.ListPendingForReviewer(r.Context(), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *LeaveHandler) ReviewAsTeamLeader(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.leaveService.ReviewAsTeamLeader)
}

func (h *LeaveHandler) ReviewAsHR(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.leaveService.ReviewAsHR)
}

func (h *LeaveHandler) review(w http.ResponseWriter, r *http.Request, reviewFn func(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error)) {
	var req leave.ReviewLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.LeaveID = chi.URLParam(r, "leaveID")
	req.ReviewerID = middleware.EmployeeID(r)

	resp, err := reviewFn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request reviewed", resp)
}

func (h *LeaveHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.Cancel(r.Context(), chi.URLParam(r, "leaveID"), middleware.EmployeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", resp)
}
