package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sumit123-456/backend-project/internal/domain/summary"
	"github.com/sumit123-456/backend-project/internal/handler/http/middleware"
	"github.com/sumit123-456/backend-project/internal/handler/http/response"
)

type SummaryHandler struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

func (h *SummaryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req summary.GenerateSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.summaryService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Summary generated", resp)
}

func (h *SummaryHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	h.getFor(w, r, middleware.EmployeeID(r))
}

func (h *SummaryHandler) GetForEmployee(w http.ResponseWriter, r *http.Request) {
	h.getFor(w, r, chi.URLParam(r, "employeeID"))
}

func (h *SummaryHandler) getFor(w http.ResponseWriter, r *http.Request, employeeID string) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	resp, err := h.summaryService.Get(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *SummaryHandler) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	resp, err := h.summaryService.ListByMonth(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *SummaryHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	var req summary.FinalizeSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.FinalizedBy = middleware.EmployeeID(r)

	resp, err := h.summaryService.Finalize(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Summary finalized", resp)
}
