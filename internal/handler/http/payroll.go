package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sumit123-456/backend-project/internal/domain/payroll"
	"github.com/sumit123-456/backend-project/internal/handler/http/middleware"
	"github.com/sumit123-456/backend-project/internal/handler/http/response"
)

type PayrollHandler struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

func (h *PayrollHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.payrollService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll calculated", resp)
}

func (h *PayrollHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	h.getFor(w, r, middleware.EmployeeID(r))
}

func (h *PayrollHandler) GetForEmployee(w http.ResponseWriter, r *http.Request) {
	h.getFor(w, r, chi.URLParam(r, "employeeID"))
}

func (h *PayrollHandler) getFor(w http.ResponseWriter, r *http.Request, employeeID string) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	resp, err := h.payrollService.Get(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *PayrollHandler) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	resp, err := h.payrollService.ListByMonth(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Delete discards an unprocessed payroll record so it can be
// recalculated from a corrected summary.
func (h *PayrollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	err := h.payrollService.Delete(r.Context(), chi.URLParam(r, "employeeID"), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted", nil)
}

func (h *PayrollHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ProcessedBy = middleware.EmployeeID(r)

	resp, err := h.payrollService.Process(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll processed", resp)
}
