package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/handler/http/middleware"
	"github.com/sumit123-456/backend-project/internal/handler/http/response"
)

type AttendanceHandler struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.CheckIn(r.Context(), middleware.EmployeeID(r), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in", resp)
}

func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.CheckOut(r.Context(), middleware.EmployeeID(r), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", resp)
}

func (h *AttendanceHandler) Today(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.Today(r.Context(), middleware.EmployeeID(r), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListMine returns the caller's attendance for one month.
func (h *AttendanceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.listFor(w, r, middleware.EmployeeID(r))
}

// ListForEmployee returns any employee's attendance for one month.
func (h *AttendanceHandler) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	h.listFor(w, r, chi.URLParam(r, "employeeID"))
}

func (h *AttendanceHandler) listFor(w http.ResponseWriter, r *http.Request, employeeID string) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	resp, err := h.attendanceService.ListByMonth(r.Context(), attendance.GetAttendanceRequest{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *AttendanceHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	h.listLogsFor(w, r, middleware.EmployeeID(r))
}

// ListLogsForEmployee exposes the check audit trail to HR.
func (h *AttendanceHandler) ListLogsForEmployee(w http.ResponseWriter, r *http.Request) {
	h.listLogsFor(w, r, chi.URLParam(r, "employeeID"))
}

func (h *AttendanceHandler) listLogsFor(w http.ResponseWriter, r *http.Request, employeeID string) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	resp, err := h.attendanceService.ListLogs(r.Context(), employeeID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Sweep lets HR force the office-close sweep instead of waiting for
// the scheduled run.
func (h *AttendanceHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.Sweep(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sweep completed", resp)
}
