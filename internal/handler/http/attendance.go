package http

import (
	"encoding/json"
	"net/http"

	attendanceDomain "github.com/agrovista-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/handler/http/response"
	attendanceService "github.com/agrovista-hr/payroll-backend-go/internal/service/attendance"
	payrollService "github.com/agrovista-hr/payroll-backend-go/internal/service/payroll"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ListEmployeeMonth(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	LateReport(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceSvc *attendanceService.AttendanceService
	payrollSvc    *payrollService.PayrollService
}

func NewAttendanceHandler(attendanceSvc *attendanceService.AttendanceService, payrollSvc *payrollService.PayrollService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceSvc: attendanceSvc, payrollSvc: payrollSvc}
}

func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendanceDomain.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceSvc.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Attendance recorded", result)
}

func (h *attendanceHandlerImpl) ListEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	records, err := h.attendanceSvc.ListEmployeeMonth(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// MonthlySummary exposes the aggregator output used by the review
// screens before a month is submitted.
func (h *attendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	month := r.URL.Query().Get("month")

	period, summary, err := h.payrollSvc.MonthlySummary(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToSummaryResponse(period, summary))
}

func (h *attendanceHandlerImpl) LateReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.payrollSvc.LateReport(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}
