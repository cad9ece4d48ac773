package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/handler/http/response"
	payrollService "github.com/agrovista-hr/payroll-backend-go/internal/service/payroll"
	reportService "github.com/agrovista-hr/payroll-backend-go/internal/service/report"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
	Paysheet(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollSvc *payrollService.PayrollService
	reportSvc  *reportService.ReportService
}

func NewPayrollHandler(payrollSvc *payrollService.PayrollService, reportSvc *reportService.ReportService) PayrollHandler {
	return &payrollHandlerImpl{payrollSvc: payrollSvc, reportSvc: reportSvc}
}

// Preview computes the month without persisting anything. With
// employee_id it returns one row, otherwise the whole month.
func (h *payrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	employeeID := r.URL.Query().Get("employee_id")

	if employeeID != "" {
		row, err := h.payrollSvc.PreviewEmployeeMonth(r.Context(), employeeID, month)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, payroll.ToRowResponse(row))
		return
	}

	rows, err := h.payrollSvc.PreviewMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toRowResponses(rows))
}

func (h *payrollHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req payroll.SubmitPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.SubmittedBy = userIDFromContext(r)

	result, err := h.payrollSvc.SubmitMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, fmt.Sprintf("Payroll submitted for %d employee(s)", result.Committed), result)
}

func (h *payrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	rows, err := h.payrollSvc.ListRows(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, toRowResponses(rows))
}

func (h *payrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	row, err := h.payrollSvc.GetRow(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToRowResponse(row))
}

func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month := r.URL.Query().Get("month")

	pdf, err := h.reportSvc.PayslipPDF(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s-%s.pdf"`, employeeID, month))
	w.Write(pdf)
}

func (h *payrollHandlerImpl) Paysheet(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	workbook, err := h.reportSvc.PaysheetXLSX(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="paysheet-%s.xlsx"`, month))
	w.Write(workbook)
}

func toRowResponses(rows []payroll.MonthlyPayrollRow) []payroll.PayrollRowResponse {
	responses := make([]payroll.PayrollRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, payroll.ToRowResponse(row))
	}
	return responses
}
