package http

import (
	"encoding/json"
	"net/http"

	employeeDomain "github.com/agrovista-hr/payroll-backend-go/internal/domain/employee"
	"github.com/agrovista-hr/payroll-backend-go/internal/handler/http/response"
	employeeService "github.com/agrovista-hr/payroll-backend-go/internal/service/employee"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeSvc *employeeService.EmployeeService
}

func NewEmployeeHandler(employeeSvc *employeeService.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeSvc: employeeSvc}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeDomain.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeSvc.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", result)
}

func (h *employeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeSvc.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
