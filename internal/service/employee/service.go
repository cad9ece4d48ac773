package employee

import (
	"context"
	"time"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/employee"
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/database"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/numeric"
	"github.com/google/uuid"
)

// EmployeeService is the HR directory surface the payroll engine reads
// salary and carry-forward state from.
type EmployeeService struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) *EmployeeService {
	return &EmployeeService{db: db, employeeRepo: employeeRepo}
}

func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	gross := numeric.ParseAmount(req.GrossSalary)
	if gross.IsNegative() {
		return employee.EmployeeResponse{}, payroll.ErrNegativeGrossSalary
	}
	doj, _ := time.Parse("2006-01-02", req.DateOfJoining)

	emp := employee.Employee{
		ID:               uuid.NewString(),
		Code:             req.Code,
		FullName:         req.FullName,
		Designation:      req.Designation,
		Company:          employee.Company(req.Company),
		GrossSalary:      gross,
		DateOfJoining:    doj,
		EmploymentStatus: employee.EmploymentStatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeService) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}
