package employee

import (
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code          string `json:"code"`
	FullName      string `json:"full_name"`
	Designation   string `json:"designation"`
	Company       string `json:"company"`
	GrossSalary   string `json:"gross_salary"`
	DateOfJoining string `json:"date_of_joining"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !Company(r.Company).Valid() {
		errs = append(errs, validator.ValidationError{Field: "company", Message: "must be one of tandur, talakondapally, operations, nutromilk, accounts"})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                  string  `json:"id"`
	Code                string  `json:"code"`
	FullName            string  `json:"full_name"`
	Designation         string  `json:"designation"`
	Company             string  `json:"company"`
	GrossSalary         string  `json:"gross_salary"`
	DateOfJoining       string  `json:"date_of_joining"`
	CarryForwardBalance float64 `json:"carry_forward_balance"`
	EmploymentStatus    string  `json:"employment_status"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                  emp.ID,
		Code:                emp.Code,
		FullName:            emp.FullName,
		Designation:         emp.Designation,
		Company:             string(emp.Company),
		GrossSalary:         emp.GrossSalary.StringFixed(2),
		DateOfJoining:       emp.DateOfJoining.Format("2006-01-02"),
		CarryForwardBalance: emp.CarryForwardBalance,
		EmploymentStatus:    string(emp.EmploymentStatus),
	}
}
