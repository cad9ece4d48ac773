package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company enumerates the group businesses an employee belongs to.
type Company string

const (
	CompanyTandur         Company = "tandur"
	CompanyTalakondapally Company = "talakondapally"
	CompanyOperations     Company = "operations"
	CompanyNutromilk      Company = "nutromilk"
	CompanyAccounts       Company = "accounts"
)

func (c Company) Valid() bool {
	switch c {
	case CompanyTandur, CompanyTalakondapally, CompanyOperations, CompanyNutromilk, CompanyAccounts:
		return true
	}
	return false
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)

// Employee is the directory record the payroll engine reads salary and
// carry-forward state from. CarryForwardVersion backs the optimistic
// lock on month-end finalize.
type Employee struct {
	ID                  string
	Code                string
	FullName            string
	Designation         string
	Company             Company
	GrossSalary         decimal.Decimal
	DateOfJoining       time.Time
	CarryForwardBalance float64
	CarryForwardVersion int
	EmploymentStatus    EmploymentStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
