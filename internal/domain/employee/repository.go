package employee

import "context"

// EmployeeRepository is the directory the payroll engine reads from.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)

	// UpdateCarryForward commits a new carry-forward balance using a
	// compare-and-swap on CarryForwardVersion. When the stored version
	// no longer matches expectedVersion it returns
	// ErrCarryForwardConflict and writes nothing.
	UpdateCarryForward(ctx context.Context, id string, balance float64, expectedVersion int) error
}
