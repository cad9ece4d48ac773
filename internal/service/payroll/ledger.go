package payroll

import (
	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/numeric"
)

// ApplyLedger runs the leave ledger for one employee-month. The
// entitlement is a monthly refillable pool with rollover: consumption
// beyond the pool becomes ExcessLeaveDays (unpaid, fed to the LOP
// calculator) and the carry-forward balance never goes negative.
//
// This function is pure; persisting NewCarryForward happens only on the
// finalize path, never on preview.
func ApplyLedger(priorCarryForward float64, leaveDays float64, lateDebit float64, policy payroll.Policy) payroll.LedgerResult {
	prior := numeric.ClampDays(priorCarryForward)
	available := prior + policy.MonthlyLeaveEntitlement
	consumption := numeric.ClampDays(leaveDays) + numeric.ClampDays(lateDebit)

	result := payroll.LedgerResult{LeavesConsumed: consumption}
	if consumption <= available {
		result.NewCarryForward = available - consumption
		return result
	}
	result.NewCarryForward = 0
	result.ExcessLeaveDays = consumption - available
	return result
}
