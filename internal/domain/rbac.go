package domain

import (
	"slices"

	"github.com/google/uuid"
)

// CapabilityPayrollManage lets a requester read and issue payroll for any employee.
const CapabilityPayrollManage = "payroll:manage"

type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// Requester is the authenticated caller as seen by payroll reads.
type Requester struct {
	EmployeeID   string
	Capabilities []string
}

func (r Requester) Can(capability string) bool {
	return slices.Contains(r.Capabilities, capability)
}

// CanAccessEmployee reports whether the requester may see payroll data
// belonging to employeeID.
func (r Requester) CanAccessEmployee(employeeID string) bool {
	if r.Can(CapabilityPayrollManage) {
		return true
	}
	return r.EmployeeID != "" && sameEmployee(r.EmployeeID, employeeID)
}

// sameEmployee compares uuids by value, so case and brace forms do not
// matter. Anything that does not parse must match exactly.
func sameEmployee(a, b string) bool {
	ua, errA := uuid.Parse(a)
	ub, errB := uuid.Parse(b)
	if errA == nil && errB == nil {
		return ua == ub
	}
	return a == b
}
