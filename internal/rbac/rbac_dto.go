package rbac

import "school-erp/internal/domain"

type EnforceRequest = domain.EnforceRequest

type EnforceResponse = domain.EnforceResponse

type CapabilitiesResponse struct {
	EmployeeID   string   `json:"employee_id"`
	Capabilities []string `json:"capabilities"`
}
