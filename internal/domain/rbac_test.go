package domain_test

import (
	"strings"
	"testing"

	"school-erp/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRequester_CanAccessEmployee(t *testing.T) {
	self := domain.Requester{EmployeeID: "emp-1"}
	manager := domain.Requester{EmployeeID: "emp-9", Capabilities: []string{"payroll:read", domain.CapabilityPayrollManage}}
	anonymous := domain.Requester{}

	assert.True(t, self.CanAccessEmployee("emp-1"))
	assert.False(t, self.CanAccessEmployee("emp-2"))
	assert.True(t, manager.CanAccessEmployee("emp-2"))
	assert.False(t, anonymous.CanAccessEmployee(""))
}

func TestRequester_CanAccessEmployee_UUIDForms(t *testing.T) {
	const id = "3f6c1a8e-52b4-4d0e-9a77-1c2b3d4e5f60"
	upper := strings.ToUpper(id)

	cases := []struct {
		name      string
		claim     string
		requested string
		want      bool
	}{
		{"uppercase claim", upper, id, true},
		{"uppercase request", id, upper, true},
		{"urn form", "urn:uuid:" + id, id, true},
		{"different employee", upper, "3f6c1a8e-52b4-4d0e-9a77-1c2b3d4e5f61", false},
		{"non uuid differs only by case", "EMP-1", "emp-1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := domain.Requester{EmployeeID: tc.claim}
			assert.Equal(t, tc.want, r.CanAccessEmployee(tc.requested))
		})
	}
}
