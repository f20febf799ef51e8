package rbac

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(ctx context.Context) ([]EmployeeRoleRow, error)
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// EmployeeRoleRow becomes a casbin grouping rule (employee -> role).
type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

// RolePermissionRow becomes a casbin policy rule (role, resource, action).
type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

// GetEmployeeRoles skips soft-deleted employees so a departed staff member
// loses payroll access on the next policy reload.
func (r *repository) GetEmployeeRoles(ctx context.Context) ([]EmployeeRoleRow, error) {
	var rows []EmployeeRoleRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT er.employee_id::text AS employee_id, er.role_id::text AS role_id
		FROM employee_roles er
		JOIN employees e ON e.id = er.employee_id AND e.deleted_at IS NULL
		ORDER BY er.employee_id, er.role_id`).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var rows []RolePermissionRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT rp.role_id::text AS role_id, LOWER(p.resource) AS resource, LOWER(p.action) AS action
		FROM role_permissions rp
		JOIN permissions p ON p.id = rp.permission_id
		ORDER BY rp.role_id, p.resource, p.action`).
		Scan(&rows).Error
	return rows, err
}
