package payprofile

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payprofile_repo.go -destination=mock/payprofile_repo_mock.go -package=mock
type Repository interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeePayProfile, error)
	ListEligible(ctx context.Context, roles []string) ([]EligibleEmployee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*EmployeePayProfile, error) {
	var profile EmployeePayProfile
	err := r.db.WithContext(ctx).
		Table("employee_pay_profiles").
		Joins("JOIN employees ON employees.id = employee_pay_profiles.employee_id").
		Where("employee_pay_profiles.employee_id = ?", employeeID).
		Where("employees.deleted_at IS NULL").
		Select("employee_pay_profiles.*").
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListEligible returns active employees that have a pay profile and hold at
// least one of roles. An employee with several eligible roles appears once.
func (r *repository) ListEligible(ctx context.Context, roles []string) ([]EligibleEmployee, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	query := `
SELECT DISTINCT ON (employees.id)
	employees.id AS employee_id,
	employees.full_name,
	COALESCE(departments.name, '') AS department_name,
	employee_pay_profiles.base_annual_salary,
	employee_pay_profiles.fixed_deductions,
	employee_pay_profiles.tax_rate,
	employee_pay_profiles.allowance_hra,
	employee_pay_profiles.allowance_da,
	employee_pay_profiles.allowance_other,
	employee_pay_profiles.bonus_target,
	employee_pay_profiles.updated_at
FROM employee_pay_profiles
JOIN employees ON employees.id = employee_pay_profiles.employee_id
LEFT JOIN departments ON departments.id = employees.department_id
JOIN employee_roles ON employee_roles.employee_id = employees.id
JOIN roles ON roles.id = employee_roles.role_id
WHERE employees.deleted_at IS NULL
	AND roles.name IN ?
ORDER BY employees.id
`

	var rows []eligibleRow
	if err := r.db.WithContext(ctx).Raw(query, roles).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]EligibleEmployee, len(rows))
	for i, row := range rows {
		out[i] = row.toEligibleEmployee()
	}
	return out, nil
}
