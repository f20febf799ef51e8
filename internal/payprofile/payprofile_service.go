package payprofile

import (
	"context"
	"errors"
	"time"

	payprofileerrors "school-erp/internal/payprofile/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payprofile_service.go -destination=mock/payprofile_service_mock.go -package=mock
type Service interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (PayProfileResponse, error)
	ListEligibleEmployees(ctx context.Context) ([]EligibleEmployee, error)
}

type service struct {
	repo          Repository
	eligibleRoles []string
	logger        *zap.Logger
}

func NewService(repo Repository, eligibleRoles []string, logger ...*zap.Logger) Service {
	l := zap.L().Named("payprofile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payprofile.service")
	}
	return &service{repo: repo, eligibleRoles: eligibleRoles, logger: l}
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (PayProfileResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayProfileResponse{}, payprofileerrors.ErrInvalidEmployeeID
	}

	profile, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayProfileResponse{}, payprofileerrors.ErrProfileNotFound
		}
		s.logger.Error("get pay profile failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PayProfileResponse{}, err
	}

	return mapToResponse(*profile), nil
}

// ListEligibleEmployees is the employee directory used by formal generation.
func (s *service) ListEligibleEmployees(ctx context.Context) ([]EligibleEmployee, error) {
	employees, err := s.repo.ListEligible(ctx, s.eligibleRoles)
	if err != nil {
		s.logger.Error("list eligible employees failed", zap.Strings("roles", s.eligibleRoles), zap.Error(err))
		return nil, err
	}

	s.logger.Debug("eligible employees loaded",
		zap.Strings("roles", s.eligibleRoles),
		zap.Int("count", len(employees)),
	)
	return employees, nil
}

func mapToResponse(p EmployeePayProfile) PayProfileResponse {
	resp := PayProfileResponse{
		EmployeeID:       p.EmployeeID.String(),
		BaseAnnualSalary: p.BaseAnnualSalary.StringFixed(2),
		FixedDeductions:  p.FixedDeductions.StringFixed(2),
		Allowances: AllowancesResponse{
			HRA:   p.AllowanceHRA.StringFixed(2),
			DA:    p.AllowanceDA.StringFixed(2),
			Other: p.AllowanceOther.StringFixed(2),
		},
		BonusTarget: p.BonusTarget.StringFixed(2),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
	if p.TaxRate.Valid {
		v := p.TaxRate.Decimal.StringFixed(4)
		resp.TaxRate = &v
	}
	return resp
}
