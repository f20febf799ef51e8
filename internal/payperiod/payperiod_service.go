package payperiod

import (
	"context"
	"database/sql"
	"errors"
	"time"

	payperioderrors "school-erp/internal/payperiod/errors"
	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payperiod_service.go -destination=mock/payperiod_service_mock.go -package=mock
type Service interface {
	OpenPeriod(ctx context.Context, actorID string, req OpenPeriodRequest) (PayPeriodResponse, error)
	MarkGenerated(ctx context.Context, actorID, periodID string) (PayPeriodResponse, error)
	GetAll(ctx context.Context) ([]PayPeriodResponse, error)
	GetByID(ctx context.Context, id string) (PayPeriodResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payperiod.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payperiod.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

func (s *service) OpenPeriod(
	ctx context.Context,
	actorID string,
	req OpenPeriodRequest,
) (PayPeriodResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayPeriodResponse{}, payperioderrors.ErrInvalidActorID
	}

	start, end, err := ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return PayPeriodResponse{}, err
	}

	period := &PayPeriod{
		ID:        uuid.New(),
		StartDate: start,
		EndDate:   end,
		Status:    StatusOpen,
		CreatedBy: actorUUID,
	}

	if err := s.repo.Create(ctx, period); err != nil {
		s.logger.Error("open pay period persist failed", zap.String("request_id", rid), zap.Error(err))
		return PayPeriodResponse{}, apperror.TransactionFailure(err)
	}

	s.logger.Info("pay period opened",
		zap.String("request_id", rid),
		zap.String("period_id", period.ID.String()),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	return MapToResponse(*period), nil
}

// MarkGenerated performs the Open -> Generated transition on its own. The
// formal generator does the same flip inside its batch transaction instead.
func (s *service) MarkGenerated(ctx context.Context, actorID, periodID string) (PayPeriodResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayPeriodResponse{}, payperioderrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(periodID); err != nil {
		return PayPeriodResponse{}, payperioderrors.ErrPeriodNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayPeriodResponse{}, apperror.TransactionFailure(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	period, err := qtx.LockByID(ctx, periodID)
	if err != nil {
		return PayPeriodResponse{}, mapRepositoryError(err)
	}
	if !CanTransition(period.Status, StatusGenerated) {
		return PayPeriodResponse{}, payperioderrors.ErrInvalidStateTransition
	}

	at := s.now().UTC()
	ok, err := qtx.MarkGenerated(ctx, periodID, actorUUID, at)
	if err != nil {
		return PayPeriodResponse{}, apperror.TransactionFailure(err)
	}
	if !ok {
		return PayPeriodResponse{}, payperioderrors.ErrInvalidStateTransition
	}

	if err := tx.Commit(); err != nil {
		return PayPeriodResponse{}, apperror.TransactionFailure(err)
	}

	period.Status = StatusGenerated
	period.GeneratedBy = &actorUUID
	period.GeneratedAt = &at
	return MapToResponse(*period), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayPeriodResponse, error) {
	periods, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list pay periods failed", zap.Error(err))
		return nil, err
	}

	resp := make([]PayPeriodResponse, len(periods))
	for i, p := range periods {
		resp[i] = MapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayPeriodResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayPeriodResponse{}, payperioderrors.ErrPeriodNotFound
	}

	period, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayPeriodResponse{}, mapRepositoryError(err)
	}
	return MapToResponse(*period), nil
}

// ParseRange parses two YYYY-MM-DD dates and requires start <= end.
func ParseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, payperioderrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, payperioderrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, payperioderrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payperioderrors.ErrPeriodNotFound
	}
	return err
}

func MapToResponse(p PayPeriod) PayPeriodResponse {
	resp := PayPeriodResponse{
		ID:        p.ID.String(),
		StartDate: p.StartDate.Format(dateLayout),
		EndDate:   p.EndDate.Format(dateLayout),
		Status:    p.Status,
		CreatedBy: p.CreatedBy.String(),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.GeneratedBy != nil {
		v := p.GeneratedBy.String()
		resp.GeneratedBy = &v
	}
	if p.GeneratedAt != nil {
		v := p.GeneratedAt.Format(time.RFC3339)
		resp.GeneratedAt = &v
	}
	return resp
}
