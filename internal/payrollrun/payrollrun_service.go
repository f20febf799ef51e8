package payrollrun

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"school-erp/internal/events"
	"school-erp/internal/messaging/kafka"
	payrollrunerrors "school-erp/internal/payrollrun/errors"
	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/config"
	"school-erp/internal/shared/contextutil"
	"school-erp/internal/shared/counter"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HistoryInvalidator drops cached payment history for employees whose
// run details just committed.
type HistoryInvalidator interface {
	Invalidate(ctx context.Context, employeeIDs ...string) error
}

//go:generate mockgen -source=payrollrun_service.go -destination=mock/payrollrun_service_mock.go -package=mock
type Service interface {
	SaveRun(ctx context.Context, actorID string, req SaveRunRequest) (SaveRunResponse, error)
	GetByID(ctx context.Context, id string) (RunResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	outbox   kafka.OutboxRepository
	history  HistoryInvalidator
	cfg      config.PayrollConfig
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	history HistoryInvalidator,
	cfg config.PayrollConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payrollrun.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollrun.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counterRepo,
		outbox:   outbox,
		history:  history,
		cfg:      cfg,
		validate: newValidator(),
		now:      time.Now,
		logger:   l,
	}
}

// SaveRun freezes a client compiled run. Identical submissions produce
// distinct runs; de-duplication is left to the Idempotency-Key middleware.
func (s *service) SaveRun(ctx context.Context, actorID string, req SaveRunRequest) (SaveRunResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return SaveRunResponse{}, payrollrunerrors.ErrInvalidActorID
	}

	run, err := validateRun(s.validate, req)
	if err != nil {
		return SaveRunResponse{}, err
	}

	if s.cfg.TxTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.TxTimeout)
		defer cancel()
	}

	meta := contextutil.ExtractMetadata(ctx)
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("request_id", meta.RequestID),
		zap.String("actor_id", actorID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin save run tx failed", zap.Error(err))
		return SaveRunResponse{}, apperror.TransactionFailure(err)
	}
	defer tx.Rollback()

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TypePayrollRun)
	if err != nil {
		log.Error("next run number failed", zap.Error(err))
		return SaveRunResponse{}, apperror.TransactionFailure(err)
	}

	details := run.Details
	run.Details = nil
	run.ID = uuid.New()
	run.RunNumber = FormatRunNumber(seq)
	run.RunBy = actorUUID
	run.RunDate = s.now().UTC()

	employeeIDs := make([]string, len(details))
	for i := range details {
		details[i].ID = uuid.New()
		details[i].RunID = run.ID
		employeeIDs[i] = details[i].EmployeeID.String()
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateRun(ctx, run); err != nil {
		log.Error("insert payroll run failed", zap.Error(err))
		return SaveRunResponse{}, apperror.TransactionFailure(err)
	}
	if err := qtx.CreateDetails(ctx, details); err != nil {
		log.Error("insert payroll run details failed", zap.String("run_id", run.ID.String()), zap.Error(err))
		return SaveRunResponse{}, apperror.TransactionFailure(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(
			meta.RequestID,
			"payroll_run",
			run.ID.String(),
			events.PayrollRunSavedType,
			events.PayrollRunSavedTopic,
			events.PayrollRunSavedEvent{
				EventType:   events.PayrollRunSavedType,
				RunID:       run.ID.String(),
				RunNumber:   run.RunNumber,
				RunBy:       actorID,
				EmployeeIDs: employeeIDs,
				OccurredAt:  run.RunDate,
			},
		)
		if err != nil {
			return SaveRunResponse{}, apperror.TransactionFailure(err)
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("append run outbox event failed", zap.Error(err))
			return SaveRunResponse{}, apperror.TransactionFailure(err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit save run tx failed", zap.Error(err))
		return SaveRunResponse{}, apperror.TransactionFailure(err)
	}

	log.Info("payroll run saved",
		zap.String("run_id", run.ID.String()),
		zap.String("run_number", run.RunNumber),
		zap.Int("details", len(details)),
	)

	if s.history != nil {
		if err := s.history.Invalidate(context.WithoutCancel(ctx), employeeIDs...); err != nil {
			// The run.saved consumer clears the same keys.
			log.Warn("payroll history invalidation deferred to consumer",
				zap.String("run_id", run.ID.String()),
				zap.Error(err),
			)
		}
	}

	return SaveRunResponse{RunID: run.ID.String(), RunNumber: run.RunNumber}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (RunResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RunResponse{}, payrollrunerrors.ErrInvalidRunID
	}

	run, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RunResponse{}, payrollrunerrors.ErrRunNotFound
		}
		s.logger.Error("get payroll run failed", zap.String("run_id", id), zap.Error(err))
		return RunResponse{}, err
	}

	return MapToResponse(*run), nil
}

func FormatRunNumber(seq int64) string {
	return fmt.Sprintf("RUN-%06d", seq)
}

func MapToResponse(run PayrollRun) RunResponse {
	resp := RunResponse{
		ID:              run.ID.String(),
		RunNumber:       run.RunNumber,
		PeriodStart:     run.PeriodStart.Format(dateLayout),
		PeriodEnd:       run.PeriodEnd.Format(dateLayout),
		Status:          run.Status,
		TotalGross:      run.TotalGross.StringFixed(2),
		TotalDeductions: run.TotalDeductions.StringFixed(2),
		TotalNet:        run.TotalNet.StringFixed(2),
		RunBy:           run.RunBy.String(),
		RunDate:         run.RunDate.Format(time.RFC3339),
		Details:         make([]RunDetailResponse, len(run.Details)),
	}
	for i, d := range run.Details {
		resp.Details[i] = RunDetailResponse{
			ID:              d.ID.String(),
			EmployeeID:      d.EmployeeID.String(),
			FullName:        d.FullName,
			DepartmentName:  d.DepartmentName,
			DaysPaid:        d.DaysPaid.String(),
			GrossPay:        d.GrossPay.StringFixed(2),
			Deductions:      d.Deductions.StringFixed(2),
			NetPay:          d.NetPay.StringFixed(2),
			PayslipSnapshot: []byte(d.PayslipSnapshot),
		}
	}
	return resp
}
