package payroll

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"school-erp/internal/events"
	"school-erp/internal/messaging/kafka"
	"school-erp/internal/payperiod"
	payperioderrors "school-erp/internal/payperiod/errors"
	payrollerrors "school-erp/internal/payroll/errors"
	"school-erp/internal/payprofile"
	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/config"
	"school-erp/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Directory lists the employees formal generation pays.
type Directory interface {
	ListEligibleEmployees(ctx context.Context) ([]payprofile.EligibleEmployee, error)
}

// HistoryInvalidator drops cached payment history for employees whose
// records just committed.
type HistoryInvalidator interface {
	Invalidate(ctx context.Context, employeeIDs ...string) error
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actorID, periodID string) ([]PayrollRecordResponse, error)
	ListByPeriod(ctx context.Context, periodID string) ([]PayrollRecordResponse, error)
	GetByID(ctx context.Context, id string) (PayrollRecordResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	periods   payperiod.Repository
	directory Directory
	outbox    kafka.OutboxRepository
	history   HistoryInvalidator
	cfg       config.PayrollConfig
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	periods payperiod.Repository,
	directory Directory,
	outbox kafka.OutboxRepository,
	history HistoryInvalidator,
	cfg config.PayrollConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		periods:   periods,
		directory: directory,
		outbox:    outbox,
		history:   history,
		cfg:       cfg,
		logger:    l,
	}
}

// Generate computes and stores one record per eligible employee for an Open
// period and flips it to Generated. Everything happens in one transaction
// that holds a row lock on the period, so a concurrent call blocks and then
// fails with ErrPeriodNotOpen.
func (s *service) Generate(ctx context.Context, actorID, periodID string) ([]PayrollRecordResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidActorID
	}
	periodUUID, err := uuid.Parse(periodID)
	if err != nil {
		// An id that cannot exist is reported like any other unknown period.
		return nil, payperioderrors.ErrPeriodNotFound
	}

	if s.cfg.TxTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.TxTimeout)
		defer cancel()
	}

	meta := contextutil.ExtractMetadata(ctx)
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("request_id", meta.RequestID),
		zap.String("period_id", periodID),
		zap.String("actor_id", actorID),
	)
	log.Info("payroll generation started")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin generation tx failed", zap.Error(err))
		return nil, apperror.TransactionFailure(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	ptx := s.periods.WithTx(tx)

	period, err := ptx.LockByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payperioderrors.ErrPeriodNotFound
		}
		log.Error("lock pay period failed", zap.Error(err))
		return nil, apperror.TransactionFailure(err)
	}
	if period.Status != payperiod.StatusOpen {
		log.Warn("payroll generation rejected, period not open", zap.String("status", period.Status))
		return nil, payperioderrors.ErrPeriodNotOpen
	}

	employees, err := s.directory.ListEligibleEmployees(ctx)
	if err != nil {
		log.Error("load eligible employees failed", zap.Error(err))
		return nil, apperror.TransactionFailure(err)
	}
	if len(employees) == 0 {
		log.Warn("payroll generation rejected, no eligible employees")
		return nil, payrollerrors.ErrNoEligibleEmployees
	}

	records := make([]PayrollRecord, 0, len(employees))
	employeeIDs := make([]string, 0, len(employees))
	fallbacks := 0
	for _, emp := range employees {
		rate, fallback := EffectiveTaxRate(emp.Profile.TaxRate, s.cfg.DefaultTaxRate)
		if fallback {
			fallbacks++
		}
		pay := ComputeMonthlyPay(emp.Profile.BaseAnnualSalary, emp.Profile.FixedDeductions, rate)

		record := PayrollRecord{
			ID:               uuid.New(),
			EmployeeID:       emp.EmployeeID,
			PeriodID:         periodUUID,
			EmployeeName:     emp.FullName,
			DepartmentName:   emp.DepartmentName,
			BaseAnnualSalary: emp.Profile.BaseAnnualSalary,
			TaxRate:          pay.TaxRate,
			GrossPay:         pay.GrossPay,
			Taxes:            pay.Taxes,
			Deductions:       pay.Deductions,
			NetPay:           pay.NetPay,
			Status:           StatusGenerated,
			GeneratedBy:      actorUUID,
		}

		if err := qtx.Create(ctx, &record); err != nil {
			log.Error("insert payroll record failed",
				zap.String("employee_id", emp.EmployeeID.String()),
				zap.Error(err),
			)
			return nil, mapInsertError(err)
		}

		records = append(records, record)
		employeeIDs = append(employeeIDs, emp.EmployeeID.String())
	}
	if fallbacks > 0 {
		log.Info("default tax rate applied",
			zap.Int("employees", fallbacks),
			zap.String("rate", s.cfg.DefaultTaxRate.String()),
		)
	}

	generatedAt := time.Now().UTC()
	ok, err := ptx.MarkGenerated(ctx, periodID, actorUUID, generatedAt)
	if err != nil {
		log.Error("mark period generated failed", zap.Error(err))
		return nil, apperror.TransactionFailure(err)
	}
	if !ok {
		return nil, payperioderrors.ErrPeriodNotOpen
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(
			meta.RequestID,
			"pay_period",
			periodID,
			events.PayrollPeriodGeneratedType,
			events.PayrollPeriodGeneratedTopic,
			events.PayrollPeriodGeneratedEvent{
				EventType:   events.PayrollPeriodGeneratedType,
				PeriodID:    periodID,
				GeneratedBy: actorID,
				RecordCount: len(records),
				EmployeeIDs: employeeIDs,
				OccurredAt:  generatedAt,
			},
		)
		if err != nil {
			return nil, apperror.TransactionFailure(err)
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("append generation outbox event failed", zap.Error(err))
			return nil, apperror.TransactionFailure(err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit generation tx failed", zap.Error(err))
		return nil, apperror.TransactionFailure(err)
	}

	log.Info("payroll generation completed", zap.Int("records", len(records)))
	invalidateHistory(ctx, s.history, log, employeeIDs)

	resp := make([]PayrollRecordResponse, len(records))
	for i, r := range records {
		r.CreatedAt = generatedAt
		resp[i] = MapToResponse(r)
	}
	return resp, nil
}

func (s *service) ListByPeriod(ctx context.Context, periodID string) ([]PayrollRecordResponse, error) {
	if _, err := uuid.Parse(periodID); err != nil {
		return nil, payperioderrors.ErrPeriodNotFound
	}

	if _, err := s.periods.FindByID(ctx, periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payperioderrors.ErrPeriodNotFound
		}
		return nil, err
	}

	records, err := s.repo.FindByPeriod(ctx, periodID)
	if err != nil {
		s.logger.Error("list payroll records failed", zap.String("period_id", periodID), zap.Error(err))
		return nil, err
	}

	resp := make([]PayrollRecordResponse, len(records))
	for i, r := range records {
		resp[i] = MapToResponse(r)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollRecordResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollRecordResponse{}, payrollerrors.ErrInvalidRecordID
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollRecordResponse{}, payrollerrors.ErrRecordNotFound
		}
		return PayrollRecordResponse{}, err
	}
	return MapToResponse(*record), nil
}

// mapInsertError turns a unique violation on the record index into
// ErrPeriodNotOpen: another generation already wrote this period.
func mapInsertError(err error) error {
	if isRecordUniqueViolation(err) {
		return payperioderrors.ErrPeriodNotOpen
	}
	return apperror.TransactionFailure(err)
}

func isRecordUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == RecordUniqueIndex
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, RecordUniqueIndex)
}

func MapToResponse(r PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:               r.ID.String(),
		EmployeeID:       r.EmployeeID.String(),
		PeriodID:         r.PeriodID.String(),
		EmployeeName:     r.EmployeeName,
		DepartmentName:   r.DepartmentName,
		BaseAnnualSalary: r.BaseAnnualSalary.StringFixed(2),
		TaxRate:          r.TaxRate.StringFixed(4),
		GrossPay:         r.GrossPay.StringFixed(2),
		Taxes:            r.Taxes.StringFixed(2),
		Deductions:       r.Deductions.StringFixed(2),
		NetPay:           r.NetPay.StringFixed(2),
		Status:           r.Status,
		GeneratedBy:      r.GeneratedBy.String(),
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}

// invalidateHistory runs after commit. A failure is logged and left to the
// history consumer, which clears the same keys when the outbox event arrives.
func invalidateHistory(ctx context.Context, history HistoryInvalidator, log *zap.Logger, employeeIDs []string) {
	if history == nil || len(employeeIDs) == 0 {
		return
	}
	if err := history.Invalidate(context.WithoutCancel(ctx), employeeIDs...); err != nil {
		log.Warn("payroll history invalidation deferred to consumer",
			zap.Int("employees", len(employeeIDs)),
			zap.Error(err),
		)
	}
}
