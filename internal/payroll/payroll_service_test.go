package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"school-erp/internal/events"
	"school-erp/internal/messaging/kafka"
	"school-erp/internal/payperiod"
	payperioderrors "school-erp/internal/payperiod/errors"
	"school-erp/internal/payroll"
	payrollerrors "school-erp/internal/payroll/errors"
	"school-erp/internal/payprofile"
	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// =========================================
// Fakes
// =========================================

type fakeRecordRepository struct {
	mu       sync.Mutex
	created  []payroll.PayrollRecord
	createFn func(ctx context.Context, record *payroll.PayrollRecord) error
}

func (f *fakeRecordRepository) WithTx(tx *sql.Tx) payroll.Repository { return f }

func (f *fakeRecordRepository) Create(ctx context.Context, record *payroll.PayrollRecord) error {
	if f.createFn != nil {
		if err := f.createFn(ctx, record); err != nil {
			return err
		}
	}
	f.mu.Lock()
	f.created = append(f.created, *record)
	f.mu.Unlock()
	return nil
}

func (f *fakeRecordRepository) FindByPeriod(ctx context.Context, periodID string) ([]payroll.PayrollRecord, error) {
	return f.created, nil
}

func (f *fakeRecordRepository) FindByID(ctx context.Context, id string) (*payroll.PayrollRecord, error) {
	for _, r := range f.created {
		if r.ID.String() == id {
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// fakePeriodStore emulates the period row: LockByID blocks while another
// caller holds the lock, which is released once the holder marks the period
// generated or observes it is no longer open.
type fakePeriodStore struct {
	rowLock sync.Mutex
	mu      sync.Mutex
	period  *payperiod.PayPeriod
	marked  int
	markErr error
}

func (f *fakePeriodStore) WithTx(tx *sql.Tx) payperiod.Repository { return f }

func (f *fakePeriodStore) Create(ctx context.Context, period *payperiod.PayPeriod) error { return nil }

func (f *fakePeriodStore) FindAll(ctx context.Context) ([]payperiod.PayPeriod, error) { return nil, nil }

func (f *fakePeriodStore) FindByID(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.period == nil || f.period.ID.String() != id {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f.period
	return &cp, nil
}

func (f *fakePeriodStore) LockByID(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
	f.rowLock.Lock()
	p, err := f.FindByID(ctx, id)
	if err != nil || p.Status != payperiod.StatusOpen {
		f.rowLock.Unlock()
	}
	return p, err
}

func (f *fakePeriodStore) MarkGenerated(ctx context.Context, id string, actorID uuid.UUID, at time.Time) (bool, error) {
	defer f.rowLock.Unlock()
	if f.markErr != nil {
		return false, f.markErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.period.Status != payperiod.StatusOpen {
		return false, nil
	}
	f.period.Status = payperiod.StatusGenerated
	f.period.GeneratedBy = &actorID
	f.period.GeneratedAt = &at
	f.marked++
	return true, nil
}

// release frees the row lock when a test aborts generation before MarkGenerated.
func (f *fakePeriodStore) release() {
	f.rowLock.TryLock()
	f.rowLock.Unlock()
}

type fakeDirectory struct {
	employees []payprofile.EligibleEmployee
	err       error
}

func (f *fakeDirectory) ListEligibleEmployees(ctx context.Context) ([]payprofile.EligibleEmployee, error) {
	return f.employees, f.err
}

type fakeOutbox struct {
	mu     sync.Mutex
	events []kafka.OutboxEvent
	err    error
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	f.events = append(f.events, event)
	f.mu.Unlock()
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

// =========================================
// Setup
// =========================================

type fakeHistory struct {
	invalidated []string
}

func (f *fakeHistory) Invalidate(ctx context.Context, employeeIDs ...string) error {
	f.invalidated = append(f.invalidated, employeeIDs...)
	return nil
}

type generatorDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   payroll.Service
	records   *fakeRecordRepository
	periods   *fakePeriodStore
	directory *fakeDirectory
	outbox    *fakeOutbox
	history   *fakeHistory
	periodID  uuid.UUID
	actorID   uuid.UUID
}

func employee(name, annual, deductions string, rate *string) payprofile.EligibleEmployee {
	id := uuid.New()
	profile := payprofile.EmployeePayProfile{
		EmployeeID:       id,
		BaseAnnualSalary: decimal.RequireFromString(annual),
		FixedDeductions:  decimal.RequireFromString(deductions),
	}
	if rate != nil {
		profile.TaxRate = decimal.NewNullDecimal(decimal.RequireFromString(*rate))
	}
	return payprofile.EligibleEmployee{EmployeeID: id, FullName: name, DepartmentName: "Science", Profile: profile}
}

func setupGenerator(t *testing.T, employees ...payprofile.EligibleEmployee) *generatorDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	periodID := uuid.New()
	deps := &generatorDeps{
		db:        db,
		sqlMock:   sqlMock,
		records:   &fakeRecordRepository{},
		periods:   &fakePeriodStore{period: &payperiod.PayPeriod{ID: periodID, Status: payperiod.StatusOpen}},
		directory: &fakeDirectory{employees: employees},
		outbox:    &fakeOutbox{},
		history:   &fakeHistory{},
		periodID:  periodID,
		actorID:   uuid.New(),
	}
	deps.service = payroll.NewService(db, deps.records, deps.periods, deps.directory, deps.outbox, deps.history, config.PayrollConfig{
		DefaultTaxRate: decimal.RequireFromString("0.20"),
		TxTimeout:      5 * time.Second,
	})
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// =========================================
// Generate
// =========================================

func TestGenerate_Success(t *testing.T) {
	rate := "0.10"
	deps := setupGenerator(t,
		employee("Ada", "120000", "500", nil),
		employee("Grace", "60000", "0", &rate),
	)
	expectTx(t, deps.sqlMock, true)

	records, err := deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "10000.00", records[0].GrossPay)
	assert.Equal(t, "2000.00", records[0].Taxes)
	assert.Equal(t, "500.00", records[0].Deductions)
	assert.Equal(t, "7500.00", records[0].NetPay)
	assert.Equal(t, "0.2000", records[0].TaxRate)
	assert.Equal(t, "4500.00", records[1].NetPay)
	assert.Equal(t, "0.1000", records[1].TaxRate)
	for _, r := range records {
		assert.Equal(t, payroll.StatusGenerated, r.Status)
		assert.Equal(t, deps.actorID.String(), r.GeneratedBy)
		assert.Equal(t, deps.periodID.String(), r.PeriodID)
	}

	assert.Equal(t, payperiod.StatusGenerated, deps.periods.period.Status)
	assert.Equal(t, 1, deps.periods.marked)
	assert.ElementsMatch(t, []string{records[0].EmployeeID, records[1].EmployeeID}, deps.history.invalidated)

	if assert.Len(t, deps.outbox.events, 1) {
		ev := deps.outbox.events[0]
		assert.Equal(t, events.PayrollPeriodGeneratedTopic, ev.Topic)
		assert.Equal(t, deps.periodID.String(), ev.AggregateID)

		var payload events.PayrollPeriodGeneratedEvent
		assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
		assert.Equal(t, 2, payload.RecordCount)
		assert.Len(t, payload.EmployeeIDs, 2)
	}
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestGenerate_ExactlyOnce(t *testing.T) {
	deps := setupGenerator(t, employee("Ada", "120000", "500", nil))
	expectTx(t, deps.sqlMock, true)
	expectTx(t, deps.sqlMock, false)

	_, err := deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())
	assert.NoError(t, err)

	_, err = deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())
	assert.ErrorIs(t, err, payperioderrors.ErrPeriodNotOpen)

	assert.Len(t, deps.records.created, 1)
	assert.Equal(t, 1, deps.periods.marked)
	assert.Len(t, deps.outbox.events, 1)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestGenerate_AtomicOnInsertFailure(t *testing.T) {
	deps := setupGenerator(t,
		employee("Ada", "120000", "500", nil),
		employee("Grace", "60000", "0", nil),
	)
	expectTx(t, deps.sqlMock, false)

	calls := 0
	deps.records.createFn = func(ctx context.Context, record *payroll.PayrollRecord) error {
		calls++
		if calls == 2 {
			return errors.New("disk full")
		}
		return nil
	}

	_, err := deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())
	deps.periods.release()

	assert.ErrorIs(t, err, apperror.ErrTransactionFailed)
	assert.Equal(t, payperiod.StatusOpen, deps.periods.period.Status)
	assert.Zero(t, deps.periods.marked)
	assert.Empty(t, deps.outbox.events)
	assert.Empty(t, deps.history.invalidated)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestGenerate_UniqueViolationMeansNotOpen(t *testing.T) {
	deps := setupGenerator(t, employee("Ada", "120000", "500", nil))
	expectTx(t, deps.sqlMock, false)

	deps.records.createFn = func(ctx context.Context, record *payroll.PayrollRecord) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: payroll.RecordUniqueIndex}
	}

	_, err := deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())
	deps.periods.release()

	assert.ErrorIs(t, err, payperioderrors.ErrPeriodNotOpen)
}

func TestGenerate_OutboxFailureRollsBack(t *testing.T) {
	deps := setupGenerator(t, employee("Ada", "120000", "500", nil))
	expectTx(t, deps.sqlMock, false)
	deps.outbox.err = errors.New("outbox unavailable")

	_, err := deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())

	assert.ErrorIs(t, err, apperror.ErrTransactionFailed)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestGenerate_CommitFailure(t *testing.T) {
	deps := setupGenerator(t, employee("Ada", "120000", "500", nil))
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	_, err := deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())

	assert.ErrorIs(t, err, apperror.ErrTransactionFailed)
}

func TestGenerate_Rejections(t *testing.T) {
	t.Run("period not found", func(t *testing.T) {
		deps := setupGenerator(t, employee("Ada", "120000", "500", nil))
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Generate(context.Background(), deps.actorID.String(), uuid.NewString())

		assert.ErrorIs(t, err, payperioderrors.ErrPeriodNotFound)
	})

	t.Run("no eligible employees", func(t *testing.T) {
		deps := setupGenerator(t)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())
		deps.periods.release()

		assert.ErrorIs(t, err, payrollerrors.ErrNoEligibleEmployees)
		assert.Equal(t, payperiod.StatusOpen, deps.periods.period.Status)
		assert.Empty(t, deps.records.created)
	})

	t.Run("directory failure", func(t *testing.T) {
		deps := setupGenerator(t)
		deps.directory.err = errors.New("db down")
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())
		deps.periods.release()

		assert.ErrorIs(t, err, apperror.ErrTransactionFailed)
	})

	t.Run("invalid ids", func(t *testing.T) {
		deps := setupGenerator(t)

		_, err := deps.service.Generate(context.Background(), "nope", deps.periodID.String())
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidActorID)

		_, err = deps.service.Generate(context.Background(), deps.actorID.String(), "nope")
		assert.ErrorIs(t, err, payperioderrors.ErrPeriodNotFound)
	})
}

func TestGenerate_ConcurrentCallsOneWins(t *testing.T) {
	deps := setupGenerator(t,
		employee("Ada", "120000", "500", nil),
		employee("Grace", "60000", "0", nil),
	)
	deps.sqlMock.MatchExpectationsInOrder(false)
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()
	deps.sqlMock.ExpectRollback()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())
		}(i)
	}
	wg.Wait()

	successes, notOpen := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, payperioderrors.ErrPeriodNotOpen):
			notOpen++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, notOpen)
	assert.Len(t, deps.records.created, 2)
	assert.Equal(t, 1, deps.periods.marked)
}

// =========================================
// Reads
// =========================================

func TestListByPeriodAndGetByID(t *testing.T) {
	deps := setupGenerator(t, employee("Ada", "120000", "500", nil))
	expectTx(t, deps.sqlMock, true)

	generated, err := deps.service.Generate(context.Background(), deps.actorID.String(), deps.periodID.String())
	assert.NoError(t, err)

	listed, err := deps.service.ListByPeriod(context.Background(), deps.periodID.String())
	assert.NoError(t, err)
	assert.Len(t, listed, 1)

	got, err := deps.service.GetByID(context.Background(), generated[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, "7500.00", got.NetPay)

	_, err = deps.service.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, payrollerrors.ErrRecordNotFound)

	_, err = deps.service.ListByPeriod(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, payperioderrors.ErrPeriodNotFound)

	_, err = deps.service.ListByPeriod(context.Background(), "period-7")
	assert.ErrorIs(t, err, payperioderrors.ErrPeriodNotFound)
}
