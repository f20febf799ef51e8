//go:build container

package payroll_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"school-erp/internal/messaging/kafka"
	"school-erp/internal/payperiod"
	payperioderrors "school-erp/internal/payperiod/errors"
	"school-erp/internal/payprofile"
	"school-erp/internal/payroll"
	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/config"
	"school-erp/internal/testhelpers"

	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepo fails the nth Create so a generation breaks half way through.
type failingRepo struct {
	payroll.Repository
	mu      *sync.Mutex
	calls   *int
	failAt  int
}

func (r failingRepo) WithTx(tx *sql.Tx) payroll.Repository {
	return failingRepo{Repository: r.Repository.WithTx(tx), mu: r.mu, calls: r.calls, failAt: r.failAt}
}

func (r failingRepo) Create(ctx context.Context, record *payroll.PayrollRecord) error {
	r.mu.Lock()
	*r.calls++
	n := *r.calls
	r.mu.Unlock()
	if n == r.failAt {
		return errors.New("disk full")
	}
	return r.Repository.Create(ctx, record)
}

type containerEnv struct {
	db      *testhelpers.Postgres
	periods payperiod.Service
	repo    payroll.Repository
	build   func(repo payroll.Repository) payroll.Service
}

func setupContainer(t *testing.T) *containerEnv {
	pg := testhelpers.StartPostgres(t)

	periodRepo := payperiod.NewRepository(pg.Gorm)
	cfg := config.PayrollConfig{
		DefaultTaxRate: decimal.RequireFromString("0.20"),
		EligibleRoles:  []string{"teacher"},
		TxTimeout:      30 * time.Second,
	}
	directory := payprofile.NewService(payprofile.NewRepository(pg.Gorm), cfg.EligibleRoles)
	outbox := kafka.NewOutboxRepository(pg.SQL)

	return &containerEnv{
		db:      pg,
		periods: payperiod.NewService(pg.SQL, periodRepo),
		repo:    payroll.NewRepository(pg.Gorm),
		build: func(repo payroll.Repository) payroll.Service {
			return payroll.NewService(pg.SQL, repo, periodRepo, directory, outbox, nil, cfg)
		},
	}
}

func (e *containerEnv) count(t *testing.T, query string, args ...any) int {
	var n int
	require.NoError(t, e.db.SQL.QueryRow(query, args...).Scan(&n))
	return n
}

func TestGenerate_Postgres(t *testing.T) {
	env := setupContainer(t)
	ctx := context.Background()
	actorID := uuid.NewString()

	testhelpers.SeedEmployee(t, env.db.SQL, "Edna Krabappel", "teacher", "120000", "500", nil)
	testhelpers.SeedEmployee(t, env.db.SQL, "Elizabeth Hoover", "teacher", "96000", "0", nil)
	testhelpers.SeedEmployee(t, env.db.SQL, "Groundskeeper Willie", "janitor", "40000", "0", nil)

	svc := env.build(env.repo)

	t.Run("exactly once", func(t *testing.T) {
		period, err := env.periods.OpenPeriod(ctx, actorID, payperiod.OpenPeriodRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"})
		require.NoError(t, err)

		records, err := svc.Generate(ctx, actorID, period.ID)
		require.NoError(t, err)
		assert.Len(t, records, 2)

		for _, r := range records {
			if r.EmployeeName == "Edna Krabappel" {
				assert.Equal(t, "10000.00", r.GrossPay)
				assert.Equal(t, "2000.00", r.Taxes)
				assert.Equal(t, "7500.00", r.NetPay)
			}
		}

		_, err = svc.Generate(ctx, actorID, period.ID)
		assert.ErrorIs(t, err, payperioderrors.ErrPeriodNotOpen)

		assert.Equal(t, 2, env.count(t, `SELECT count(*) FROM payroll_records WHERE period_id = $1`, period.ID))
		assert.Equal(t, 1, env.count(t, `SELECT count(*) FROM outbox_events WHERE aggregate_id = $1`, period.ID))

		got, err := env.periods.GetByID(ctx, period.ID)
		require.NoError(t, err)
		assert.Equal(t, payperiod.StatusGenerated, got.Status)
	})

	t.Run("concurrent generations", func(t *testing.T) {
		period, err := env.periods.OpenPeriod(ctx, actorID, payperiod.OpenPeriodRequest{StartDate: "2025-02-01", EndDate: "2025-02-28"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.Generate(ctx, actorID, period.ID)
			}(i)
		}
		wg.Wait()

		var ok, notOpen int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, payperioderrors.ErrPeriodNotOpen):
				notOpen++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 1, notOpen)
		assert.Equal(t, 2, env.count(t, `SELECT count(*) FROM payroll_records WHERE period_id = $1`, period.ID))
	})

	t.Run("insert failure rolls everything back", func(t *testing.T) {
		period, err := env.periods.OpenPeriod(ctx, actorID, payperiod.OpenPeriodRequest{StartDate: "2025-03-01", EndDate: "2025-03-31"})
		require.NoError(t, err)

		calls := 0
		broken := env.build(failingRepo{Repository: env.repo, mu: &sync.Mutex{}, calls: &calls, failAt: 2})

		_, err = broken.Generate(ctx, actorID, period.ID)
		assert.ErrorIs(t, err, apperror.ErrTransactionFailed)

		assert.Equal(t, 0, env.count(t, `SELECT count(*) FROM payroll_records WHERE period_id = $1`, period.ID))
		assert.Equal(t, 0, env.count(t, `SELECT count(*) FROM outbox_events WHERE aggregate_id = $1`, period.ID))
		got, err := env.periods.GetByID(ctx, period.ID)
		require.NoError(t, err)
		assert.Equal(t, payperiod.StatusOpen, got.Status)

		records, err := svc.Generate(ctx, actorID, period.ID)
		assert.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
