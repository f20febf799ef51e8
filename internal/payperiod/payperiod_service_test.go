package payperiod_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"school-erp/internal/payperiod"
	payperioderrors "school-erp/internal/payperiod/errors"
	"school-erp/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePeriodRepository struct {
	createFn        func(ctx context.Context, period *payperiod.PayPeriod) error
	findAllFn       func(ctx context.Context) ([]payperiod.PayPeriod, error)
	findByIDFn      func(ctx context.Context, id string) (*payperiod.PayPeriod, error)
	lockByIDFn      func(ctx context.Context, id string) (*payperiod.PayPeriod, error)
	markGeneratedFn func(ctx context.Context, id string, actorID uuid.UUID, at time.Time) (bool, error)
}

func (f *fakePeriodRepository) WithTx(tx *sql.Tx) payperiod.Repository { return f }

func (f *fakePeriodRepository) Create(ctx context.Context, period *payperiod.PayPeriod) error {
	if f.createFn != nil {
		return f.createFn(ctx, period)
	}
	return nil
}

func (f *fakePeriodRepository) FindAll(ctx context.Context) ([]payperiod.PayPeriod, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePeriodRepository) FindByID(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePeriodRepository) LockByID(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
	if f.lockByIDFn != nil {
		return f.lockByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePeriodRepository) MarkGenerated(ctx context.Context, id string, actorID uuid.UUID, at time.Time) (bool, error) {
	if f.markGeneratedFn != nil {
		return f.markGeneratedFn(ctx, id, actorID, at)
	}
	return true, nil
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payperiod.Service
	repo    *fakePeriodRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePeriodRepository{}
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: payperiod.NewService(db, repo),
		repo:    repo,
	}
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

func TestPayPeriodService_OpenPeriod(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		var created *payperiod.PayPeriod
		deps.repo.createFn = func(ctx context.Context, period *payperiod.PayPeriod) error {
			created = period
			return nil
		}

		resp, err := deps.service.OpenPeriod(ctx, actorID, payperiod.OpenPeriodRequest{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
		})

		assert.NoError(t, err)
		assert.Equal(t, payperiod.StatusOpen, resp.Status)
		assert.Equal(t, "2024-01-01", resp.StartDate)
		assert.Equal(t, "2024-01-31", resp.EndDate)
		assert.Equal(t, actorID, resp.CreatedBy)
		assert.Nil(t, resp.GeneratedAt)
		if assert.NotNil(t, created) {
			assert.Equal(t, payperiod.StatusOpen, created.Status)
		}
	})

	t.Run("single day period", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.OpenPeriod(ctx, actorID, payperiod.OpenPeriodRequest{
			StartDate: "2024-02-29",
			EndDate:   "2024-02-29",
		})

		assert.NoError(t, err)
	})

	t.Run("start after end", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.OpenPeriod(ctx, actorID, payperiod.OpenPeriodRequest{
			StartDate: "2024-02-01",
			EndDate:   "2024-01-31",
		})

		assert.ErrorIs(t, err, payperioderrors.ErrInvalidDateRange)
	})

	t.Run("bad date format", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.OpenPeriod(ctx, actorID, payperiod.OpenPeriodRequest{
			StartDate: "01/02/2024",
			EndDate:   "2024-01-31",
		})

		assert.ErrorIs(t, err, payperioderrors.ErrInvalidDateFormat)
	})

	t.Run("invalid actor", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.OpenPeriod(ctx, "nope", payperiod.OpenPeriodRequest{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
		})

		assert.ErrorIs(t, err, payperioderrors.ErrInvalidActorID)
	})

	t.Run("persist failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.createFn = func(ctx context.Context, period *payperiod.PayPeriod) error {
			return errors.New("db down")
		}

		_, err := deps.service.OpenPeriod(ctx, actorID, payperiod.OpenPeriodRequest{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
		})

		assert.ErrorIs(t, err, apperror.ErrTransactionFailed)
	})
}

func TestPayPeriodService_MarkGenerated(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	periodID := uuid.New()

	openPeriod := func() *payperiod.PayPeriod {
		return &payperiod.PayPeriod{
			ID:        periodID,
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			Status:    payperiod.StatusOpen,
		}
	}

	t.Run("open to generated", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
			return openPeriod(), nil
		}
		deps.repo.markGeneratedFn = func(ctx context.Context, id string, actor uuid.UUID, at time.Time) (bool, error) {
			assert.Equal(t, periodID.String(), id)
			assert.Equal(t, actorID, actor)
			return true, nil
		}

		resp, err := deps.service.MarkGenerated(ctx, actorID.String(), periodID.String())

		assert.NoError(t, err)
		assert.Equal(t, payperiod.StatusGenerated, resp.Status)
		if assert.NotNil(t, resp.GeneratedBy) {
			assert.Equal(t, actorID.String(), *resp.GeneratedBy)
		}
		assert.NotNil(t, resp.GeneratedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already generated", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
			p := openPeriod()
			p.Status = payperiod.StatusGenerated
			return p, nil
		}
		deps.repo.markGeneratedFn = func(ctx context.Context, id string, actor uuid.UUID, at time.Time) (bool, error) {
			t.Fatal("must not update a generated period")
			return false, nil
		}

		_, err := deps.service.MarkGenerated(ctx, actorID.String(), periodID.String())

		assert.ErrorIs(t, err, payperioderrors.ErrInvalidStateTransition)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("guarded update lost the race", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.lockByIDFn = func(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
			return openPeriod(), nil
		}
		deps.repo.markGeneratedFn = func(ctx context.Context, id string, actor uuid.UUID, at time.Time) (bool, error) {
			return false, nil
		}

		_, err := deps.service.MarkGenerated(ctx, actorID.String(), periodID.String())

		assert.ErrorIs(t, err, payperioderrors.ErrInvalidStateTransition)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.MarkGenerated(ctx, actorID.String(), periodID.String())

		assert.ErrorIs(t, err, payperioderrors.ErrPeriodNotFound)
	})

	t.Run("malformed period id is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.MarkGenerated(ctx, actorID.String(), "nope")

		assert.ErrorIs(t, err, payperioderrors.ErrPeriodNotFound)
	})
}

func TestPayPeriodService_GetByID(t *testing.T) {
	ctx := context.Background()
	periodID := uuid.New()

	t.Run("found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payperiod.PayPeriod, error) {
			return &payperiod.PayPeriod{ID: periodID, Status: payperiod.StatusOpen}, nil
		}

		resp, err := deps.service.GetByID(ctx, periodID.String())

		assert.NoError(t, err)
		assert.Equal(t, periodID.String(), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, periodID.String())

		assert.ErrorIs(t, err, payperioderrors.ErrPeriodNotFound)
	})
}

func TestCanTransition(t *testing.T) {
	assert.True(t, payperiod.CanTransition(payperiod.StatusOpen, payperiod.StatusGenerated))
	assert.False(t, payperiod.CanTransition(payperiod.StatusGenerated, payperiod.StatusOpen))
	assert.False(t, payperiod.CanTransition(payperiod.StatusGenerated, payperiod.StatusGenerated))
	assert.False(t, payperiod.CanTransition(payperiod.StatusOpen, payperiod.StatusOpen))
}
