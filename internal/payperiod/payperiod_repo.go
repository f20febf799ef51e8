package payperiod

import (
	"context"
	"database/sql"
	"time"

	"school-erp/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payperiod_repo.go -destination=mock/payperiod_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, period *PayPeriod) error
	FindAll(ctx context.Context) ([]PayPeriod, error)
	FindByID(ctx context.Context, id string) (*PayPeriod, error)
	LockByID(ctx context.Context, id string) (*PayPeriod, error)
	MarkGenerated(ctx context.Context, id string, actorID uuid.UUID, at time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, period *PayPeriod) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(period).Error
}

func (r *repository) FindAll(ctx context.Context) ([]PayPeriod, error) {
	var periods []PayPeriod
	err := dbtx.Conn(ctx, r.db, r.tx).
		Order("end_date DESC").
		Order("created_at DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayPeriod, error) {
	var period PayPeriod
	err := dbtx.Conn(ctx, r.db, r.tx).First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// LockByID reads the period with SELECT ... FOR UPDATE. It only makes sense on
// a repository bound with WithTx; the lock is held until that tx ends, so a
// concurrent locker blocks and then reads the committed status.
func (r *repository) LockByID(ctx context.Context, id string) (*PayPeriod, error) {
	var period PayPeriod
	err := dbtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&period, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// MarkGenerated flips Open -> Generated. The status guard in the WHERE clause
// makes the update a no-op (false) for anything not currently Open.
func (r *repository) MarkGenerated(ctx context.Context, id string, actorID uuid.UUID, at time.Time) (bool, error) {
	res := dbtx.Conn(ctx, r.db, r.tx).
		Model(&PayPeriod{}).
		Where("id = ? AND status = ?", id, StatusOpen).
		Updates(map[string]any{
			"status":       StatusGenerated,
			"generated_by": actorID,
			"generated_at": at,
			"updated_at":   at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
