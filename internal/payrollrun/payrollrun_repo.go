package payrollrun

import (
	"context"
	"database/sql"

	"school-erp/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const detailBatchSize = 200

//go:generate mockgen -source=payrollrun_repo.go -destination=mock/payrollrun_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRun(ctx context.Context, run *PayrollRun) error
	CreateDetails(ctx context.Context, details []PayrollRunDetail) error
	FindByID(ctx context.Context, id string) (*PayrollRun, error)
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

// CreateRun inserts the header only; details go through CreateDetails.
func (r *repository) CreateRun(ctx context.Context, run *PayrollRun) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Create(run).Error
}

func (r *repository) CreateDetails(ctx context.Context, details []PayrollRunDetail) error {
	if len(details) == 0 {
		return nil
	}
	return dbtx.Conn(ctx, r.db, r.tx).CreateInBatches(details, detailBatchSize).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("full_name ASC").Order("id ASC")
		}).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}
