package payroll

import (
	"context"
	"database/sql"

	"school-erp/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *PayrollRecord) error
	FindByPeriod(ctx context.Context, periodID string) ([]PayrollRecord, error)
	FindByID(ctx context.Context, id string) (*PayrollRecord, error)
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

func (r *repository) Create(ctx context.Context, record *PayrollRecord) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(record).Error
}

func (r *repository) FindByPeriod(ctx context.Context, periodID string) ([]PayrollRecord, error) {
	var records []PayrollRecord
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("period_id = ?", periodID).
		Order("employee_name ASC").
		Order("id ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayrollRecord, error) {
	var record PayrollRecord
	err := dbtx.Conn(ctx, r.db, r.tx).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
