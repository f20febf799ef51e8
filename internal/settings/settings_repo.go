package settings

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context) (*InstitutionSettings, error)
	Upsert(ctx context.Context, s *InstitutionSettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*InstitutionSettings, error) {
	var s InstitutionSettings
	err := r.db.WithContext(ctx).First(&s, "id = ?", SingletonID).Error
	return &s, err
}

func (r *repository) Upsert(ctx context.Context, s *InstitutionSettings) error {
	s.ID = SingletonID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "logo_url", "address", "registration_number", "tax_id", "updated_by", "updated_at"}),
		}).
		Create(s).Error
}
