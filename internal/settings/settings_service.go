package settings

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	settingserrors "school-erp/internal/settings/errors"
	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	CacheKey = "settings:institution"
	CacheTTL = time.Hour
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Update(ctx context.Context, actorID string, req UpdateSettingsRequest) (SettingsResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Get returns the institution branding. An institution that has not saved
// settings yet gets empty branding rather than an error.
func (s *service) Get(ctx context.Context) (SettingsResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, CacheKey).Result(); err == nil {
			var resp SettingsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(CacheKey, func() (interface{}, error) {
		row, err := s.repo.Get(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return SettingsResponse{}, nil
			}
			return nil, apperror.WrapAs(apperror.ErrInternal, err)
		}

		resp := mapToResponse(row)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, CacheKey, jsonData, CacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return SettingsResponse{}, err
	}

	return v.(SettingsResponse), nil
}

func (s *service) Update(ctx context.Context, actorID string, req UpdateSettingsRequest) (SettingsResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return SettingsResponse{}, settingserrors.ErrInvalidActorID
	}
	if strings.TrimSpace(req.Name) == "" {
		return SettingsResponse{}, settingserrors.ErrMissingRequiredFields
	}

	row := &InstitutionSettings{
		Name:               strings.TrimSpace(req.Name),
		LogoURL:            strings.TrimSpace(req.LogoURL),
		Address:            strings.TrimSpace(req.Address),
		RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
		TaxID:              strings.TrimSpace(req.TaxID),
		UpdatedBy:          &actor,
	}

	if err := s.repo.Upsert(ctx, row); err != nil {
		log.Error("update institution settings failed", zap.Error(err))
		return SettingsResponse{}, apperror.WrapAs(apperror.ErrInternal, err)
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, CacheKey).Err(); err != nil {
			log.Warn("failed to invalidate settings cache",
				zap.String("key", CacheKey),
				zap.Error(err),
			)
		}
	}

	log.Info("institution settings updated", zap.String("actor_id", actorID))
	return mapToResponse(row), nil
}
