package payhistory

import (
	"context"
	"encoding/json"
	"time"

	"school-erp/internal/domain"
	payhistoryerrors "school-erp/internal/payhistory/errors"
	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	HistoryKeyPrefix = "payroll:history:"
	HistoryCacheTTL  = 15 * time.Minute
)

// HistoryKey uses the canonical lowercase uuid so every spelling of an id
// shares one cache entry.
func HistoryKey(employeeID string) string {
	if id, err := uuid.Parse(employeeID); err == nil {
		employeeID = id.String()
	}
	return HistoryKeyPrefix + employeeID
}

//go:generate mockgen -source=payhistory_service.go -destination=mock/payhistory_service_mock.go -package=mock
type Service interface {
	HistoryFor(ctx context.Context, employeeID string, requester domain.Requester) ([]HistoryEntryResponse, error)
	Resolve(ctx context.Context, id string) (Entry, error)
	ResolveRun(ctx context.Context, runID, employeeID string) (Entry, error)
	Invalidate(ctx context.Context, employeeIDs ...string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("payhistory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payhistory.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// HistoryFor returns every payment for employeeID from both pathways, newest
// period first. The requester must be the employee or a payroll manager.
func (s *service) HistoryFor(
	ctx context.Context,
	employeeID string,
	requester domain.Requester,
) ([]HistoryEntryResponse, error) {
	parsed, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, payhistoryerrors.ErrInvalidEmployeeID
	}
	employeeID = parsed.String()
	if !requester.CanAccessEmployee(employeeID) {
		return nil, payhistoryerrors.ErrAccessDenied
	}

	cacheKey := HistoryKey(employeeID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []HistoryEntryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		entries, err := s.load(ctx, employeeID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(entries)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, HistoryCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]HistoryEntryResponse), nil
}

func (s *service) load(ctx context.Context, employeeID string) ([]Entry, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	formal, err := s.repo.FormalByEmployee(ctx, employeeID)
	if err != nil {
		log.Error("load formal history failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, apperror.WrapAs(apperror.ErrInternal, err)
	}
	manual, err := s.repo.ManualByEmployee(ctx, employeeID)
	if err != nil {
		log.Error("load manual history failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, apperror.WrapAs(apperror.ErrInternal, err)
	}

	entries := make([]Entry, 0, len(formal)+len(manual))
	entries = append(entries, formal...)
	entries = append(entries, manual...)
	SortEntries(entries)
	return entries, nil
}

// Resolve finds a single entry by payroll record id or run detail id.
func (s *service) Resolve(ctx context.Context, id string) (Entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Entry{}, payhistoryerrors.ErrEntryNotFound
	}

	e, err := s.repo.FormalByID(ctx, id)
	if err == nil {
		return *e, nil
	}
	if !IsNotFound(err) {
		return Entry{}, apperror.WrapAs(apperror.ErrInternal, err)
	}

	e, err = s.repo.ManualByID(ctx, id)
	if err == nil {
		return *e, nil
	}
	if !IsNotFound(err) {
		return Entry{}, apperror.WrapAs(apperror.ErrInternal, err)
	}

	return Entry{}, payhistoryerrors.ErrEntryNotFound
}

// ResolveRun finds the employee's detail line within a manual run.
func (s *service) ResolveRun(ctx context.Context, runID, employeeID string) (Entry, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return Entry{}, payhistoryerrors.ErrEntryNotFound
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return Entry{}, payhistoryerrors.ErrEntryNotFound
	}

	e, err := s.repo.ManualByRunAndEmployee(ctx, runID, employeeID)
	if err != nil {
		if IsNotFound(err) {
			return Entry{}, payhistoryerrors.ErrEntryNotFound
		}
		return Entry{}, apperror.WrapAs(apperror.ErrInternal, err)
	}
	return *e, nil
}

// Invalidate drops cached history for the given employees.
func (s *service) Invalidate(ctx context.Context, employeeIDs ...string) error {
	if s.rdb == nil || len(employeeIDs) == 0 {
		return nil
	}

	keys := make([]string, len(employeeIDs))
	for i, id := range employeeIDs {
		keys[i] = HistoryKey(id)
	}

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Warn("failed to invalidate payroll history cache",
			zap.Int("keys", len(keys)),
			zap.Error(err),
		)
		return err
	}
	return nil
}
