package rbac

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const defaultPolicyTTL = 30 * time.Second

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req EnforceRequest) (bool, error)
	Capabilities(employeeID string) ([]string, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	ttl      time.Duration
	now      func() time.Time
	loadedAt time.Time
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		ttl:      defaultPolicyTTL,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked(ctx)
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	employeeRoles, err := s.repo.GetEmployeeRoles(ctx)
	if err != nil {
		return err
	}
	rolePerms, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}

	s.enforcer.ClearPolicy()

	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.RoleID); err != nil {
			return err
		}
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.loadedAt = s.now()
	s.logger.Debug("rbac policy loaded",
		zap.Int("employee_roles", len(employeeRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

// ensureFresh reloads the policy once it is older than the ttl. Caller holds mu.
func (s *service) ensureFresh() error {
	if !s.loadedAt.IsZero() && s.now().Sub(s.loadedAt) < s.ttl {
		return nil
	}
	return s.loadPolicyUnlocked(context.Background())
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFresh(); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Capabilities lists the employee's implicit permissions as "resource:action".
func (s *service) Capabilities(employeeID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFresh(); err != nil {
		return nil, err
	}

	perms, err := s.enforcer.GetImplicitPermissionsForUser(employeeID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(perms))
	caps := make([]string, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		c := p[1] + ":" + p[2]
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		caps = append(caps, c)
	}
	sort.Strings(caps)
	return caps, nil
}
