// Package memory provides an in-memory Store with the same semantics as the
// postgres implementations, so business logic can be exercised without a
// database and without conditional branches in the services themselves.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"onboarding-backend/internal/domain"

	"github.com/google/uuid"
)

type Store struct {
	mu        sync.Mutex
	requests  map[uuid.UUID]*domain.RegistrationRequest
	admins    map[string]*domain.Admin    // keyed by lower-cased login email
	employees map[string]*domain.Employee // keyed by lower-cased email
	companies map[uuid.UUID]*domain.Company
}

func NewStore() *Store {
	return &Store{
		requests:  make(map[uuid.UUID]*domain.RegistrationRequest),
		admins:    make(map[string]*domain.Admin),
		employees: make(map[string]*domain.Employee),
		companies: make(map[uuid.UUID]*domain.Company),
	}
}

func (s *Store) Create(ctx context.Context, req *domain.RegistrationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.requests {
		if existing.Status != domain.RequestStatusRejected &&
			strings.EqualFold(existing.Admin.LoginEmail, req.Admin.LoginEmail) {
			return domain.ErrDuplicate
		}
	}
	cp := *req
	s.requests[req.ID] = &cp
	return nil
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.RegistrationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (s *Store) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.RegistrationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var reqs []domain.RegistrationRequest
	for _, req := range s.requests {
		if req.Status == status {
			reqs = append(reqs, *req)
		}
	}
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].SubmittedAt.After(reqs[j].SubmittedAt)
	})
	return reqs, nil
}

func (s *Store) ExistsActiveByEmail(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, req := range s.requests {
		if req.Status == domain.RequestStatusRejected {
			continue
		}
		if strings.EqualFold(req.Admin.LoginEmail, email) {
			return true, nil
		}
	}
	return false, nil
}

// Claim performs the compare-and-set under the store lock: only a request
// still in PENDING moves, and only one caller observes the move.
func (s *Store) Claim(ctx context.Context, id uuid.UUID, to domain.RequestStatus, reviewedBy uuid.UUID, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok || req.Status != domain.RequestStatusPending {
		return false, nil
	}
	req.Status = to
	req.ReviewedAt = &at
	req.ReviewedBy = &reviewedBy
	return true, nil
}

func (s *Store) ListUnmaterialized(ctx context.Context) ([]domain.RegistrationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	materialized := make(map[uuid.UUID]bool, len(s.companies))
	for _, c := range s.companies {
		materialized[c.SourceRequestID] = true
	}
	var reqs []domain.RegistrationRequest
	for _, req := range s.requests {
		if req.Status == domain.RequestStatusApproved && !materialized[req.ID] {
			reqs = append(reqs, *req)
		}
	}
	sort.Slice(reqs, func(i, j int) bool {
		return reqs[i].SubmittedAt.Before(reqs[j].SubmittedAt)
	})
	return reqs, nil
}

func (s *Store) CreateAdmin(ctx context.Context, a *domain.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(a.LoginEmail)
	if _, ok := s.admins[key]; ok {
		return domain.ErrDuplicate
	}
	a.CreatedAt = time.Now().UTC()
	cp := *a
	s.admins[key] = &cp
	return nil
}

func (s *Store) GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *Store) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(e.Email)
	if _, ok := s.employees[key]; ok {
		return domain.ErrDuplicate
	}
	e.CreatedAt = time.Now().UTC()
	cp := *e
	s.employees[key] = &cp
	return nil
}

func (s *Store) GetEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *Store) SetCompany(ctx context.Context, employeeID, companyID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.ID == employeeID {
			id := companyID
			e.CompanyID = &id
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) CreateCompany(ctx context.Context, c *domain.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.companies {
		if existing.SourceRequestID == c.SourceRequestID {
			return domain.ErrDuplicate
		}
	}
	c.CreatedAt = time.Now().UTC()
	cp := *c
	s.companies[c.ID] = &cp
	return nil
}

func (s *Store) GetCompanyByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Store) GetCompanyBySourceRequest(ctx context.Context, requestID uuid.UUID) (*domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.SourceRequestID == requestID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}
