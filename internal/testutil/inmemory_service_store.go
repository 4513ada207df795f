package testutil

import (
	"context"

	domainService "github.com/cadencehq/cadence/internal/domain/service"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
)

// InMemoryServiceStore implements service.Repository
type InMemoryServiceStore struct {
	*InMemoryStore[*domainService.Service]
}

func NewInMemoryServiceStore() *InMemoryServiceStore {
	return &InMemoryServiceStore{
		InMemoryStore: NewInMemoryStore[*domainService.Service](),
	}
}

func copyService(svc *domainService.Service) *domainService.Service {
	if svc == nil {
		return nil
	}
	copied := *svc
	return &copied
}

func (s *InMemoryServiceStore) Create(ctx context.Context, svc *domainService.Service) error {
	if err := s.InMemoryStore.Create(ctx, svc.ID, copyService(svc)); err != nil {
		return ierr.WithError(err).
			WithHint("Service with this ID already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryServiceStore) Get(ctx context.Context, id string) (*domainService.Service, error) {
	svc, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || svc.TenantID != types.GetTenantID(ctx) || svc.Status == types.StatusDeleted {
		return nil, ierr.NewError("service not found").
			WithHintf("Service %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyService(svc), nil
}

// GetAnyTenant bypasses the tenant scope; tests use it to inspect rows the
// tenant-scoped Get would hide.
func (s *InMemoryServiceStore) GetAnyTenant(id string) (*domainService.Service, error) {
	svc, err := s.InMemoryStore.Get(context.Background(), id)
	if err != nil {
		return nil, ierr.NewError("service not found").
			WithHintf("Service %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyService(svc), nil
}

func (s *InMemoryServiceStore) Update(ctx context.Context, svc *domainService.Service) error {
	if _, err := s.Get(ctx, svc.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, svc.ID, copyService(svc))
}

func (s *InMemoryServiceStore) List(ctx context.Context, customerID string) ([]*domainService.Service, error) {
	filterFn := func(ctx context.Context, svc *domainService.Service) bool {
		return svc.TenantID == types.GetTenantID(ctx) &&
			svc.CustomerID == customerID &&
			svc.Status != types.StatusDeleted
	}
	sortFn := func(i, j *domainService.Service) bool {
		return i.CreatedAt.Before(j.CreatedAt)
	}

	services, err := s.InMemoryStore.List(ctx, filterFn, sortFn)
	if err != nil {
		return nil, err
	}

	result := make([]*domainService.Service, len(services))
	for i, svc := range services {
		result[i] = copyService(svc)
	}
	return result, nil
}

func (s *InMemoryServiceStore) Delete(ctx context.Context, id string) error {
	svc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	svc.Status = types.StatusDeleted
	return s.InMemoryStore.Update(ctx, id, svc)
}
