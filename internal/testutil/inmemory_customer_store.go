package testutil

import (
	"context"

	"github.com/cadencehq/cadence/internal/domain/customer"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
)

// InMemoryCustomerStore implements customer.Repository
type InMemoryCustomerStore struct {
	*InMemoryStore[*customer.Customer]
}

func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{
		InMemoryStore: NewInMemoryStore[*customer.Customer](),
	}
}

func copyCustomer(c *customer.Customer) *customer.Customer {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

func (s *InMemoryCustomerStore) Create(ctx context.Context, c *customer.Customer) error {
	if err := s.InMemoryStore.Create(ctx, c.ID, copyCustomer(c)); err != nil {
		return ierr.WithError(err).
			WithHint("Customer with this ID already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryCustomerStore) Get(ctx context.Context, id string) (*customer.Customer, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || c.TenantID != types.GetTenantID(ctx) || c.Status == types.StatusDeleted {
		return nil, ierr.NewError("customer not found").
			WithHintf("Customer %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyCustomer(c), nil
}

func (s *InMemoryCustomerStore) Update(ctx context.Context, c *customer.Customer) error {
	if _, err := s.Get(ctx, c.ID); err != nil {
		return err
	}
	return s.InMemoryStore.Update(ctx, c.ID, copyCustomer(c))
}

func (s *InMemoryCustomerStore) List(ctx context.Context) ([]*customer.Customer, error) {
	filterFn := func(ctx context.Context, c *customer.Customer) bool {
		return c.TenantID == types.GetTenantID(ctx) && c.Status != types.StatusDeleted
	}
	sortFn := func(i, j *customer.Customer) bool {
		return i.CreatedAt.Before(j.CreatedAt)
	}

	customers, err := s.InMemoryStore.List(ctx, filterFn, sortFn)
	if err != nil {
		return nil, err
	}

	result := make([]*customer.Customer, len(customers))
	for i, c := range customers {
		result[i] = copyCustomer(c)
	}
	return result, nil
}
