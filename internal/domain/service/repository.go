package service

import "context"

// Repository provides access to service storage. All operations are scoped to
// the tenant carried in the context.
type Repository interface {
	Create(ctx context.Context, service *Service) error
	Get(ctx context.Context, id string) (*Service, error)
	Update(ctx context.Context, service *Service) error
	List(ctx context.Context, customerID string) ([]*Service, error)
	// Delete soft-deletes the service; its pending cycles drop out of the
	// due-cycle query entirely.
	Delete(ctx context.Context, id string) error
}
