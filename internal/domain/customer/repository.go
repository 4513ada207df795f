package customer

import "context"

// Repository provides access to customer storage
type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	Get(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
	List(ctx context.Context) ([]*Customer, error)
}
