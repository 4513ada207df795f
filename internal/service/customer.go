package service

import (
	"context"

	"github.com/cadencehq/cadence/internal/api/dto"
	"github.com/cadencehq/cadence/internal/domain/customer"
	"github.com/cadencehq/cadence/internal/types"
)

// CustomerService manages the clients that services are billed to.
type CustomerService interface {
	Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Get(ctx context.Context, id string) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]*dto.CustomerResponse, error)
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{ServiceParams: params}
}

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Callers that don't bring their own external reference get a short
	// display id.
	externalID := req.ExternalID
	if externalID == "" {
		externalID = types.GenerateShortIDWithPrefix("C-")
	}

	cust := &customer.Customer{
		ID:         types.GenerateUUIDWithPrefix(types.UUIDPrefixCustomer),
		ExternalID: externalID,
		Name:       req.Name,
		Email:      req.Email,
		BaseModel:  types.GetDefaultBaseModel(ctx),
	}

	if err := s.CustomerRepo.Create(ctx, cust); err != nil {
		return nil, err
	}

	return dto.NewCustomerResponse(cust), nil
}

func (s *customerService) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	cust, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(cust), nil
}

func (s *customerService) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = dto.NewCustomerResponse(c)
	}
	return responses, nil
}
