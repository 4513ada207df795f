package service

import (
	"strings"
	"testing"

	"github.com/cadencehq/cadence/internal/api/dto"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CustomerService
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

func (s *CustomerServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCustomerService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		CustomerRepo: s.GetStores().CustomerRepo,
	})
}

func (s *CustomerServiceSuite) TestCreateAndGet() {
	created, err := s.service.Create(s.GetContext(), &dto.CreateCustomerRequest{
		Name:       "Acme Corp",
		Email:      "billing@acme.example",
		ExternalID: "acme-1",
	})
	s.NoError(err)
	s.NotEmpty(created.ID)

	got, err := s.service.Get(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Acme Corp", got.Name)
	s.Equal("billing@acme.example", got.Email)
	s.Equal("acme-1", got.ExternalID)
}

func (s *CustomerServiceSuite) TestCreateGeneratesExternalID() {
	created, err := s.service.Create(s.GetContext(), &dto.CreateCustomerRequest{
		Name: "Acme Corp",
	})
	s.NoError(err)
	s.NotEmpty(created.ExternalID)
	s.True(strings.HasPrefix(created.ExternalID, "C-"))
	s.LessOrEqual(len(created.ExternalID), 12)
}

func (s *CustomerServiceSuite) TestCreateValidation() {
	_, err := s.service.Create(s.GetContext(), &dto.CreateCustomerRequest{})
	s.Error(err)

	_, err = s.service.Create(s.GetContext(), &dto.CreateCustomerRequest{
		Name:  "Acme Corp",
		Email: "not-an-email",
	})
	s.Error(err)
}

func (s *CustomerServiceSuite) TestGetUnknownCustomer() {
	_, err := s.service.Get(s.GetContext(), "cust_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerServiceSuite) TestList() {
	for _, name := range []string{"Acme Corp", "Globex"} {
		_, err := s.service.Create(s.GetContext(), &dto.CreateCustomerRequest{Name: name})
		s.NoError(err)
	}

	customers, err := s.service.List(s.GetContext())
	s.NoError(err)
	s.Len(customers, 2)
}
