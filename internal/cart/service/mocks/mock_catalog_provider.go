package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/ridloal/storefront-bff/internal/catalog/domain"
)

type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) Products(ctx context.Context) ([]catalogDomain.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]catalogDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
