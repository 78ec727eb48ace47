package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cDomain "github.com/ridloal/storefront-bff/internal/catalog/domain"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]cDomain.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]cDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, id string) (*cDomain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*cDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
