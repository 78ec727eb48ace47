package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cartDomain "github.com/ridloal/storefront-bff/internal/cart/domain"
)

type MockCartClient struct {
	mock.Mock
}

func (m *MockCartClient) GetEntries(ctx context.Context, token string) ([]cartDomain.CartEntry, error) {
	args := m.Called(ctx, token)
	if res := args.Get(0); res != nil {
		return res.([]cartDomain.CartEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartClient) UpdateQuantity(ctx context.Context, token, productID string, quantity int) error {
	args := m.Called(ctx, token, productID, quantity)
	return args.Error(0)
}
