package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridloal/storefront-bff/internal/catalog/domain"
	"github.com/ridloal/storefront-bff/internal/catalog/repository/mocks"
)

func TestCatalogService_Products(t *testing.T) {
	ctx := context.TODO()
	mockProducts := []domain.Product{
		{ID: "prod1", Name: "Product 1", Cost: 100},
		{ID: "prod2", Name: "Product 2", Cost: 200},
	}

	t.Run("Cold snapshot loads from repository once", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("ListProducts", ctx).Return(mockProducts, nil).Once()
		svc := NewCatalogService(mockRepo)

		first, err := svc.Products(ctx)
		assert.NoError(t, err)
		assert.Equal(t, mockProducts, first)

		// Panggilan kedua harus dilayani snapshot, bukan repository.
		second, err := svc.Products(ctx)
		assert.NoError(t, err)
		assert.Equal(t, mockProducts, second)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Readers get a copy, not the snapshot itself", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("ListProducts", ctx).Return(mockProducts, nil).Once()
		svc := NewCatalogService(mockRepo)

		products, err := svc.Products(ctx)
		assert.NoError(t, err)
		products[0].Name = "mutated"

		again, err := svc.Products(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "Product 1", again[0].Name)
	})

	t.Run("Cold load failure propagates", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("ListProducts", ctx).Return(nil, errors.New("db error")).Once()
		svc := NewCatalogService(mockRepo)

		products, err := svc.Products(ctx)
		assert.Error(t, err)
		assert.Nil(t, products)
	})

	t.Run("Refresh failure keeps last known snapshot", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("ListProducts", ctx).Return(mockProducts, nil).Once()
		svc := NewCatalogService(mockRepo)

		_, err := svc.Products(ctx)
		assert.NoError(t, err)

		mockRepo.On("ListProducts", ctx).Return(nil, errors.New("db down")).Once()
		assert.Error(t, svc.Refresh(ctx))

		products, err := svc.Products(ctx)
		assert.NoError(t, err)
		assert.Equal(t, mockProducts, products)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_GetProductDetails(t *testing.T) {
	ctx := context.TODO()
	mockProduct := &domain.Product{ID: "prod1", Name: "Product 1", Cost: 100}

	t.Run("Delegates to repository", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("GetProductByID", ctx, "prod1").Return(mockProduct, nil).Once()
		svc := NewCatalogService(mockRepo)

		product, err := svc.GetProductDetails(ctx, "prod1")
		assert.NoError(t, err)
		assert.Equal(t, mockProduct, product)
		mockRepo.AssertExpectations(t)
	})
}
