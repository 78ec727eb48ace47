package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridloal/storefront-bff/internal/cart/domain"
)

func TestTotalValue(t *testing.T) {
	t.Run("Empty and nil yield zero", func(t *testing.T) {
		assert.Equal(t, 0.0, TotalValue([]domain.CartLineItem{}))
		assert.Equal(t, 0.0, TotalValue(nil))
	})

	t.Run("Sums cost times quantity", func(t *testing.T) {
		items := []domain.CartLineItem{
			{ProductID: "prodA", Cost: 5.0, Quantity: 3},
			{ProductID: "prodB", Cost: 2.0, Quantity: 1},
		}
		assert.Equal(t, 17.0, TotalValue(items))
	})

	t.Run("Negative quantity passes through arithmetic", func(t *testing.T) {
		items := []domain.CartLineItem{
			{ProductID: "prodA", Cost: 10.0, Quantity: -2},
			{ProductID: "prodB", Cost: 4.0, Quantity: 5},
		}
		assert.Equal(t, 0.0, TotalValue(items))
	})

	t.Run("Fractional cost", func(t *testing.T) {
		items := []domain.CartLineItem{
			{ProductID: "prodC", Cost: 5.5, Quantity: 2},
		}
		assert.InDelta(t, 11.0, TotalValue(items), 1e-9)
	})
}

func TestTotalCount(t *testing.T) {
	t.Run("Empty and nil yield zero", func(t *testing.T) {
		assert.Equal(t, 0, TotalCount([]domain.CartLineItem{}))
		assert.Equal(t, 0, TotalCount(nil))
	})

	t.Run("Sums quantities", func(t *testing.T) {
		items := []domain.CartLineItem{
			{ProductID: "prodA", Quantity: 2},
			{ProductID: "prodB", Quantity: 3},
		}
		assert.Equal(t, 5, TotalCount(items))
	})

	t.Run("Zero and negative quantities included as-is", func(t *testing.T) {
		items := []domain.CartLineItem{
			{ProductID: "prodA", Quantity: 0},
			{ProductID: "prodB", Quantity: -1},
			{ProductID: "prodC", Quantity: 4},
		}
		assert.Equal(t, 3, TotalCount(items))
	})
}
