package service

import (
	"github.com/ridloal/storefront-bff/internal/cart/domain"
)

// TotalValue menjumlahkan cost x quantity seluruh line item.
// Nil atau kosong menghasilkan 0. Quantity negatif ikut dihitung apa adanya;
// validasi bukan urusan aggregator.
func TotalValue(items []domain.CartLineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Cost * float64(item.Quantity)
	}
	return total
}

// TotalCount menjumlahkan quantity seluruh line item, 0 untuk nil/kosong.
func TotalCount(items []domain.CartLineItem) int {
	if len(items) == 0 {
		return 0
	}
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
