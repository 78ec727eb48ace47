package service

import (
	"fmt"

	catalogDomain "github.com/ridloal/storefront-bff/internal/catalog/domain"
	"github.com/ridloal/storefront-bff/internal/cart/domain"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
)

// Assembler men-join cart entries dengan katalog menjadi line item yang
// sudah denormalized. Stateless: setiap Assemble menghasilkan slice baru
// tanpa menyentuh input.
type Assembler struct {
	policy domain.QuantityPolicy
	diag   func(msg string, v ...interface{})
}

func NewAssembler(policy domain.QuantityPolicy, diag func(msg string, v ...interface{})) *Assembler {
	if diag == nil {
		diag = logger.Warn
	}
	return &Assembler{policy: policy, diag: diag}
}

// Assemble mencari setiap entry di katalog (linear scan, cart hanya berisi
// belasan item). Entry yang product id-nya tidak ada di katalog di-drop dan
// dicatat sebagai warning, bukan error. Urutan output mengikuti urutan
// entries, minus yang di-drop. Katalog kosong berarti hasil kosong.
func (a *Assembler) Assemble(entries []domain.CartEntry, catalog []catalogDomain.Product) domain.AssembleResult {
	result := domain.AssembleResult{Items: []domain.CartLineItem{}}
	if len(catalog) == 0 {
		return result
	}

	for _, entry := range entries {
		qty := entry.Quantity
		switch a.policy {
		case domain.QuantityClampZero:
			if qty < 0 {
				qty = 0
			}
		case domain.QuantityReject:
			if qty <= 0 {
				a.diag("Assemble: rejected non-positive quantity %d for product %s", qty, entry.ProductID)
				result.Warnings = append(result.Warnings, domain.AssembleWarning{
					ProductID: entry.ProductID,
					Kind:      domain.WarnRejectedQuantity,
					Message:   fmt.Sprintf("quantity %d is not positive", qty),
				})
				continue
			}
		}

		product, found := lookupProduct(catalog, entry.ProductID)
		if !found {
			a.diag("Assemble: product %s not found in catalog, dropping entry", entry.ProductID)
			result.Warnings = append(result.Warnings, domain.AssembleWarning{
				ProductID: entry.ProductID,
				Kind:      domain.WarnMissingProduct,
				Message:   fmt.Sprintf("product %s not found in catalog", entry.ProductID),
			})
			continue
		}

		result.Items = append(result.Items, domain.CartLineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
			Cost:      product.Cost,
			Rating:    product.Rating,
			ImageURL:  product.ImageURL,
			Quantity:  qty,
		})
	}

	return result
}

func lookupProduct(catalog []catalogDomain.Product, productID string) (catalogDomain.Product, bool) {
	for _, p := range catalog {
		if p.ID == productID {
			return p, true
		}
	}
	return catalogDomain.Product{}, false
}
