package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	catalogDomain "github.com/ridloal/storefront-bff/internal/catalog/domain"
	"github.com/ridloal/storefront-bff/internal/cart/domain"
	"github.com/ridloal/storefront-bff/internal/navigation"
	"github.com/ridloal/storefront-bff/internal/notification"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
)

var (
	ErrItemNotInCart = errors.New("item not in cart")
	ErrCartEmpty     = errors.New("cart is empty")
)

// CatalogProvider adalah potongan catalog service yang dibutuhkan cart view.
type CatalogProvider interface {
	Products(ctx context.Context) ([]catalogDomain.Product, error)
}

type CartService interface {
	ViewCart(ctx context.Context, token string) (*domain.CartView, error)
	IncrementItem(ctx context.Context, token, productID string) error
	DecrementItem(ctx context.Context, token, productID string) error
	Checkout(ctx context.Context, token string) (string, error)
}

type cartServiceImpl struct {
	client    CartClient
	catalog   CatalogProvider
	assembler *Assembler
	notifier  notification.Notifier
}

func NewCartService(client CartClient, catalog CatalogProvider, assembler *Assembler, notifier notification.Notifier) CartService {
	if notifier == nil {
		notifier = notification.NoopNotifier{}
	}
	return &cartServiceImpl{
		client:    client,
		catalog:   catalog,
		assembler: assembler,
		notifier:  notifier,
	}
}

// ViewCart mengambil cart entries dan katalog secara paralel, lalu merakit
// line item plus totalnya. Entry yang gagal di-join tidak menggagalkan view.
func (s *cartServiceImpl) ViewCart(ctx context.Context, token string) (*domain.CartView, error) {
	var (
		entries []domain.CartEntry
		catalog []catalogDomain.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.client.GetEntries(gctx, token)
		if err != nil {
			return fmt.Errorf("failed to fetch cart entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		catalog, err = s.catalog.Products(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch catalog: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("ViewCart: fetch failed", err)
		return nil, err
	}

	result := s.assembler.Assemble(entries, catalog)
	return &domain.CartView{
		Items:      result.Items,
		TotalValue: TotalValue(result.Items),
		TotalItems: TotalCount(result.Items),
		Warnings:   result.Warnings,
	}, nil
}

func (s *cartServiceImpl) IncrementItem(ctx context.Context, token, productID string) error {
	return s.adjustQuantity(ctx, token, productID, +1)
}

func (s *cartServiceImpl) DecrementItem(ctx context.Context, token, productID string) error {
	return s.adjustQuantity(ctx, token, productID, -1)
}

// adjustQuantity meneruskan quantity baru ke cart service tanpa validasi:
// decrement dari 1 ke 0 tetap dikirim, backend yang memutuskan perlakuannya.
func (s *cartServiceImpl) adjustQuantity(ctx context.Context, token, productID string, delta int) error {
	entries, err := s.client.GetEntries(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to fetch cart entries: %w", err)
	}

	current, found := findEntry(entries, productID)
	if !found {
		return ErrItemNotInCart
	}

	newQuantity := current.Quantity + delta
	if err := s.client.UpdateQuantity(ctx, token, productID, newQuantity); err != nil {
		s.notifier.Notify("Failed to update cart", notification.SeverityError)
		return fmt.Errorf("failed to update quantity for product %s: %w", productID, err)
	}

	s.notifier.Notify("Cart updated", notification.SeveritySuccess)
	return nil
}

// Checkout memutuskan tujuan navigasi tombol checkout. Anonymous diarahkan
// ke login; cart kosong ditolak.
func (s *cartServiceImpl) Checkout(ctx context.Context, token string) (string, error) {
	if token == "" {
		return navigation.PathLogin, nil
	}

	entries, err := s.client.GetEntries(ctx, token)
	if err != nil {
		return "", fmt.Errorf("failed to fetch cart entries: %w", err)
	}
	if len(entries) == 0 {
		return "", ErrCartEmpty
	}

	return navigation.PathCheckout, nil
}

func findEntry(entries []domain.CartEntry, productID string) (domain.CartEntry, bool) {
	for _, e := range entries {
		if e.ProductID == productID {
			return e, true
		}
	}
	return domain.CartEntry{}, false
}
