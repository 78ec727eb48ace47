package service

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/ridloal/storefront-bff/internal/catalog/domain"
	"github.com/ridloal/storefront-bff/internal/catalog/repository"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
)

type CatalogService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	GetProductDetails(ctx context.Context, productID string) (*domain.Product, error)
	Refresh(ctx context.Context) error
}

type SnapshotService struct {
	repo      repository.ProductRepository
	scheduler *cron.Cron

	mu       sync.RWMutex
	snapshot []domain.Product
	warm     bool
}

func NewCatalogService(repo repository.ProductRepository) *SnapshotService {
	return &SnapshotService{
		repo:      repo,
		scheduler: cron.New(),
	}
}

// StartRefreshJob menjadwalkan refresh snapshot katalog secara periodik.
// Dipisah dari constructor agar unit test tidak perlu scheduler berjalan.
func (s *SnapshotService) StartRefreshJob(spec string) error {
	_, err := s.scheduler.AddFunc(spec, func() {
		if err := s.Refresh(context.Background()); err != nil {
			logger.Error("CatalogService: scheduled refresh failed", err)
		}
	})
	if err != nil {
		return err
	}
	s.scheduler.Start()
	logger.Info("Catalog refresh scheduler started with spec '%s'", spec)
	return nil
}

func (s *SnapshotService) StopRefreshJob() {
	s.scheduler.Stop()
}

// Refresh menarik seluruh katalog dari repository ke snapshot in-memory.
func (s *SnapshotService) Refresh(ctx context.Context) error {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = products
	s.warm = true
	s.mu.Unlock()

	logger.Info("Catalog snapshot refreshed, %d products", len(products))
	return nil
}

// Products mengembalikan snapshot katalog. Kalau snapshot belum pernah terisi,
// load dulu dari repository (read-through). Kegagalan repository setelah
// snapshot warm tidak menggagalkan pembaca: last known catalog tetap dipakai.
func (s *SnapshotService) Products(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	warm := s.warm
	snapshot := s.snapshot
	s.mu.RUnlock()

	if !warm {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
		s.mu.RLock()
		snapshot = s.snapshot
		s.mu.RUnlock()
	}

	// Copy supaya caller tidak bisa memodifikasi snapshot internal.
	out := make([]domain.Product, len(snapshot))
	copy(out, snapshot)
	return out, nil
}

func (s *SnapshotService) GetProductDetails(ctx context.Context, productID string) (*domain.Product, error) {
	return s.repo.GetProductByID(ctx, productID)
}
