package usecase

import (
	"context"
	"fmt"
	"time"

	"tourism-booking/internal/cache"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/response"
	"tourism-booking/internal/metrics"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const featuredLimit = 6

type CatalogService interface {
	ListPackages(ctx context.Context, filter repository.PackageFilter) ([]response.PackageResponse, error)
	FeaturedPackages(ctx context.Context) ([]response.PackageResponse, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*response.PackageResponse, error)
}

type catalogService struct {
	packages repository.PackageRepository
	cache    *cache.Redis
	metrics  *metrics.Metrics
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewCatalogService(
	packages repository.PackageRepository,
	redis *cache.Redis,
	m *metrics.Metrics,
	config *utils.Config,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		packages: packages,
		cache:    redis,
		metrics:  m,
		cacheTTL: time.Duration(config.Redis.CacheTTL) * time.Second,
		log:      log,
	}
}

func (s *catalogService) ListPackages(ctx context.Context, filter repository.PackageFilter) ([]response.PackageResponse, error) {
	pkgs, err := s.packages.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list packages", zap.Error(err))
		return nil, fmt.Errorf("failed to list packages")
	}

	return response.PackagesToResponse(pkgs), nil
}

// FeaturedPackages is the landing-page query, served from cache when
// possible. Caching is best-effort: Redis being down degrades to the
// database, never to an error.
func (s *catalogService) FeaturedPackages(ctx context.Context) ([]response.PackageResponse, error) {
	const cacheKey = "packages:featured"

	if s.cache != nil {
		var cached []response.PackageResponse
		hit, err := s.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			s.log.Warn("Featured packages cache read failed", zap.Error(err))
		}
		if hit {
			s.countCacheLookup("featured", "hit")
			return cached, nil
		}
		s.countCacheLookup("featured", "miss")
	}

	pkgs, err := s.packages.FindFeatured(ctx, featuredLimit)
	if err != nil {
		s.log.Error("Failed to list featured packages", zap.Error(err))
		return nil, fmt.Errorf("failed to list featured packages")
	}

	resp := response.PackagesToResponse(pkgs)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, resp, s.cacheTTL); err != nil {
			s.log.Warn("Featured packages cache write failed", zap.Error(err))
		}
	}

	return resp, nil
}

func (s *catalogService) GetPackage(ctx context.Context, id uuid.UUID) (*response.PackageResponse, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get package", zap.Error(err), zap.String("package_id", id.String()))
		return nil, fmt.Errorf("failed to get package")
	}
	if pkg == nil {
		return nil, fmt.Errorf("%w: package", ErrNotFound)
	}

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *catalogService) countCacheLookup(group, outcome string) {
	if s.metrics != nil {
		s.metrics.CacheLookups.WithLabelValues(group, outcome).Inc()
	}
}
