package usecase

import (
	"tourism-booking/internal/analytics"
	"tourism-booking/internal/cache"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/metrics"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Booking BookingService
	Chat    ChatService
	Support SupportService
	Payment PaymentService
}

// Deps carries the optional infrastructure handed to services. Cache and
// Analytics may be nil; services treat them as disabled.
type Deps struct {
	Cache     *cache.Redis
	Metrics   *metrics.Metrics
	Analytics *analytics.Producer
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger, deps Deps) *Service {
	support := NewSupportService(repo, deps.Metrics, log)

	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Catalog: NewCatalogService(repo.Package, deps.Cache, deps.Metrics, config, log),
		Booking: NewBookingService(repo, deps.Metrics, log),
		Chat:    NewChatService(repo, support, deps.Metrics, deps.Analytics, log),
		Support: support,
		Payment: NewPaymentService(repo, log),
	}
}
