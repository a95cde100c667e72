package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"solace/internal/api/controllers"
	"solace/internal/repositories"
	"solace/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideSubscriptionService, provideSubscriptionController)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	progress services.ProgressServiceInterface,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo, progress)
}

func provideSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}
