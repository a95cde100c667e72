package insights_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"solace/internal/api/controllers"
	"solace/internal/repositories"
	"solace/internal/services"
)

var Module = fx.Provide(
	provideInsightsRepo, provideInsightsService, provideInsightsController)

func provideInsightsRepo(db *gorm.DB) repositories.InsightsRepository {
	return repositories.NewInsightsRepository(db)
}

func provideInsightsService(repo repositories.InsightsRepository) services.InsightsServiceInterface {
	return services.NewInsightsService(repo)
}

func provideInsightsController(insightsService services.InsightsServiceInterface) *controllers.InsightsController {
	return controllers.NewInsightsController(insightsService)
}
