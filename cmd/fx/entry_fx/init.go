package entry_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"solace/internal/api/controllers"
	"solace/internal/repositories"
	"solace/internal/services"
)

var Module = fx.Provide(
	provideEntryRepo, provideEntryService, provideEntryController)

func provideEntryRepo(db *gorm.DB) repositories.EntryRepository {
	return repositories.NewEntryRepository(db)
}

func provideEntryService(
	entryRepo repositories.EntryRepository,
	progress services.ProgressServiceInterface,
	reflection services.ReflectionServiceInterface,
) services.EntryServiceInterface {
	return services.NewEntryService(entryRepo, progress, reflection)
}

func provideEntryController(
	entryService services.EntryServiceInterface,
	reflectionService services.ReflectionServiceInterface,
) *controllers.EntryController {
	return controllers.NewEntryController(entryService, reflectionService)
}
