package progress_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"solace/internal/api/controllers"
	"solace/internal/repositories"
	"solace/internal/services"
	mem "solace/pkg/memcache"
)

var Module = fx.Provide(
	provideProfileRepo, provideUserLocks, provideProgressService, provideProgressController)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideUserLocks() mem.UserLockRegistry {
	return mem.NewUserLocks()
}

func provideProgressService(
	entryRepo repositories.EntryRepository,
	profileRepo repositories.ProfileRepository,
	badgeRepo repositories.BadgeRepository,
	locks mem.UserLockRegistry,
) services.ProgressServiceInterface {
	return services.NewProgressService(entryRepo, profileRepo, badgeRepo, locks)
}

func provideProgressController(progressService services.ProgressServiceInterface) *controllers.ProgressController {
	return controllers.NewProgressController(progressService)
}
