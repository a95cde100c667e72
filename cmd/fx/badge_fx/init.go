package badge_fx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"solace/internal/api/controllers"
	"solace/internal/repositories"
	"solace/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideBadgeRepo, provideBadgeService, provideBadgeController),
	fx.Invoke(seedBadgeCatalog),
)

func provideBadgeRepo(db *gorm.DB) repositories.BadgeRepository {
	return repositories.NewBadgeRepository(db)
}

func provideBadgeService(badgeRepo repositories.BadgeRepository) services.BadgeServiceInterface {
	return services.NewBadgeService(badgeRepo)
}

func provideBadgeController(badgeService services.BadgeServiceInterface) *controllers.BadgeController {
	return controllers.NewBadgeController(badgeService)
}

func seedBadgeCatalog(badgeRepo repositories.BadgeRepository) error {
	catalog := services.DefaultBadgeCatalog()
	if err := badgeRepo.SeedDefinitions(context.Background(), catalog); err != nil {
		return err
	}
	log.Printf("Badge catalog seeded (%d definitions)", len(catalog))
	return nil
}
