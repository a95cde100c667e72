package affirmation_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"solace/internal/api/controllers"
	"solace/internal/repositories"
	"solace/internal/services"
	mem "solace/pkg/memcache"
	"solace/pkg/utils"
)

var Module = fx.Provide(
	provideTextGenClient,
	provideAffirmationCache,
	provideAffirmationService,
	provideAffirmationController)

// provideTextGenClient creates the affirmation client based on environment variables
func provideTextGenClient() (utils.TextGenClientInterface, error) {
	provider := getEnvWithDefault("AFFIRMATION_PROVIDER", "gemini") // Default to free Gemini

	var apiKey string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	model := os.Getenv("AFFIRMATION_MODEL")

	log.Printf("Initializing %s affirmation client", provider)
	return utils.NewTextGenClient(provider, apiKey, model)
}

func provideAffirmationCache() mem.AffirmationCache {
	return mem.NewAffirmations()
}

func provideAffirmationService(
	entryRepo repositories.EntryRepository,
	textGen utils.TextGenClientInterface,
	cache mem.AffirmationCache,
) services.AffirmationServiceInterface {
	return services.NewAffirmationService(entryRepo, textGen, cache)
}

func provideAffirmationController(affirmationService services.AffirmationServiceInterface) *controllers.AffirmationController {
	return controllers.NewAffirmationController(affirmationService)
}

func getEnvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
