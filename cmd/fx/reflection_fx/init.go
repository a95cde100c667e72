package reflection_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"solace/internal/repositories"
	"solace/internal/services"
	"solace/pkg/utils"
)

var Module = fx.Provide(
	provideEmbeddingClient, provideEntryEmbeddingRepo, provideReflectionService)

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIEmbeddingClient(os.Getenv("OPENAI_API_KEY"))
}

func provideEntryEmbeddingRepo(db *gorm.DB) repositories.EntryEmbeddingRepository {
	return repositories.NewEntryEmbeddingRepository(db)
}

func provideReflectionService(
	entryRepo repositories.EntryRepository,
	embeddingRepo repositories.EntryEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
) services.ReflectionServiceInterface {
	return services.NewReflectionService(entryRepo, embeddingRepo, embedder)
}
