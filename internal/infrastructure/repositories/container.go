package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	gogitRepo "github.com/rios0rios0/gitscribe/internal/infrastructure/repositories/gogit"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() *HistoryRegistry {
		reg := NewHistoryRegistry()
		reg.Register(entities.DefaultBackend, gogitRepo.NewHistoryRepository)
		return reg
	})
}
