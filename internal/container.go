package internal

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/rios0rios0/gitscribe/internal/domain/commands"
	"github.com/rios0rios0/gitscribe/internal/domain/entities"
	"github.com/rios0rios0/gitscribe/internal/infrastructure/controllers"
	"github.com/rios0rios0/gitscribe/internal/infrastructure/repositories"
)

// RegisterProviders registers all internal providers with the DIG container,
// bottom-up: history backends, entities, commands, controllers, then the app.
func RegisterProviders(container *dig.Container) error {
	layers := []struct {
		name     string
		register func(*dig.Container) error
	}{
		{"repositories", repositories.RegisterProviders},
		{"entities", entities.RegisterProviders},
		{"commands", commands.RegisterProviders},
		{"controllers", controllers.RegisterProviders},
	}
	for _, layer := range layers {
		if err := layer.register(container); err != nil {
			return fmt.Errorf("failed to register %s: %w", layer.name, err)
		}
	}

	return container.Provide(NewAppInternal)
}
