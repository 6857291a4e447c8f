package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	for _, constructor := range []interface{}{
		NewDiffController,
		NewCommitController,
		NewParseCommitController,
		NewReleaseController,
		NewVersionsController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}
	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	diffController *DiffController,
	commitController *CommitController,
	parseCommitController *ParseCommitController,
	releaseController *ReleaseController,
	versionsController *VersionsController,
) *[]entities.Controller {
	return &[]entities.Controller{
		diffController,
		commitController,
		parseCommitController,
		releaseController,
		versionsController,
	}
}
