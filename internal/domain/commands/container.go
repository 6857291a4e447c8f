package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []interface{}{
		NewDiffCommand,
		NewCommitCommand,
		NewParseCommitCommand,
		NewReleaseCommand,
		NewVersionsCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	for _, binding := range []interface{}{
		func(impl *DiffCommand) Diff { return impl },
		func(impl *CommitCommand) Commit { return impl },
		func(impl *ParseCommitCommand) ParseCommit { return impl },
		func(impl *ReleaseCommand) Release { return impl },
		func(impl *VersionsCommand) Versions { return impl },
	} {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
