package controllers

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitscribe/internal/domain/commands"
	"github.com/rios0rios0/gitscribe/internal/domain/entities"
)

const stdinArg = "-"

// loadSettings reads the settings selected by the persistent --config flag
// and applies the --repo override.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return nil, err
	}
	if repoDir, _ := cmd.Flags().GetString("repo"); repoDir != "" {
		settings.Repository = repoDir
	}
	return settings, nil
}

func repositoryOptions(settings *entities.Settings) commands.RepositoryOptions {
	return commands.RepositoryOptions{
		RepoDir: settings.Repository,
		Backend: settings.Backend,
	}
}

// stdinIfRequested returns the command input when --stdin is set or the
// first argument is "-", nil otherwise.
func stdinIfRequested(cmd *cobra.Command, args []string) io.Reader {
	useStdin, _ := cmd.Flags().GetBool("stdin")
	if useStdin || (len(args) > 0 && args[0] == stdinArg) {
		return cmd.InOrStdin()
	}
	return nil
}
