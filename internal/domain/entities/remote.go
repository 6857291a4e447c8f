package entities

import (
	"fmt"
	"strings"

	gitInfra "github.com/rios0rios0/gitforge/pkg/git/infrastructure"
	globalEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

const (
	ProviderGitHub      = "github"
	ProviderGitLab      = "gitlab"
	ProviderAzureDevOps = "azuredevops"
)

//nolint:gochecknoglobals // closed lookup table
var providerTypes = map[globalEntities.ServiceType]string{
	globalEntities.GITHUB:      ProviderGitHub,
	globalEntities.GITLAB:      ProviderGitLab,
	globalEntities.AZUREDEVOPS: ProviderAzureDevOps,
}

// Remote holds the parsed components of a Git remote URL.
type Remote struct {
	ProviderType string
	Org          string
	Project      string // Azure DevOps only
	RepoName     string
}

// IsGitHub reports whether the remote is hosted on GitHub.
func (r Remote) IsGitHub() bool { return r.ProviderType == ProviderGitHub }

// ParseRemoteURL extracts provider, org, project, and repo name from a Git
// remote URL in https or ssh form. GitLab subgroups stay in Org joined by "/".
func ParseRemoteURL(rawURL string) (*Remote, error) {
	info, err := gitInfra.ParseRemoteURL(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("failed to parse git remote URL: %w", err)
	}

	provider, ok := providerTypes[info.ServiceType]
	if !ok || info.Organization == "" || info.RepoName == "" {
		return nil, fmt.Errorf("unsupported git remote URL: %s", rawURL)
	}

	return &Remote{
		ProviderType: provider,
		Org:          info.Organization,
		Project:      info.Project,
		RepoName:     info.RepoName,
	}, nil
}
