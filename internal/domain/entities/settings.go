package entities

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/rios0rios0/gitforge/pkg/config/domain/helpers"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	appName = "gitscribe"

	DefaultBackend            = "gogit"
	DefaultLogLimit           = 100
	DefaultReleasePlaceholder = "No changes since last tag."
	DefaultChangelogPath      = "CHANGELOG.md"
)

// ErrConfigNotFound is returned by FindConfigFile when no file exists.
var ErrConfigNotFound = helpers.ErrConfigFileNotFound

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the top-level configuration for gitscribe.
type Settings struct {
	Repository string          `yaml:"repository"`
	Backend    string          `yaml:"backend"`
	Release    ReleaseSettings `yaml:"release"`
}

// ReleaseSettings tunes release-notes generation.
type ReleaseSettings struct {
	LogLimit    int    `yaml:"log_limit"`
	Placeholder string `yaml:"placeholder"`
	Changelog   string `yaml:"changelog"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Repository: ".",
		Backend:    DefaultBackend,
		Release: ReleaseSettings{
			LogLimit:    DefaultLogLimit,
			Placeholder: DefaultReleasePlaceholder,
			Changelog:   DefaultChangelogPath,
		},
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and filling defaults for omitted values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML settings content.
func ParseSettings(data []byte) (*Settings, error) {
	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal([]byte(expandEnv(string(data))), settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if settings.Repository == "" {
		settings.Repository = "."
	}
	if settings.Backend == "" {
		settings.Backend = DefaultBackend
	}
	if settings.Release.Placeholder == "" {
		settings.Release.Placeholder = DefaultReleasePlaceholder
	}
	if settings.Release.Changelog == "" {
		settings.Release.Changelog = DefaultChangelogPath
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// LoadSettings loads the file at path, or the first file found by
// FindConfigFile when path is empty. Missing files fall back to defaults.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if errors.Is(err, ErrConfigNotFound) {
			logger.Debug("No config file found, using defaults")
			return DefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches ".", ".config", "configs", the home directory and
// its ".config" for .gitscribe.yaml, .gitscribe.yml, gitscribe.yaml or
// gitscribe.yml. Returns the path to the first file found or ErrConfigNotFound.
func FindConfigFile() (string, error) {
	return helpers.FindConfigFile(appName)
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func (s *Settings) validate() error {
	if s.Release.LogLimit < 0 {
		return fmt.Errorf("release.log_limit must not be negative, got %d", s.Release.LogLimit)
	}
	return nil
}
