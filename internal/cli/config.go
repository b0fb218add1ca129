package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	doppelerrors "github.com/toyz/doppel/internal/errors"
	"github.com/toyz/doppel/internal/models"
	"github.com/toyz/doppel/internal/utils"
)

// DefaultConfigFile is looked up in the working directory when --config is
// not given
const DefaultConfigFile = ".doppel.yml"

// FileConfig mirrors the .doppel.yml schema. Flag values override it.
type FileConfig struct {
	Version  string            `yaml:"version"`  // minimum doppel version, semver with leading v
	Output   string            `yaml:"output"`   // output directory for artifacts
	Access   string            `yaml:"access"`   // default access level
	Imports  []string          `yaml:"imports"`  // extra imports emitted after Foundation
	Literals map[string]string `yaml:"literals"` // custom default literals, consulted before builtins
}

// LoadConfig reads and validates a config file
func LoadConfig(path, binaryVersion string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, doppelerrors.WrapConfigurationError("config", "read", err)
	}

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, doppelerrors.WrapConfigurationError("config", "parse", err)
	}
	if err := config.Validate(binaryVersion); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadDefaultConfig loads .doppel.yml when it exists. A missing file is an
// empty config; any other failure is an error.
func LoadDefaultConfig(binaryVersion string) (*FileConfig, error) {
	config, err := LoadConfig(DefaultConfigFile, binaryVersion)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, err
	}
	return config, nil
}

// importPath accepts a module name with optional dotted submodule segments
var importPath = utils.NewValidatorChain(
	utils.NotEmpty("imports"),
	utils.MatchesRegex("imports", `^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`),
)

// Validate checks the version gate and the enumerated fields
func (c *FileConfig) Validate(binaryVersion string) error {
	if c.Version != "" {
		if !semver.IsValid(c.Version) {
			return doppelerrors.New(doppelerrors.ConfigurationErrorCode,
				fmt.Sprintf("invalid version %q in config", c.Version)).
				WithSuggestion("versions use semver with a leading v, e.g. v0.3.0")
		}
		if semver.Compare(c.Version, binaryVersion) > 0 {
			return doppelerrors.Newf(doppelerrors.ConfigurationErrorCode,
				"config requires doppel %s or newer, this is %s", c.Version, binaryVersion)
		}
	}

	if c.Access != "" {
		if _, err := models.ParseAccessLevel(c.Access); err != nil {
			return doppelerrors.WrapConfigurationError("config", "validate", err)
		}
	}

	for _, name := range c.Imports {
		if err := importPath.Validate(name); err != nil {
			return doppelerrors.WrapConfigurationError("config", "validate", err)
		}
	}

	return nil
}
