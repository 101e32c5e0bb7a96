// Package site implements the site-level operations behind the init, build,
// and info sub-commands: configuration loading, scaffolding, and the copy
// pipeline that publishes the source tree into the output directory.
package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// ConfigFileName marks a directory as a blogofile site.
const ConfigFileName = "_config.yml"

// Config holds the site-wide settings read from the config file, with
// BF_* environment variables taking precedence.
type Config struct {
	SiteName        string `mapstructure:"site_name" envconfig:"SITE_NAME"`
	SiteURL         string `mapstructure:"site_url" envconfig:"SITE_URL"`
	SiteDescription string `mapstructure:"site_description" envconfig:"SITE_DESCRIPTION"`
	Author          string `mapstructure:"author" envconfig:"AUTHOR"`
	OutputDir       string `mapstructure:"output_dir" envconfig:"OUTPUT_DIR"`
	PostsPerPage    int    `mapstructure:"posts_per_page" envconfig:"POSTS_PER_PAGE"`
}

// DefaultConfig returns the settings used when the config file is absent
// or leaves a field unset.
func DefaultConfig() Config {
	return Config{
		SiteName:     "Unnamed site",
		SiteURL:      "http://www.example.com",
		OutputDir:    "_site",
		PostsPerPage: 10,
	}
}

// LoadConfig reads the site configuration from srcDir. A missing config
// file yields the defaults; a malformed one is an error.
var LoadConfig = func(srcDir string) (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(srcDir, ConfigFileName)
	raw, err := readFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("could not read %s\n%s", path, err.Error())
		}
	} else {
		values := map[string]interface{}{}
		if err := yaml.Unmarshal(raw, &values); err != nil {
			return Config{}, fmt.Errorf("could not parse %s\n%s", path, err.Error())
		}
		if err := mapstructure.Decode(values, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid value in %s\n%s", path, err.Error())
		}
	}
	if err := envconfig.Process("BF", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
