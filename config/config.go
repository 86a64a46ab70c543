package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultShortHashLength is the number of characters shown for abbreviated hashes
const DefaultShortHashLength = 7

// Configuration represents the YAML configuration file structure
type Configuration struct {
	// Identity lists the author names and emails considered "me" when
	// highlighting log output
	Identity []string `yaml:"identity"`

	// BaseDir is the directory that the global status repositories live under
	BaseDir string `yaml:"base_dir"`

	// GlobalRepos are the repositories (relative to BaseDir unless absolute)
	// checked by the global status command
	GlobalRepos []string `yaml:"global_repos"`

	// Shortcuts maps a short token to the external command it expands to.
	// User entries override the built-in table, token by token.
	Shortcuts map[string][]string `yaml:"shortcuts"`

	ShortHashLength int `yaml:"short_hash_length"`
}

// DefaultPath returns the path of the configuration file
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "gl", "config.yml")
	}
	return filepath.Join(home, ".config", "gl", "config.yml")
}

// ReadConfig reads and parses the configuration file.
// A missing file is not an error; defaults are returned.
func ReadConfig(configPath string) (*Configuration, error) {
	config := &Configuration{ShortHashLength: DefaultShortHashLength}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if config.ShortHashLength <= 0 {
		config.ShortHashLength = DefaultShortHashLength
	}

	return config, nil
}

// IsMe reports whether the given author name or email belongs to the
// configured identity
func (c *Configuration) IsMe(nameOrEmail string) bool {
	for _, id := range c.Identity {
		if id == nameOrEmail {
			return true
		}
	}
	return false
}

// GlobalRepoPaths resolves the configured global repositories to full paths
func (c *Configuration) GlobalRepoPaths() []string {
	var paths []string
	for _, repo := range c.GlobalRepos {
		if filepath.IsAbs(repo) {
			paths = append(paths, repo)
		} else {
			paths = append(paths, filepath.Join(c.BaseDir, repo))
		}
	}
	return paths
}
