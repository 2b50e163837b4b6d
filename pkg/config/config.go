//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads edm settings from a YAML file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Prompt       string `yaml:"prompt"`
	History      string `yaml:"history"`
	HistoryLimit int    `yaml:"history_limit"`
	Log          string `yaml:"log"`
	Color        string `yaml:"color"`
}

func Default() Config {
	home, _ := os.UserHomeDir()
	c := Config{
		Prompt:       ":",
		HistoryLimit: 20,
		Color:        "auto",
	}
	if home != "" {
		c.History = filepath.Join(home, ".edm_history.db")
	}
	return c
}

// Path returns the configuration file to read: $EDM_CONF if set, otherwise
// config.yaml in the user's edm config directory.
func Path() string {
	if path, exists := os.LookupEnv("EDM_CONF"); exists {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "edm", "config.yaml")
}

// Load reads the configuration at path over the defaults. A missing file
// gives the defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	// fields absent from the file keep their defaults
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), err
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = Default().HistoryLimit
	}
	return c, nil
}
