// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/cybrota/trees/tree"
	"gopkg.in/yaml.v3"
)

const configFileName = ".trees.yaml"

type ShellConfig struct {
	DefaultTree string        `yaml:"default_tree"`
	Prompt      string        `yaml:"prompt"`
	SessionTTL  time.Duration `yaml:"session_ttl"`
}

type BenchConfig struct {
	Sizes      []int `yaml:"sizes"`
	Samples    int   `yaml:"samples"`
	RandomKeys bool  `yaml:"random_keys"`
	Seed       int64 `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Shell ShellConfig `yaml:"shell"`
	Bench BenchConfig `yaml:"bench"`
	Log   LogConfig   `yaml:"log"`
}

func defaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			DefaultTree: tree.AVL.String(),
			Prompt:      "trees> ",
			SessionTTL:  30 * time.Minute,
		},
		Bench: BenchConfig{
			Sizes:      []int{100, 400, 700, 1000, 1300},
			Samples:    10,
			RandomKeys: false,
			Seed:       42,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads path, or ~/.trees.yaml when path is empty. Keys missing
// from the file keep their defaults. On a read or parse failure the
// defaults are returned together with the error.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return defaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if _, err := tree.ParseVariant(c.Shell.DefaultTree); err != nil {
		return fmt.Errorf("shell.default_tree: %w", err)
	}
	if c.Shell.SessionTTL <= 0 {
		return fmt.Errorf("shell.session_ttl must be positive, got %s", c.Shell.SessionTTL)
	}
	if c.Bench.Samples <= 0 {
		return fmt.Errorf("bench.samples must be positive, got %d", c.Bench.Samples)
	}
	for _, n := range c.Bench.Sizes {
		if n <= 0 {
			return fmt.Errorf("bench.sizes must be positive, got %d", n)
		}
	}
	return nil
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// settingsMarkdown describes the effective configuration.
func settingsMarkdown(config *Config, path string, created bool) string {
	var b strings.Builder

	b.WriteString("# Trees Configuration Settings\n\n")
	if created {
		fmt.Fprintf(&b, "Config file: `%s` (newly created)\n\n", path)
	} else {
		fmt.Fprintf(&b, "Config file: `%s`\n\n", path)
	}

	b.WriteString("## Shell\n\n")
	fmt.Fprintf(&b, "* **default_tree**: %s\n", config.Shell.DefaultTree)
	fmt.Fprintf(&b, "* **prompt**: `%q`\n", config.Shell.Prompt)
	fmt.Fprintf(&b, "* **session_ttl**: %s (idle trees are dropped after this)\n\n", config.Shell.SessionTTL)

	b.WriteString("## Bench\n\n")
	sizes := make([]string, len(config.Bench.Sizes))
	for i, n := range config.Bench.Sizes {
		sizes[i] = fmt.Sprint(n)
	}
	fmt.Fprintf(&b, "* **sizes**: %s\n", strings.Join(sizes, ", "))
	fmt.Fprintf(&b, "* **samples**: %d\n", config.Bench.Samples)
	fmt.Fprintf(&b, "* **random_keys**: %t\n", config.Bench.RandomKeys)
	fmt.Fprintf(&b, "* **seed**: %d\n\n", config.Bench.Seed)

	b.WriteString("## Log\n\n")
	fmt.Fprintf(&b, "* **level**: %s\n", config.Log.Level)

	return b.String()
}

// displaySettings prints the configuration loaded from path, writing the
// default file first when none exists.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	md := settingsMarkdown(config, path, created)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err == nil {
		if rendered, err := renderer.Render(md); err == nil {
			md = rendered
		}
	}

	_, err = io.WriteString(w, md)
	return err
}
