package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Library LibraryConfig `yaml:"library"`
	Convert ConvertConfig `yaml:"convert"`
	Schema  SchemaConfig  `yaml:"schema"`
	MCP     MCPConfig     `yaml:"mcp"`
}

type LibraryConfig struct {
	Root string `yaml:"root"`
}

type ConvertConfig struct {
	OutputDir  string `yaml:"output_dir"`
	SingleFile bool   `yaml:"single_file"`
}

// SchemaConfig optionally points at a schema file to use instead of the
// embedded one.
type SchemaConfig struct {
	Path string `yaml:"path"`
}

type MCPConfig struct {
	ServerName string `yaml:"server_name"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Library: LibraryConfig{Root: "workouts"},
		Convert: ConvertConfig{OutputDir: "workouts"},
		MCP:     MCPConfig{ServerName: "cycling-workouts"},
	}
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix WORKOUTS_ and underscore-separated
// paths:
//
//	WORKOUTS_LIBRARY_ROOT,
//	WORKOUTS_CONVERT_OUTPUT_DIR, WORKOUTS_CONVERT_SINGLE_FILE,
//	WORKOUTS_SCHEMA_PATH, WORKOUTS_MCP_SERVER_NAME
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config at path if it exists; an empty path yields
// defaults plus env overrides. The CLI works without a config file at all.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		applyEnvOverrides(cfg)
		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("config validation: %w", err)
		}
		return cfg, nil
	}
	return Load(path)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WORKOUTS_LIBRARY_ROOT"); v != "" {
		cfg.Library.Root = v
	}
	if v := os.Getenv("WORKOUTS_CONVERT_OUTPUT_DIR"); v != "" {
		cfg.Convert.OutputDir = v
	}
	if v := os.Getenv("WORKOUTS_CONVERT_SINGLE_FILE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Convert.SingleFile = b
		}
	}
	if v := os.Getenv("WORKOUTS_SCHEMA_PATH"); v != "" {
		cfg.Schema.Path = v
	}
	if v := os.Getenv("WORKOUTS_MCP_SERVER_NAME"); v != "" {
		cfg.MCP.ServerName = v
	}
}

func (c *Config) validate() error {
	if c.Library.Root == "" {
		return fmt.Errorf("library.root is required")
	}
	if c.Convert.OutputDir == "" {
		return fmt.Errorf("convert.output_dir is required")
	}
	if c.MCP.ServerName == "" {
		return fmt.Errorf("mcp.server_name is required")
	}
	return nil
}
