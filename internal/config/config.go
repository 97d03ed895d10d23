package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`
	AI struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"ai"`
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	var cfg Config
	cfg.Store.Path = "pageforge.db"

	// 2. Load YAML config when present
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with environment variables if present
	if apiKey := os.Getenv("PAGEFORGE_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if provider := os.Getenv("PAGEFORGE_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if dbPath := os.Getenv("PAGEFORGE_DB"); dbPath != "" {
		cfg.Store.Path = dbPath
	}

	return &cfg, nil
}
