package utils

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port string `yaml:"PORT"`

	// Database configuration
	DBDriver string `yaml:"DB_DRIVER"` // sqlite (default) or postgres
	DBPath   string `yaml:"DB_PATH"`   // sqlite file path
	DBHost   string `yaml:"DB_HOST"`
	DBPort   string `yaml:"DB_PORT"`
	DBUser   string `yaml:"DB_USER"`
	DBName   string `yaml:"DB_NAME"`

	DBPassword string `yaml:"DB_PASSWORD"`

	// Image storage
	ImgDir string `yaml:"IMG_DIR"`
}

var config Config

// LoadConfig reads config.yaml if present. Environment variables always win
// over yaml values; see GetConfig.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("No config.yaml, using defaults and environment: %s\n", err)
		return
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}
}

// DataDir is the per-user application directory holding the sqlite database
// and uploaded images.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cookbook"
	}
	return filepath.Join(home, ".cookbook")
}

func GetConfig(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	switch key {
	case "PORT":
		return config.Port
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_PATH":
		return config.DBPath
	case "DB_HOST":
		return config.DBHost
	case "DB_PORT":
		return config.DBPort
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "IMG_DIR":
		return config.ImgDir
	default:
		return ""
	}
}
