package utils

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port         string `yaml:"PORT"`
	LogFile      string `yaml:"LOG_FILE"`
	RateLimitMax string `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// JWT configuration
	JWTSecret string `yaml:"JWT_SECRET"`

	// OpenAI configuration
	OpenAIAPIKey  string `yaml:"OPENAI_API_KEY"`
	OpenAIModel   string `yaml:"OPENAI_MODEL"`
	OpenAIBaseURL string `yaml:"OPENAI_BASE_URL"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		Port:         "3000",
		LogFile:      "./logs/app.log",
		RateLimitMax: "10",
		DBPort:       "5432",
		DBSSLMode:    "disable",
		OpenAIModel:  "gpt-4o-mini",
	}
}

// LoadConfig reads the yaml file at path, then a .env file in the same
// directory, then the process environment. Later sources win. Missing files
// are not an error.
func LoadConfig(path string) error {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return err
		}
	}

	dotenv, err := godotenv.Read(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	for key, field := range cfg.fields() {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		} else if v, ok := dotenv[key]; ok {
			*field = v
		}
	}

	config = cfg
	return nil
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"PORT":            &c.Port,
		"LOG_FILE":        &c.LogFile,
		"RATE_LIMIT_MAX":  &c.RateLimitMax,
		"DB_USER":         &c.DBUser,
		"DB_NAME":         &c.DBName,
		"DB_PASSWORD":     &c.DBPassword,
		"DB_PORT":         &c.DBPort,
		"DB_HOST":         &c.DBHost,
		"DB_SSLMODE":      &c.DBSSLMode,
		"JWT_SECRET":      &c.JWTSecret,
		"OPENAI_API_KEY":  &c.OpenAIAPIKey,
		"OPENAI_MODEL":    &c.OpenAIModel,
		"OPENAI_BASE_URL": &c.OpenAIBaseURL,
	}
}

func GetConfig(key string) string {
	if field, ok := config.fields()[key]; ok {
		return *field
	}
	return ""
}
