package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverDynamoDB = "dynamodb"
	DriverMongoDB  = "mongodb"
	DriverSQLite   = "sqlite"
	DriverFile     = "file"
	DriverMemory   = "memory"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Storage  StorageConfig
	DynamoDB DynamoDBConfig
	MongoDB  MongoDBConfig
	SQLite   SQLiteConfig
	Recipe   RecipeBackendConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level string
}

// StorageConfig selects the key-value medium backing the configuration store.
type StorageConfig struct {
	Driver    string
	Namespace string
	FileDir   string
}

// DynamoDBConfig is local-friendly: credentials default to dummies and an
// endpoint can point at DynamoDB Local.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Table           string
}

type MongoDBConfig struct {
	URI    string
	DBName string
}

type SQLiteConfig struct {
	Path string
}

// RecipeBackendConfig points at the AI recipe backend. An empty URL disables it.
type RecipeBackendConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine when everything comes from the environment.
		_ = godotenv.Load()
	}

	timeout, err := time.ParseDuration(getenvWithDefault("RECIPE_BACKEND_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("RECIPE_BACKEND_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver:    strings.ToLower(getenvWithDefault("STORAGE_DRIVER", DriverFile)),
			Namespace: getenvWithDefault("STORAGE_NAMESPACE", "default"),
			FileDir:   getenvWithDefault("FILE_STORAGE_DIR", "./data"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvWithDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvWithDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvWithDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			Table:           getenvWithDefault("KV_TABLE", "planappetit_kv"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "planappetit"),
		},
		SQLite: SQLiteConfig{
			Path: getenvWithDefault("SQLITE_PATH", "./data/planappetit.db"),
		},
		Recipe: RecipeBackendConfig{
			BaseURL: os.Getenv("RECIPE_BACKEND_URL"),
			Token:   os.Getenv("RECIPE_BACKEND_TOKEN"),
			Timeout: timeout,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Storage.Driver {
	case DriverDynamoDB:
		if c.DynamoDB.Table == "" {
			return errors.New("KV_TABLE must be provided")
		}
		if c.DynamoDB.Region == "" {
			return errors.New("AWS_REGION must be provided")
		}
	case DriverMongoDB:
		if c.MongoDB.URI == "" {
			return errors.New("MONGODB_URI must be provided")
		}
		if c.MongoDB.DBName == "" {
			return errors.New("MONGODB_DB_NAME must be provided")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return errors.New("SQLITE_PATH must be provided")
		}
	case DriverFile:
		if c.Storage.FileDir == "" {
			return errors.New("FILE_STORAGE_DIR must be provided")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Recipe.BaseURL != "" && c.Recipe.Timeout <= 0 {
		return errors.New("RECIPE_BACKEND_TIMEOUT must be positive")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
