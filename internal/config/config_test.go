package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Helper function to set environment variables for a test
	setEnv := func(key, value string) {
		t.Helper()
		t.Setenv(key, value)
	}

	t.Run("Defaults", func(t *testing.T) {
		setEnv("STORAGE_DRIVER", "")
		setEnv("APP_PORT", "")
		setEnv("RECIPE_BACKEND_URL", "")
		setEnv("RECIPE_BACKEND_TIMEOUT", "")

		cfg, err := Load("testdata/missing.env")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Server.Port != "8080" {
			t.Errorf("Expected port '8080', got '%s'", cfg.Server.Port)
		}
		if cfg.Storage.Driver != DriverFile {
			t.Errorf("Expected driver '%s', got '%s'", DriverFile, cfg.Storage.Driver)
		}
		if cfg.Recipe.Timeout != 30*time.Second {
			t.Errorf("Expected recipe timeout 30s, got %s", cfg.Recipe.Timeout)
		}
	})

	t.Run("DriverIsCaseInsensitive", func(t *testing.T) {
		setEnv("STORAGE_DRIVER", "SQLite")
		setEnv("SQLITE_PATH", "/tmp/plan.db")

		cfg, err := Load("testdata/missing.env")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Storage.Driver != DriverSQLite || cfg.SQLite.Path != "/tmp/plan.db" {
			t.Errorf("Unexpected storage config: %+v / %+v", cfg.Storage, cfg.SQLite)
		}
	})

	t.Run("UnsupportedDriver", func(t *testing.T) {
		setEnv("STORAGE_DRIVER", "redis")

		_, err := Load("testdata/missing.env")
		if err == nil {
			t.Fatal("Expected an error for unsupported driver, got nil")
		}
		expectedError := `unsupported STORAGE_DRIVER "redis"`
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("InvalidRecipeTimeout", func(t *testing.T) {
		setEnv("STORAGE_DRIVER", "memory")
		setEnv("RECIPE_BACKEND_TIMEOUT", "soon")

		if _, err := Load("testdata/missing.env"); err == nil {
			t.Fatal("Expected an error for invalid timeout, got nil")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Storage:  StorageConfig{Driver: DriverDynamoDB},
			DynamoDB: DynamoDBConfig{Region: "us-east-1", Table: "kv"},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	})

	t.Run("MissingTable", func(t *testing.T) {
		cfg := valid()
		cfg.DynamoDB.Table = ""
		err := cfg.Validate()
		if err == nil || err.Error() != "KV_TABLE must be provided" {
			t.Fatalf("Expected KV_TABLE error, got %v", err)
		}
	})

	t.Run("MissingMongoDatabase", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.Driver = DriverMongoDB
		cfg.MongoDB = MongoDBConfig{URI: "mongodb://localhost:27017"}
		err := cfg.Validate()
		if err == nil || err.Error() != "MONGODB_DB_NAME must be provided" {
			t.Fatalf("Expected MONGODB_DB_NAME error, got %v", err)
		}
	})

	t.Run("RecipeTimeoutRequiredWhenEnabled", func(t *testing.T) {
		cfg := valid()
		cfg.Recipe = RecipeBackendConfig{BaseURL: "http://recipes.test"}
		if err := cfg.Validate(); err == nil {
			t.Fatal("Expected an error for zero timeout, got nil")
		}
	})

	t.Run("Nil", func(t *testing.T) {
		var cfg *Config
		if err := cfg.Validate(); err == nil {
			t.Fatal("Expected an error for nil config, got nil")
		}
	})
}
