package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("MONGODB_URI")
	os.Unsetenv("PORT")
	os.Unsetenv("AUTO_INIT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MongoURI != "mongodb://localhost:27017/healthcare_wellness" {
		t.Errorf("expected local default MONGODB_URI, got %s", cfg.MongoURI)
	}
	if cfg.DatabaseName != "healthcare_wellness" {
		t.Errorf("expected default database name, got %s", cfg.DatabaseName)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Port)
	}
	if !cfg.AutoInit {
		t.Error("expected AUTO_INIT to default to true")
	}
}

func TestLoad_WithMongoURI(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://db.internal:27017/wellness")
	defer os.Unsetenv("MONGODB_URI")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MongoURI != "mongodb://db.internal:27017/wellness" {
		t.Errorf("expected MONGODB_URI to be set, got %s", cfg.MongoURI)
	}
}

func TestLoad_AutoInitDisabled(t *testing.T) {
	os.Setenv("AUTO_INIT", "false")
	defer os.Unsetenv("AUTO_INIT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AutoInit {
		t.Error("expected AUTO_INIT=false to disable auto initialization")
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}
