// Package config loads the application configuration from environment
// variables into an explicit Config struct that gets passed into the
// constructors that need it. A .env file is honoured when present.
package config

import (
	"fmt"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// InsecureJWTSecret is the development fallback signing key. It must never
// reach production; main logs a loud warning when it is in effect.
const InsecureJWTSecret = "thisisthekey"

const envPrefix = "PAWTRAIL_"

type Config struct {
	Server ServerConfig `koanf:"server"`
	DB     DBConfig     `koanf:"db"`
	JWT    JWTConfig    `koanf:"jwt"`
	S3     S3Config     `koanf:"s3"`
	Upload UploadConfig `koanf:"upload"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type DBConfig struct {
	Host         string `koanf:"host"`
	Port         string `koanf:"port"`
	User         string `koanf:"user"`
	Password     string `koanf:"password"`
	Name         string `koanf:"name"`
	SSLMode      string `koanf:"sslmode"`
	MaxOpenConns int    `koanf:"maxopenconns"`
	MaxIdleConns int    `koanf:"maxidleconns"`
}

type JWTConfig struct {
	Secret string `koanf:"secret"`
}

type S3Config struct {
	Endpoint  string `koanf:"endpoint"`
	Region    string `koanf:"region"`
	Bucket    string `koanf:"bucket"`
	AccessKey string `koanf:"accesskey"`
	SecretKey string `koanf:"secretkey"`
}

type UploadConfig struct {
	MaxBytes int64 `koanf:"maxbytes"`
}

// Load reads PAWTRAIL_* environment variables on top of built-in defaults.
// Example: PAWTRAIL_DB_HOST -> db.host -> Config.DB.Host.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{Port: "5000"},
		DB: DBConfig{
			Host:         "localhost",
			Port:         "5432",
			User:         "postgres",
			Password:     "password",
			Name:         "pawtrail",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 25,
		},
		JWT: JWTConfig{Secret: ""},
		S3: S3Config{
			Endpoint: "http://localhost:9000",
			Region:   "us-east-1",
			Bucket:   "pawtrail",
		},
		Upload: UploadConfig{MaxBytes: 200 << 20},
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		cfg.JWT.Secret = InsecureJWTSecret
	}

	return cfg, nil
}
