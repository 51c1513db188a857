package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mrigtrishna/core/internal/pkg/mail"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3000
	defaultEnv        = "development"
	defaultMongoURL   = "mongodb://127.0.0.1:27017"
	defaultDBName     = "mrigtrishna"
)

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment variables taking precedence over file values.
type AppConfig struct {
	Port           int         `yaml:"port"`
	Env            string      `yaml:"env"` // "development" | "production"
	AllowedOrigins []string    `yaml:"allowed_origins"`
	JWTSecret      string      `yaml:"jwt_secret"`
	AdminEmail     string      `yaml:"admin_email"` // the sole principal allowed to log in
	Mongo          MongoConfig `yaml:"mongo"`
	Mail           mail.Config `yaml:"mail"`
	S3             S3Config    `yaml:"s3"`
}

// MongoConfig locates the content store.
type MongoConfig struct {
	URL    string `yaml:"url"`
	DBName string `yaml:"db_name"`
}

// S3Config locates the object store bucket (S3 API, works against R2/MinIO).
type S3Config struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	PublicBaseURL   string `yaml:"public_base_url"`
}

// Load reads the YAML config file and applies environment overrides. A
// missing file is not an error: env-only deployments are supported.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to env overrides
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if cfg.Mongo.URL == "" {
		return nil, fmt.Errorf("mongo.url is required")
	}
	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("admin_email is required")
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Mongo: MongoConfig{
			URL:    defaultMongoURL,
			DBName: defaultDBName,
		},
		S3: S3Config{Region: "auto"},
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}

func applyEnvOverrides(cfg *AppConfig) {
	setString(&cfg.Env, "APP_ENV")
	setInt(&cfg.Port, "PORT")
	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.AdminEmail, "ADMIN_EMAIL")

	setString(&cfg.Mongo.URL, "MONGODB_URI")
	setString(&cfg.Mongo.DBName, "MONGODB_DB")

	setString(&cfg.Mail.Host, "EMAIL_HOST")
	setInt(&cfg.Mail.Port, "EMAIL_PORT")
	setString(&cfg.Mail.User, "EMAIL_USER")
	setString(&cfg.Mail.Pass, "EMAIL_PASS")
	setString(&cfg.Mail.From, "EMAIL_FROM")

	setString(&cfg.S3.Endpoint, "R2_ENDPOINT")
	setString(&cfg.S3.Region, "R2_REGION")
	setString(&cfg.S3.AccessKeyID, "R2_ACCESS_KEY_ID")
	setString(&cfg.S3.SecretAccessKey, "R2_SECRET_ACCESS_KEY")
	setString(&cfg.S3.Bucket, "R2_BUCKET_NAME")
	setString(&cfg.S3.PublicBaseURL, "R2_PUBLIC_URL")

	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		parts := strings.Split(origins, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		cfg.AllowedOrigins = out
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
