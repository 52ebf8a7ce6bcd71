// Package config loads server settings from the environment, an optional
// .env file and an optional YAML config file. Environment values win.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type S3 struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// Enabled reports whether uploads go to object storage.
func (s S3) Enabled() bool { return s.Endpoint != "" }

type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
	PublicURL    string

	UploadDir      string
	UploadMaxBytes int64
	S3             S3

	JWTSecret         string
	AdminUser         string
	AdminPasswordHash string

	RateLimitRPS   float64
	RateLimitBurst int
	// TrustProxy takes client addresses from X-Forwarded-For / X-Real-IP.
	TrustProxy bool

	HealthPort string
	CORSOrigin string
}

// AuthEnabled reports whether operator routes need a token.
func (c *Config) AuthEnabled() bool { return c.JWTSecret != "" }

// Load reads .env, then BIZSITE_CONFIG or ./config.yaml if present, then
// the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if path := os.Getenv("BIZSITE_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}
	return LoadFrom(v)
}

// LoadFrom resolves settings from v with env overrides and validates them.
func LoadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("database_url", "mongodb://localhost:27017/bizsite")
	v.SetDefault("port", "5000")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("admin_user", "admin")
	v.SetDefault("rate_limit_rps", 5)
	v.SetDefault("rate_limit_burst", 10)
	v.SetDefault("cors_origin", "*")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// MONGO_URI is the older name used by existing deployments.
	if err := v.BindEnv("database_url", "DATABASE_URL", "MONGO_URI"); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	c := &Config{
		DatabaseURL:    v.GetString("database_url"),
		DatabaseName:   v.GetString("database_name"),
		Port:           v.GetString("port"),
		PublicURL:      v.GetString("public_url"),
		UploadDir:      v.GetString("upload_dir"),
		UploadMaxBytes: v.GetInt64("upload_max_bytes"),
		S3: S3{
			Endpoint:  v.GetString("s3_endpoint"),
			AccessKey: v.GetString("s3_access_key"),
			SecretKey: v.GetString("s3_secret_key"),
			Bucket:    v.GetString("s3_bucket"),
		},
		JWTSecret:         v.GetString("jwt_secret"),
		AdminUser:         v.GetString("admin_user"),
		AdminPasswordHash: v.GetString("admin_password_hash"),
		RateLimitRPS:      v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:    v.GetInt("rate_limit_burst"),
		TrustProxy:        v.GetBool("trust_proxy"),
		HealthPort:        v.GetString("health_port"),
		CORSOrigin:        v.GetString("cors_origin"),
	}
	if c.PublicURL == "" {
		c.PublicURL = "http://localhost:" + c.Port
	}
	c.PublicURL = strings.TrimRight(c.PublicURL, "/")

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}

	s3 := []string{c.S3.Endpoint, c.S3.AccessKey, c.S3.SecretKey, c.S3.Bucket}
	set := 0
	for _, s := range s3 {
		if s != "" {
			set++
		}
	}
	if set > 0 && set < len(s3) {
		errs = append(errs, errors.New("S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY and S3_BUCKET must be set together"))
	}

	if c.JWTSecret != "" && (c.AdminUser == "" || c.AdminPasswordHash == "") {
		errs = append(errs, errors.New("JWT_SECRET needs ADMIN_USER and ADMIN_PASSWORD_HASH"))
	}
	if c.UploadMaxBytes < 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_BYTES must not be negative"))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must not be negative"))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must be at least 1"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
