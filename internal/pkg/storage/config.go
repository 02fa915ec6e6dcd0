package storage

import (
	"errors"
	"fmt"

	"github.com/waveforge/waveforge/internal/pkg/env"
)

// Config holds object storage configuration
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // Optional for S3-compatible services
	Enabled         bool
}

// LoadConfig loads storage configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		Region:          env.GetEnv("S3_REGION", "us-east-1"),
		BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		Enabled:         env.GetEnv("S3_STORAGE_ENABLED", "false") == "true",
	}

	if config.Enabled {
		if config.AccessKeyID == "" {
			return nil, errors.New("S3_ACCESS_KEY_ID is required when storage is enabled")
		}
		if config.SecretAccessKey == "" {
			return nil, errors.New("S3_SECRET_ACCESS_KEY is required when storage is enabled")
		}
		if config.BucketName == "" {
			return nil, errors.New("S3_BUCKET_NAME is required when storage is enabled")
		}
	}

	return config, nil
}

// IsEnabled returns true if object storage is enabled
func (c *Config) IsEnabled() bool {
	return c.Enabled
}

// InstallerKey generates the object key for a product installer build.
// Format: installers/<product-id>/<version>/<filename>
func InstallerKey(productID, version, filename string) string {
	return fmt.Sprintf("installers/%s/%s/%s", productID, version, filename)
}

// DemoKey generates the object key for a product audio demo.
func DemoKey(productID, filename string) string {
	return fmt.Sprintf("demos/%s/%s", productID, filename)
}

// ArtworkKey generates the object key for product artwork variants.
func ArtworkKey(productID, variant, filename string) string {
	return fmt.Sprintf("artwork/%s/%s/%s", productID, variant, filename)
}

// GetAppEnv returns the current application environment
func GetAppEnv() string {
	return env.GetEnv("APP_ENV", "dev")
}

// GetBucketName returns the configured bucket name
func (c *Config) GetBucketName() string {
	return c.BucketName
}
