package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ManuelReschke/NewsFox/internal/pkg/env"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config selects and configures the blob backend
type Config struct {
	Driver    string
	LocalPath string // root directory of the local backend
	MediaURL  string // public URL prefix blob keys are served under
	S3        S3Config
}

// S3Config holds the credentials of an S3 compatible bucket
type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	EndpointURL     string // optional, for S3-compatible services
}

// LoadConfig reads the storage configuration from the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Driver:    strings.ToLower(env.GetEnv("STORAGE_DRIVER", DriverLocal)),
		LocalPath: env.GetEnv("STORAGE_LOCAL_PATH", "uploads"),
		MediaURL:  env.GetEnv("MEDIA_URL", "/media/"),
		S3: S3Config{
			AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
			Region:          env.GetEnv("S3_REGION", "us-east-1"),
			BucketName:      env.GetEnv("S3_BUCKET_NAME", ""),
			EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected driver has everything it needs
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverLocal:
		if c.LocalPath == "" {
			return errors.New("STORAGE_LOCAL_PATH is required for the local storage driver")
		}
	case DriverS3:
		if c.S3.AccessKeyID == "" {
			return errors.New("S3_ACCESS_KEY_ID is required for the s3 storage driver")
		}
		if c.S3.SecretAccessKey == "" {
			return errors.New("S3_SECRET_ACCESS_KEY is required for the s3 storage driver")
		}
		if c.S3.BucketName == "" {
			return errors.New("S3_BUCKET_NAME is required for the s3 storage driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
	return nil
}
