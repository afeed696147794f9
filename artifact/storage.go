// Package artifact exports a search run's Summary (and its transition
// trace) as a JSON object keyed by run ID, to either local disk or
// Tencent COS, selected by bconfig.StorageConfig.
package artifact

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/bisbm/bconfig"
)

// Storage is the object-storage abstraction backing exported artifacts.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	UploadFile(ctx context.Context, key string, localPath string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	DownloadFile(ctx context.Context, key string, localPath string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	GetURL(key string) string
}

// Kind selects a Storage implementation.
type Kind string

const (
	KindLocal Kind = "local"
	KindCOS   Kind = "cos"
)

// New builds a Storage from a bconfig.StorageConfig.
func New(cfg bconfig.StorageConfig) (Storage, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	switch Kind(cfg.Type) {
	case KindCOS:
		return NewCOSStorage(COSConfig{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
			Domain:    cfg.Domain,
			Scheme:    cfg.Scheme,
		})
	default:
		return NewLocalStorage(cfg.LocalPath)
	}
}

// ValidateConfig validates a storage configuration before New builds from
// it.
func ValidateConfig(cfg bconfig.StorageConfig) error {
	kind := Kind(cfg.Type)
	if kind == "" {
		kind = KindLocal
	}
	if kind != KindCOS && kind != KindLocal {
		return fmt.Errorf("artifact: unsupported storage type: %s", cfg.Type)
	}
	if kind == KindCOS {
		if cfg.Bucket == "" {
			return fmt.Errorf("artifact: COS bucket is required")
		}
		if cfg.Region == "" {
			return fmt.Errorf("artifact: COS region is required")
		}
		if cfg.SecretID == "" || cfg.SecretKey == "" {
			return fmt.Errorf("artifact: COS credentials are required")
		}
	}
	if kind == KindLocal && cfg.LocalPath == "" {
		return fmt.Errorf("artifact: local storage path is required")
	}
	return nil
}
