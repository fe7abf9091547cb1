package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/ManuelReschke/NewsFox/internal/pkg/upload"
)

// Kind selects the directory an uploaded image is filed under
type Kind string

const (
	KindAvatar   Kind = "avatar"
	KindLogo     Kind = "logo"
	KindCategory Kind = "category"
	KindContent  Kind = "content"
)

var kindPrefixes = map[Kind]string{
	KindAvatar:   "avatar/",
	KindLogo:     "logo/",
	KindCategory: "category_images/",
	KindContent:  "content_images/",
}

var (
	ErrUnknownKind = errors.New("unknown media kind")
	ErrInvalidKey  = errors.New("invalid blob key")
)

// ParseKind validates a kind taken from a request path
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(s))
	if _, ok := kindPrefixes[k]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
	}
	return k, nil
}

// Prefix returns the key prefix of the kind, e.g. "content_images/"
func (k Kind) Prefix() string {
	return kindPrefixes[k]
}

// Backend is a flat key/value blob store
type Backend interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Stored describes a saved image
type Stored struct {
	Key         string `json:"path"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Store validates images and files them under their kind's prefix with a random name
type Store struct {
	backend  Backend
	mediaURL string
}

func NewStore(backend Backend, mediaURL string) *Store {
	if !strings.HasSuffix(mediaURL, "/") {
		mediaURL += "/"
	}
	return &Store{backend: backend, mediaURL: mediaURL}
}

// New builds the backend selected in cfg
func New(ctx context.Context, cfg *Config) (*Store, error) {
	var backend Backend
	var err error

	switch cfg.Driver {
	case DriverLocal:
		backend, err = NewLocalBackend(cfg.LocalPath)
	case DriverS3:
		backend, err = NewS3Backend(ctx, cfg.S3)
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	log.Infof("[Storage] Using %s backend, media served from %s", cfg.Driver, cfg.MediaURL)
	return NewStore(backend, cfg.MediaURL), nil
}

// Backend returns the underlying blob backend
func (s *Store) Backend() Backend {
	return s.backend
}

// SaveImage reads r completely, checks that it is a supported image and stores it
// as <prefix><uuid><ext>. The returned key is what models keep in their image fields.
func (s *Store) SaveImage(ctx context.Context, kind Kind, filename string, r io.Reader) (*Stored, error) {
	prefix := kind.Prefix()
	if prefix == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	data, err := io.ReadAll(io.LimitReader(r, upload.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	contentType, bounds, err := upload.ValidateImage(filename, data)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	key := prefix + uuid.New().String() + ext

	if err := s.backend.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		log.Errorf("[Storage] Failed to store %s: %v", key, err)
		return nil, err
	}

	return &Stored{
		Key:         key,
		URL:         s.URL(key),
		ContentType: contentType,
		Size:        int64(len(data)),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

// Delete removes a stored blob, empty keys are ignored
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.backend.Delete(ctx, key)
}

// URL returns the public URL of key, or "" for an empty key
func (s *Store) URL(key string) string {
	if key == "" {
		return ""
	}
	if strings.HasPrefix(s.mediaURL, "http://") || strings.HasPrefix(s.mediaURL, "https://") {
		return s.mediaURL + key
	}
	return path.Join(s.mediaURL, key)
}

var store *Store

// SetupStorage initializes the package level store from the environment
func SetupStorage(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	s, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	store = s
	return nil
}

// GetStore returns the store created by SetupStorage
func GetStore() *Store {
	return store
}
