package storage

import (
	"bytes"
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/NewsFox/internal/pkg/env"
	"github.com/ManuelReschke/NewsFox/internal/pkg/upload"
)

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(16, 9, color.NRGBA{R: 10, G: 120, B: 200, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func newLocalStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	backend, err := NewLocalBackend(root)
	require.NoError(t, err)
	return NewStore(backend, "/media"), root
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in     string
		prefix string
	}{
		{"avatar", "avatar/"},
		{"logo", "logo/"},
		{"Category", "category_images/"},
		{"content", "content_images/"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			kind, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, kind.Prefix())
		})
	}

	_, err := ParseKind("video")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSaveImage(t *testing.T) {
	ctx := context.Background()
	store, root := newLocalStore(t)

	stored, err := store.SaveImage(ctx, KindContent, "Photo.JPEG", bytes.NewReader(jpegBytes(t)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.Key, "content_images/"), stored.Key)
	assert.True(t, strings.HasSuffix(stored.Key, ".jpg"), stored.Key)
	assert.Equal(t, "/media/"+stored.Key, stored.URL)
	assert.Equal(t, "image/jpeg", stored.ContentType)
	assert.Equal(t, 16, stored.Width)
	assert.Equal(t, 9, stored.Height)

	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(stored.Key)))
	require.NoError(t, err)

	exists, err := store.Backend().Exists(ctx, stored.Key)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, stored.Key))
	exists, err = store.Backend().Exists(ctx, stored.Key)
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting twice is fine
	assert.NoError(t, store.Delete(ctx, stored.Key))
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestSaveImageRejectsNonImages(t *testing.T) {
	store, root := newLocalStore(t)

	_, err := store.SaveImage(context.Background(), KindLogo, "logo.png", strings.NewReader("<html><body>nope</body></html>"))
	assert.ErrorIs(t, err, upload.ErrScriptableContent)

	_, err = store.SaveImage(context.Background(), Kind("video"), "clip.png", bytes.NewReader(jpegBytes(t)))
	assert.ErrorIs(t, err, ErrUnknownKind)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalBackendRejectsEscapingKeys(t *testing.T) {
	backend, err := NewLocalBackend(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../secret", "/etc/passwd", ""} {
		err := backend.Put(context.Background(), key, strings.NewReader("x"), 1, "text/plain")
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestURL(t *testing.T) {
	local := NewStore(nil, "/media/")
	assert.Equal(t, "/media/logo/a.png", local.URL("logo/a.png"))
	assert.Equal(t, "", local.URL(""))

	cdn := NewStore(nil, "https://cdn.example.com/newsfox")
	assert.Equal(t, "https://cdn.example.com/newsfox/logo/a.png", cdn.URL("logo/a.png"))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "local", cfg: Config{Driver: DriverLocal, LocalPath: "uploads"}},
		{name: "local without path", cfg: Config{Driver: DriverLocal}, wantErr: true},
		{name: "s3 without bucket", cfg: Config{Driver: DriverS3, S3: S3Config{AccessKeyID: "a", SecretAccessKey: "b"}}, wantErr: true},
		{name: "s3", cfg: Config{Driver: DriverS3, S3: S3Config{AccessKeyID: "a", SecretAccessKey: "b", BucketName: "media"}}},
		{name: "unknown", cfg: Config{Driver: "ftp"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "LOCAL")
	t.Setenv("STORAGE_LOCAL_PATH", "/var/newsfox")
	delete(env.Env, "STORAGE_DRIVER")
	delete(env.Env, "STORAGE_LOCAL_PATH")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverLocal, cfg.Driver)
	assert.Equal(t, "/var/newsfox", cfg.LocalPath)
}
