package upload

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 80, B: 20, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestValidateImageBySniff(t *testing.T) {
	png := pngBytes(t, 4, 4)

	tests := []struct {
		name     string
		filename string
		head     []byte
		wantMime string
		wantErr  error
	}{
		{name: "png", filename: "logo.PNG", head: png, wantMime: "image/png"},
		{name: "svg extension", filename: "logo.svg", head: png, wantErr: ErrUnsupportedExtension},
		{name: "html disguised as jpg", filename: "x.jpg", head: []byte("<html><script>alert(1)</script></html>"), wantErr: ErrScriptableContent},
		{name: "xml disguised as png", filename: "x.png", head: []byte(`<?xml version="1.0"?><svg></svg>`), wantErr: ErrScriptableContent},
		{name: "plain text", filename: "x.gif", head: []byte("just some text"), wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, err := ValidateImageBySniff(tt.filename, tt.head)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMime, mime)
		})
	}
}

func TestValidateImage(t *testing.T) {
	mime, bounds, err := ValidateImage("photo.png", pngBytes(t, 12, 7))
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, image.Rect(0, 0, 12, 7), bounds)

	truncated := pngBytes(t, 12, 7)[:40]
	_, _, err = ValidateImage("photo.png", truncated)
	assert.ErrorIs(t, err, ErrCorruptImage)

	_, _, err = ValidateImage("big.png", make([]byte, MaxImageSize+1))
	assert.ErrorIs(t, err, ErrTooLarge)
}
