package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxImageSize caps uploads of avatars, logos and content images
const MaxImageSize = 10 << 20

var (
	ErrUnsupportedExtension = errors.New("only JPG, JPEG, PNG, GIF and BMP images are supported")
	ErrScriptableContent    = errors.New("HTML, SVG and XML content is not allowed")
	ErrUnsupportedType      = errors.New("file type is not supported")
	ErrTooLarge             = fmt.Errorf("image exceeds %d MB", MaxImageSize>>20)
	ErrCorruptImage         = errors.New("image could not be decoded")
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	// SVG stays excluded, it can carry scripts
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/bmp":  true,
}

// ValidateImageBySniff checks the extension of filename and the sniffed type of head.
// It returns the detected mime type.
func ValidateImageBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", ErrUnsupportedExtension
	}

	detected := http.DetectContentType(head)
	switch {
	case strings.HasPrefix(detected, "text/html"), strings.HasPrefix(detected, "application/xhtml"):
		return "", ErrScriptableContent
	case strings.HasPrefix(detected, "text/xml"), strings.HasPrefix(detected, "application/xml"), detected == "image/svg+xml":
		return "", ErrScriptableContent
	case allowedMime[detected]:
		return detected, nil
	default:
		return "", ErrUnsupportedType
	}
}

// ValidateImage runs the sniff check and decodes data to make sure it is a real image.
// It returns the mime type and the pixel bounds.
func ValidateImage(filename string, data []byte) (string, image.Rectangle, error) {
	if len(data) > MaxImageSize {
		return "", image.Rectangle{}, ErrTooLarge
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	mime, err := ValidateImageBySniff(filename, head)
	if err != nil {
		return "", image.Rectangle{}, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", image.Rectangle{}, fmt.Errorf("%w: %w", ErrCorruptImage, err)
	}
	return mime, img.Bounds(), nil
}
