package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL is the avatar shown for profiles without an uploaded image.
// size defaults to 200px.
func GravatarURL(email string, size int) string {
	if size <= 0 {
		size = 200
	}
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=mp", sum, size)
}
