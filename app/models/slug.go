package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

const (
	// CategorySlugMaxLength is the column size of main_categories.slug
	CategorySlugMaxLength = 50
	// ContentSlugMaxLength is the column size of news.slug and pages.slug
	ContentSlugMaxLength = 200
	// TagSlugMaxLength is the column size of tags.slug
	TagSlugMaxLength = 100
)

var (
	// ErrEmptySlug is returned when a title or name yields no URL-safe characters
	ErrEmptySlug = errors.New("slug could not be derived: no URL-safe characters")
	// ErrMissingMainCategory is returned when a news article has no main category
	ErrMissingMainCategory = errors.New("news requires a main category")
)

// MakeSlug transliterates s to ASCII, lowercases it and joins words with hyphens.
// The result is cropped to maxLength bytes; maxLength <= 0 disables cropping.
func MakeSlug(s string, maxLength int) string {
	return cropSlug(slug.Make(s), maxLength)
}

func cropSlug(s string, maxLength int) string {
	if maxLength > 0 && len(s) > maxLength {
		s = s[:maxLength]
	}
	return strings.Trim(s, "-_")
}

// SlugTaken reports whether candidate is already used in the caller's uniqueness scope
type SlugTaken func(candidate string) (bool, error)

// UniqueSlug returns base if it is free, otherwise base+sep+N for the first free N
// starting at start. The base is cropped so the suffixed slug never exceeds maxLength.
func UniqueSlug(base string, maxLength int, sep string, start int, taken SlugTaken) (string, error) {
	if base == "" {
		return "", ErrEmptySlug
	}

	candidate := base
	for index := start; ; index++ {
		exists, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}

		tail := fmt.Sprintf("%s%d", sep, index)
		root := base
		if maxLength > 0 && len(root)+len(tail) > maxLength {
			root = strings.TrimRight(root[:maxLength-len(tail)], "-_")
		}
		candidate = root + tail
	}
}
