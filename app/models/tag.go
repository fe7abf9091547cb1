package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required,min=1,max=100"`
	Slug string `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug" validate:"max=100"`
}

// BeforeCreate derives a slug from the name, appending _1, _2, ... when another tag owns it
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.Slug != "" {
		return nil
	}

	base := MakeSlug(t.Name, TagSlugMaxLength)
	if base == "" {
		return fmt.Errorf("tag %q: %w", t.Name, ErrEmptySlug)
	}

	var existing []string
	err := tx.Session(&gorm.Session{NewDB: true}).Model(&Tag{}).
		Where("slug LIKE ?", base+"%").
		Pluck("slug", &existing).Error
	if err != nil {
		return err
	}

	used := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		used[s] = struct{}{}
	}

	t.Slug, err = UniqueSlug(base, TagSlugMaxLength, "_", 1, func(candidate string) (bool, error) {
		_, ok := used[candidate]
		return ok, nil
	})
	return err
}

// FindOrCreate findet einen Tag anhand des Namens oder erstellt ihn, wenn er nicht existiert
func (t *Tag) FindOrCreate(db *gorm.DB) error {
	result := db.Where("name = ?", t.Name).First(t)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return db.Create(t).Error
		}
		return result.Error
	}
	return nil
}

// NormalizeTagNames trims the names and drops empty and duplicate entries, keeping order
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
