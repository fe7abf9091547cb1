package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/internal/pkg/constants"
)

// MainCategory is the top level taxonomy node news articles are filed under
type MainCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"title" validate:"required,min=1,max=200"`
	Slug        string    `gorm:"type:varchar(50);index;not null" json:"slug" validate:"max=50"`
	Description string    `gorm:"type:longtext" json:"description"`
	Image       string    `gorm:"type:varchar(255);default:null" json:"image" validate:"max=255"`
	Featured    bool      `gorm:"default:false" json:"featured"` // shown in the main menu
	Sequence    uint      `gorm:"default:0" json:"sequence"`
	Status      string    `gorm:"type:varchar(1);default:'P';index" json:"status" validate:"omitempty,oneof=D P"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the MainCategory model
func (MainCategory) TableName() string {
	return "main_categories"
}

func (c *MainCategory) Validate() error {
	v := validator.New()
	return v.Struct(c)
}

// BeforeSave derives the slug and makes it unique among categories created in the
// same month of the year with the same status. Other categories may share the slug.
func (c *MainCategory) BeforeSave(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = STATUS_PUBLISHED
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	source := c.Slug
	if source == "" {
		source = c.Title
	}
	base := MakeSlug(source, CategorySlugMaxLength)
	if base == "" {
		return ErrEmptySlug
	}

	query := tx.Session(&gorm.Session{NewDB: true}).
		Select("id", "slug", "created_at").
		Where("status = ? AND id <> ?", c.Status, c.ID)
	filterInGo := false
	switch tx.Dialector.Name() {
	case "mysql":
		// the DSN uses loc=Local
		query = query.Where("MONTH(created_at) = ?", int(c.CreatedAt.Local().Month()))
	case "sqlite":
		// strftime normalises the stored offset to UTC
		query = query.Where("CAST(strftime('%m', created_at) AS INTEGER) = ?", int(c.CreatedAt.UTC().Month()))
	default:
		filterInGo = true
	}

	var rivals []MainCategory
	if err := query.Find(&rivals).Error; err != nil {
		return err
	}

	taken := make(map[string]struct{}, len(rivals))
	for _, rival := range rivals {
		if filterInGo && rival.CreatedAt.Month() != c.CreatedAt.Month() {
			continue
		}
		taken[rival.Slug] = struct{}{}
	}

	var err error
	c.Slug, err = UniqueSlug(base, CategorySlugMaxLength, "-", 2, func(candidate string) (bool, error) {
		_, exists := taken[candidate]
		return exists, nil
	})
	return err
}

// AbsoluteURL returns the category detail path
func (c *MainCategory) AbsoluteURL() string {
	return constants.CategoryDetailPath(c.Slug)
}

// IsPublished reports whether the category is visible on the public site
func (c *MainCategory) IsPublished() bool {
	return c.Status == STATUS_PUBLISHED
}

func (c *MainCategory) String() string {
	return c.Title
}
