package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/internal/pkg/constants"
)

type Page struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(200);not null" json:"title" validate:"required,min=1,max=200"`
	Slug            string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug" validate:"max=200"`
	Description     string    `gorm:"type:longtext;not null" json:"description" validate:"required"`
	ContentImage    string    `gorm:"type:varchar(255);default:null" json:"content_image" validate:"max=255"`
	ImageCaption    string    `gorm:"type:varchar(200);default:null" json:"image_caption" validate:"max=200"`
	MetaTitle       string    `gorm:"type:varchar(250);default:null" json:"meta_title" validate:"max=250"`
	MetaDescription string    `gorm:"type:text" json:"meta_description"`
	MetaKeywords    string    `gorm:"type:varchar(300);default:null" json:"meta_keywords" validate:"max=300"`
	Sequence        uint      `gorm:"default:0" json:"sequence"`
	Status          string    `gorm:"type:varchar(1);default:'P';index" json:"status" validate:"omitempty,oneof=D P"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Page) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// BeforeSave fills an empty slug from the title. A slug that is already set is kept.
func (p *Page) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = MakeSlug(p.Title, ContentSlugMaxLength)
	}
	if p.Slug == "" {
		return ErrEmptySlug
	}
	if p.Status == "" {
		p.Status = STATUS_PUBLISHED
	}
	return nil
}

// AbsoluteURL returns the page detail path
func (p *Page) AbsoluteURL() string {
	return constants.PageDetailPath(p.Slug)
}

func (p *Page) IsPublished() bool {
	return p.Status == STATUS_PUBLISHED
}

func (p *Page) String() string {
	return p.Title
}
