package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/internal/pkg/constants"
)

// News represents a news article in the system
type News struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Title           string       `gorm:"type:varchar(200);not null" json:"title" validate:"required,min=1,max=200"`
	Slug            string       `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug" validate:"max=200"`
	NewsRoomID      *uint        `gorm:"index" json:"news_room_id"`
	NewsRoom        *NewsRoom    `gorm:"foreignKey:NewsRoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"news_room,omitempty" validate:"-"`
	MainCategoryID  uint         `gorm:"index;not null" json:"main_category_id"`
	MainCategory    MainCategory `gorm:"foreignKey:MainCategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"main_category" validate:"-"`
	IsHome          bool         `gorm:"not null;default:false" json:"is_home"`
	Description     string       `gorm:"type:longtext;not null" json:"description" validate:"required"`
	ContentImage    string       `gorm:"type:varchar(255);not null" json:"content_image" validate:"required,max=255"`
	QuoteText       string       `gorm:"type:text" json:"quote_text"`
	ImageCaption    string       `gorm:"type:varchar(200);default:null" json:"image_caption" validate:"max=200"`
	VideoLink       string       `gorm:"type:varchar(100);default:null" json:"video_link" validate:"max=100"` // YouTube embed code
	Tags            []Tag        `gorm:"many2many:news_tags;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"tags" validate:"-"`
	MetaTitle       string       `gorm:"type:varchar(250);default:null" json:"meta_title" validate:"max=250"`
	MetaDescription string       `gorm:"type:text" json:"meta_description"`
	MetaKeywords    string       `gorm:"type:varchar(300);default:null" json:"meta_keywords" validate:"max=300"`
	Status          string       `gorm:"type:varchar(1);default:'P';index" json:"status" validate:"omitempty,oneof=D P"`
	TopNews         string       `gorm:"type:varchar(1);default:'N';index" json:"top_news" validate:"omitempty,oneof=S 6 N"`
	CreatedAt       time.Time    `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}

func (n *News) Validate() error {
	v := validator.New()
	return v.Struct(n)
}

// BeforeSave fills an empty slug from the title. A slug that is already set is kept.
func (n *News) BeforeSave(tx *gorm.DB) error {
	if n.MainCategoryID == 0 {
		return ErrMissingMainCategory
	}
	if n.Slug == "" {
		n.Slug = MakeSlug(n.Title, ContentSlugMaxLength)
	}
	if n.Slug == "" {
		return ErrEmptySlug
	}
	if n.Status == "" {
		n.Status = STATUS_PUBLISHED
	}
	if n.TopNews == "" {
		n.TopNews = TOP_NEWS_NONE
	}
	return nil
}

// AbsoluteURL returns the news detail path
func (n *News) AbsoluteURL() string {
	return constants.NewsDetailPath(n.Slug)
}

// IsPublished reports whether the article is visible on the public site
func (n *News) IsPublished() bool {
	return n.Status == STATUS_PUBLISHED
}

// TagNames returns the names of the attached tags
func (n *News) TagNames() []string {
	names := make([]string, 0, len(n.Tags))
	for _, t := range n.Tags {
		names = append(names, t.Name)
	}
	return names
}

func (n *News) String() string {
	return n.Title
}
