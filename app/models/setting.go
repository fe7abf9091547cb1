package models

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
)

// SiteSettings holds the global site configuration. By convention the table has a single row.
type SiteSettings struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	SiteTitle           string    `gorm:"type:varchar(200);not null" json:"site_title" validate:"required,min=1,max=200"`
	MetaTitle           string    `gorm:"type:varchar(250);default:null" json:"meta_title" validate:"max=250"`
	MetaDescription     string    `gorm:"type:text" json:"meta_description"`
	MetaKeywords        string    `gorm:"type:varchar(300);default:null" json:"meta_keywords" validate:"max=300"` // comma separated
	Logo                string    `gorm:"type:varchar(255);default:null" json:"logo" validate:"max=255"`
	CopyrightText       string    `gorm:"type:varchar(120);default:null" json:"copyright_text" validate:"max=120"`
	GoogleAnalyticsCode string    `gorm:"type:varchar(50);default:null" json:"google_analytics_code" validate:"max=50"` // e.g. UA-69123876-4
	AlexaCode           string    `gorm:"type:varchar(50);default:null" json:"alexa_code" validate:"max=50"`
	Facebook            string    `gorm:"type:varchar(200);default:null" json:"facebook" validate:"omitempty,url,max=200"`
	Twitter             string    `gorm:"type:varchar(200);default:null" json:"twitter" validate:"omitempty,url,max=200"`
	YouTube             string    `gorm:"column:youtube;type:varchar(200);default:null" json:"youtube" validate:"omitempty,url,max=200"`
	LinkedIn            string    `gorm:"column:linkedin;type:varchar(200);default:null" json:"linkedin" validate:"omitempty,url,max=200"`
	Instagram           string    `gorm:"type:varchar(200);default:null" json:"instagram" validate:"omitempty,url,max=200"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated"`
}

// TableName specifies the table name for the SiteSettings model
func (SiteSettings) TableName() string {
	return "site_settings"
}

// DefaultSiteSettings is used until an administrator saves the first settings row
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{SiteTitle: "NewsFox"}
}

// Validate validates the settings
func (s *SiteSettings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// ToJSON converts settings to JSON
func (s *SiteSettings) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// FromJSON loads settings from JSON
func (s *SiteSettings) FromJSON(data []byte) error {
	return json.Unmarshal(data, s)
}

// SocialLinks returns the configured social profile URLs keyed by network
func (s *SiteSettings) SocialLinks() map[string]string {
	links := map[string]string{}
	for name, link := range map[string]string{
		"facebook":  s.Facebook,
		"twitter":   s.Twitter,
		"youtube":   s.YouTube,
		"linkedin":  s.LinkedIn,
		"instagram": s.Instagram,
	} {
		if link != "" {
			links[name] = link
		}
	}
	return links
}

func (s *SiteSettings) String() string {
	return s.SiteTitle
}
