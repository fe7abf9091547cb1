package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// NewsRoom is a secondary grouping of news articles, listed in Sequence order
type NewsRoom struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"title" validate:"required,min=1,max=200"`
	Description string    `gorm:"type:longtext" json:"description"`
	Sequence    *string   `gorm:"type:varchar(3);index" json:"sequence" validate:"omitempty,max=3"`
	Status      string    `gorm:"type:varchar(1);default:'P'" json:"status" validate:"omitempty,oneof=D P"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the NewsRoom model
func (NewsRoom) TableName() string {
	return "news_rooms"
}

func (r *NewsRoom) Validate() error {
	v := validator.New()
	return v.Struct(r)
}

func (r *NewsRoom) BeforeSave(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = STATUS_PUBLISHED
	}
	return nil
}

func (r *NewsRoom) String() string {
	return r.Title
}
