package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserProfile extends a User with an avatar and a public slug.
// The owning user's ID is the primary key.
type UserProfile struct {
	UserID uint   `gorm:"primaryKey;autoIncrement:false" json:"user_id" validate:"required"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user" validate:"-"`
	Avatar string `gorm:"type:varchar(255);default:null" json:"avatar" validate:"max=255"`
	Slug   string `gorm:"type:varchar(50);index;default:null" json:"slug" validate:"max=50"`
}

func (p *UserProfile) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// BeforeSave fills an empty slug from the owner's username
func (p *UserProfile) BeforeSave(tx *gorm.DB) error {
	if p.Slug != "" {
		return nil
	}

	username := p.User.Username
	if username == "" {
		var owner User
		err := tx.Session(&gorm.Session{NewDB: true}).Select("username").First(&owner, p.UserID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		username = owner.Username
	}

	p.Slug = MakeSlug(username, 50)
	return nil
}

// String returns the owner's email like the admin listing does
func (p *UserProfile) String() string {
	return p.User.Email
}
