package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserProfileRepository defines the interface for user profile operations
type UserProfileRepository interface {
	Save(ctx context.Context, profile *models.UserProfile) error
	GetByUserID(ctx context.Context, userID uint) (*models.UserProfile, error)
	GetBySlug(ctx context.Context, slug string) (*models.UserProfile, error)
	Delete(ctx context.Context, userID uint) error
}

// SettingRepository defines the interface for the site settings singleton
type SettingRepository interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Save(ctx context.Context, settings *models.SiteSettings) error
}

// MainCategoryRepository defines the interface for category-related operations
type MainCategoryRepository interface {
	Create(ctx context.Context, category *models.MainCategory) error
	Update(ctx context.Context, category *models.MainCategory) error
	GetByID(ctx context.Context, id uint) (*models.MainCategory, error)
	// GetBySlug returns the newest category with the slug; status "" matches any status.
	GetBySlug(ctx context.Context, slug, status string) (*models.MainCategory, error)
	List(ctx context.Context, status string) ([]models.MainCategory, error)
	ListFeatured(ctx context.Context) ([]models.MainCategory, error)
	Delete(ctx context.Context, id uint) error
	TitleExists(ctx context.Context, title string, exceptID uint) (bool, error)
}

// NewsRoomRepository defines the interface for news room operations
type NewsRoomRepository interface {
	Create(ctx context.Context, room *models.NewsRoom) error
	Update(ctx context.Context, room *models.NewsRoom) error
	GetByID(ctx context.Context, id uint) (*models.NewsRoom, error)
	List(ctx context.Context) ([]models.NewsRoom, error)
	Delete(ctx context.Context, id uint) error
}

// NewsFilter narrows News listings. Zero values do not filter.
type NewsFilter struct {
	Status         string
	MainCategoryID uint
	NewsRoomID     uint
	TopNews        string
	IsHome         *bool
	TagSlug        string
	Offset         int
	Limit          int
}

// NewsRepository defines the interface for news-related operations
type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	Update(ctx context.Context, news *models.News) error
	GetByID(ctx context.Context, id uint) (*models.News, error)
	GetBySlug(ctx context.Context, slug string) (*models.News, error)
	List(ctx context.Context, filter NewsFilter) ([]models.News, error)
	Count(ctx context.Context, filter NewsFilter) (int64, error)
	SetTags(ctx context.Context, newsID uint, tags []models.Tag) error
	Delete(ctx context.Context, id uint) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	SlugExistsExceptID(ctx context.Context, slug string, id uint) (bool, error)
}

// PageRepository defines the interface for page-related operations
type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	Update(ctx context.Context, page *models.Page) error
	GetByID(ctx context.Context, id uint) (*models.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	List(ctx context.Context, status string) ([]models.Page, error)
	Delete(ctx context.Context, id uint) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	SlugExistsExceptID(ctx context.Context, slug string, id uint) (bool, error)
}

// TagRepository defines the interface for tag operations
type TagRepository interface {
	FindOrCreate(ctx context.Context, names []string) ([]models.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	UserProfile  UserProfileRepository
	Setting      SettingRepository
	MainCategory MainCategoryRepository
	NewsRoom     NewsRoomRepository
	News         NewsRepository
	Page         PageRepository
	Tag          TagRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		UserProfile:  NewUserProfileRepository(db),
		Setting:      NewSettingRepository(db),
		MainCategory: NewMainCategoryRepository(db),
		NewsRoom:     NewNewsRoomRepository(db),
		News:         NewNewsRepository(db),
		Page:         NewPageRepository(db),
		Tag:          NewTagRepository(db),
	}
}
