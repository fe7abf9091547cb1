package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/app/models"
)

// newsRoomRepository implements the NewsRoomRepository interface
type newsRoomRepository struct {
	db *gorm.DB
}

// NewNewsRoomRepository creates a new news room repository instance
func NewNewsRoomRepository(db *gorm.DB) NewsRoomRepository {
	return &newsRoomRepository{db: db}
}

func (r *newsRoomRepository) Create(ctx context.Context, room *models.NewsRoom) error {
	if err := room.Validate(); err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Create(room).Error)
}

func (r *newsRoomRepository) Update(ctx context.Context, room *models.NewsRoom) error {
	if err := room.Validate(); err != nil {
		return err
	}
	return translateError(r.db.WithContext(ctx).Save(room).Error)
}

func (r *newsRoomRepository) GetByID(ctx context.Context, id uint) (*models.NewsRoom, error) {
	var room models.NewsRoom
	err := r.db.WithContext(ctx).First(&room, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &room, nil
}

// List retrieves all news rooms ordered by their sequence value
func (r *newsRoomRepository) List(ctx context.Context) ([]models.NewsRoom, error) {
	var rooms []models.NewsRoom
	err := r.db.WithContext(ctx).Order("sequence ASC").Order("id ASC").Find(&rooms).Error
	return rooms, translateError(err)
}

// Delete removes a news room together with its news articles
func (r *newsRoomRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.NewsRoom{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
