package business

import (
	"context"

	"github.com/changhyeonkim/business-review/go-api-server/internal/model"
	"gorm.io/gorm"
)

type BusinessRepository struct{}

func NewBusinessRepository() *BusinessRepository {
	return &BusinessRepository{}
}

func (b *BusinessRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Business, error) {
	var businesses []model.Business
	err := db.WithContext(ctx).
		Preload("Reviews").
		Order("id").
		Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	return businesses, nil
}

func (b *BusinessRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Business, error) {
	var business model.Business
	err := db.WithContext(ctx).
		Preload("Reviews").
		Where("id = ?", ID).
		First(&business).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (b *BusinessRepository) IsExist(ctx context.Context, db *gorm.DB, ID uint32) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Business{}).
		Where("id = ?", ID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
