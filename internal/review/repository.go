package review

import (
	"context"

	"github.com/changhyeonkim/business-review/go-api-server/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, db *gorm.DB, review *model.Review) error {
	return db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Review, error) {
	var review model.Review
	err := db.WithContext(ctx).Where("id = ?", ID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Update(ctx context.Context, db *gorm.DB, review *model.Review) error {
	return db.WithContext(ctx).
		Model(review).
		Select("rating", "comment").
		Updates(map[string]interface{}{
			"rating":  review.Rating,
			"comment": review.Comment,
		}).Error
}
