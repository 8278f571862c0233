package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/business-review/go-api-server/internal/business"
	"github.com/changhyeonkim/business-review/go-api-server/internal/model"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type ReviewService struct {
	db                 *gorm.DB
	reviewRepository   *ReviewRepository
	businessRepository *business.BusinessRepository
}

func NewReviewService(db *gorm.DB, reviewRepository *ReviewRepository, businessRepository *business.BusinessRepository) *ReviewService {
	return &ReviewService{
		db:                 db,
		reviewRepository:   reviewRepository,
		businessRepository: businessRepository,
	}
}

// Create inserts a new review for the authenticated member. The store's
// unique index on (member_id, business_id) is the single source of truth for
// the one-review-per-pair invariant: a duplicate insert, including one racing
// a concurrent create, surfaces as gorm.ErrDuplicatedKey and is reported as a
// conflict.
func (s *ReviewService) Create(ctx context.Context, memberID uint32, request *CreateReviewRequest) (*ReviewResponse, error) {
	log := logger.FromContext(ctx)
	var response *ReviewResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.businessRepository.IsExist(ctx, tx, request.BusinessID)
		if err != nil {
			log.Error("failed to check business existence", "error", err)
			return fmt.Errorf("check business existence: %w", err)
		}
		if !exists {
			log.Warn("review create for unknown business", "business_id", request.BusinessID)
			return fmt.Errorf("business not found businessID=%d %w", request.BusinessID, business.ErrBusinessNotFound)
		}

		review := model.NewReview(memberID, request.BusinessID, request.Rating, request.Comment)
		if err := s.reviewRepository.Create(ctx, tx, review); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn("duplicate review rejected by unique constraint",
					"member_id", memberID, "business_id", request.BusinessID)
				return fmt.Errorf("error %w", ErrReviewAlreadyExists)
			}
			log.Error("failed to create review", "error", err)
			return fmt.Errorf("create review: %w", err)
		}

		log.Info("review created",
			"review_id", review.ID, "member_id", memberID, "business_id", request.BusinessID)
		response = NewReviewResponse(review)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

// Update mutates the rating and comment of an existing review. Only the
// authoring member may update it.
func (s *ReviewService) Update(ctx context.Context, memberID, reviewID uint32, request *UpdateReviewRequest) (*ReviewResponse, error) {
	log := logger.FromContext(ctx)
	var response *ReviewResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		review, err := s.reviewRepository.FindByID(ctx, tx, reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("review not found reviewID=%d %w", reviewID, ErrReviewNotFound)
			}
			log.Error("failed to find review", "error", err)
			return fmt.Errorf("find review: %w", err)
		}

		if review.MemberID != memberID {
			log.Warn("review update rejected - not owned by caller",
				"review_id", reviewID, "owner_id", review.MemberID, "member_id", memberID)
			return fmt.Errorf("error %w", ErrReviewNotOwned)
		}

		review.Rating = request.Rating
		review.Comment = request.Comment
		if err := s.reviewRepository.Update(ctx, tx, review); err != nil {
			log.Error("failed to update review", "error", err)
			return fmt.Errorf("update review: %w", err)
		}

		log.Info("review updated", "review_id", review.ID, "member_id", memberID)
		response = NewReviewResponse(review)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}
