package business

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type BusinessService struct {
	db                 *gorm.DB
	businessRepository *BusinessRepository
}

func NewBusinessService(db *gorm.DB, businessRepository *BusinessRepository) *BusinessService {
	return &BusinessService{
		db:                 db,
		businessRepository: businessRepository,
	}
}

// List returns all businesses with their nested reviews.
func (s *BusinessService) List(ctx context.Context) ([]BusinessResponse, error) {
	businesses, err := s.businessRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}

	responses := make([]BusinessResponse, 0, len(businesses))
	for i := range businesses {
		responses = append(responses, *NewBusinessResponse(&businesses[i]))
	}
	return responses, nil
}

// Get returns a single business with its nested reviews.
func (s *BusinessService) Get(ctx context.Context, businessID uint32) (*BusinessResponse, error) {
	business, err := s.businessRepository.FindByID(ctx, s.db, businessID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("business not found businessID=%d %w", businessID, ErrBusinessNotFound)
		}
		return nil, fmt.Errorf("find business: %w", err)
	}

	return NewBusinessResponse(business), nil
}
