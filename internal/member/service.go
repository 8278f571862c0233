package member

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

// GetProfile returns the member bound to the authenticated token ("who am I").
func (s *MemberService) GetProfile(ctx context.Context, memberID uint32) (*MemberResponse, error) {
	member, err := s.memberRepository.FindByID(ctx, s.db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member not found memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("find member: %w", err)
	}

	return NewMemberResponse(member), nil
}

// List returns all members with their authored reviews, passwords excluded.
func (s *MemberService) List(ctx context.Context) ([]MemberResponse, error) {
	members, err := s.memberRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *NewMemberResponse(&members[i]))
	}
	return responses, nil
}
