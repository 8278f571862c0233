package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/changhyeonkim/business-review/go-api-server/internal/member"
	"github.com/changhyeonkim/business-review/go-api-server/internal/model"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/business-review/go-api-server/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	tokenManager     token.Manager
}

func NewAuthService(db *gorm.DB, memberRepository *member.MemberRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		tokenManager:     tokenManager,
	}
}

// Login verifies the credentials and issues a bearer token bound to the
// member. The stored credential is a bcrypt hash; the comparison is
// constant time and no token is issued on mismatch.
func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find member by username
	found, err := a.memberRepository.FindByUsername(ctx, a.db, request.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("login failed - username not found", "username", logger.MaskUsername(request.Username))
			return nil, fmt.Errorf("error %w", ErrIncorrectUsernamePassword) // Security: don't reveal if username exists
		}
		log.Error("login failed - unexpected error", "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(request.Password)); err != nil {
		log.Warn("login failed - invalid password", "username", logger.MaskUsername(request.Username))
		return nil, fmt.Errorf("error %w", ErrIncorrectUsernamePassword)
	}

	// 3. Generate bearer token
	accessToken, err := a.issueToken(found)
	if err != nil {
		log.Error("token generation failed", "error", err)
		return nil, fmt.Errorf("generate token: %w", err)
	}

	log.Info("login succeeded", "username", logger.MaskUsername(request.Username))

	return &AuthResponse{
		Token:  accessToken,
		Member: member.NewMemberResponse(found),
	}, nil
}

// Register creates a new member with a hashed credential and logs them in.
func (a *AuthService) Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error) {
	log := logger.FromContext(ctx)
	var response *AuthResponse

	err := database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", "error", err)
			return fmt.Errorf("hash password: %w", err)
		}

		newMember := model.NewMember(request.Username, string(hashedPassword))
		if err := a.memberRepository.Create(ctx, tx, newMember); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn("member already exists", "username", logger.MaskUsername(request.Username))
				return fmt.Errorf("error %w", member.ErrMemberAlreadyExists)
			}
			log.Error("failed to create member", "error", err)
			return fmt.Errorf("create member: %w", err)
		}

		accessToken, err := a.issueToken(newMember)
		if err != nil {
			log.Error("token generation failed", "error", err)
			return fmt.Errorf("generate token: %w", err)
		}

		log.Info("member registered", "username", logger.MaskUsername(request.Username))
		response = &AuthResponse{
			Token:  accessToken,
			Member: member.NewMemberResponse(newMember),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

func (a *AuthService) issueToken(m *model.Member) (string, error) {
	memberID := strconv.FormatUint(uint64(m.ID), 10)
	return a.tokenManager.GenerateToken(memberID, m.Username)
}
