package service

import (
	"context"
	"strings"

	"vaccination-management/internal/domain/apperror"
	"vaccination-management/internal/domain/entity"
	"vaccination-management/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMissingToken      = apperror.Unauthenticated("authorization token is required")
	ErrInvalidCredential = apperror.Unauthenticated("could not validate credentials")
	ErrAdminOnly         = apperror.Forbidden("admin role required")
	ErrCitizenOnly       = apperror.Forbidden("citizen role required")
)

// TokenVerifier resolves a bearer token to the subject it was issued for.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// Guard turns bearer tokens into live users and gates operations by role.
type Guard struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	tokens   TokenVerifier
}

func NewGuard(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, tokens TokenVerifier) *Guard {
	return &Guard{
		db:       db,
		log:      log,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Authenticate verifies token and loads its subject from the store. Tokens of
// deleted users are rejected even when their signature is still valid.
func (g *Guard) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	userID, err := g.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidCredential
	}

	user, err := g.userRepo.FindByID(ctx, g.db, userID)
	if err != nil {
		g.log.Warnf("Failed to load token subject: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	return user, nil
}

func RequireAdmin(user *entity.User) error {
	if user == nil {
		return ErrMissingToken
	}
	if !user.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

// RequireCitizen rejects admins too; the two roles are exclusive.
func RequireCitizen(user *entity.User) error {
	if user == nil {
		return ErrMissingToken
	}
	if !user.IsCitizen() {
		return ErrCitizenOnly
	}
	return nil
}
