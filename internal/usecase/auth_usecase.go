package usecase

import (
	"context"
	"strings"
	"time"

	"vaccination-management/config"
	"vaccination-management/internal/converter"
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/entity"
	"vaccination-management/internal/domain/repository"
	"vaccination-management/internal/metrics"
	repo "vaccination-management/internal/repository"
	"vaccination-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenIssuer signs access tokens for a user id.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, time.Duration, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, actor *entity.User) (*dto.UserResponse, error)
	EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error
}

type authUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	limiter  *service.LoginLimiter
	metrics  *metrics.Metrics
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	limiter *service.LoginLimiter,
	metrics *metrics.Metrics,
) AuthUsecase {
	return &authUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		limiter:  limiter,
		metrics:  metrics,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register always creates a citizen; admins only come from EnsureAdmin.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := u.userRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleCitizen,
	}

	if err := u.userRepo.Create(ctx, u.db, user); err != nil {
		if repo.IsDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)

	if err := u.limiter.Check(ctx, email); err != nil {
		u.metrics.IncLoginLockouts()
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(ctx, u.db, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}

	if user == nil || !u.hasher.Verify(req.Password, user.PasswordHash) {
		u.limiter.RecordFailure(ctx, email)
		u.metrics.IncLoginFailures()
		return nil, ErrInvalidCredentials
	}

	u.limiter.Reset(ctx, email)

	accessToken, expiresIn, err := u.tokens.Issue(user.ID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(expiresIn.Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, actor *entity.User) (*dto.UserResponse, error) {
	if actor == nil {
		return nil, service.ErrMissingToken
	}
	return converter.UserToResponse(actor), nil
}

// EnsureAdmin creates the configured admin account, or promotes it when it
// already exists as a citizen. The password of an existing account is kept.
func (u *authUsecase) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if !cfg.Enabled() {
		return nil
	}
	email := normalizeEmail(cfg.Email)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByEmail(ctx, tx, email)
	if err != nil {
		u.log.Warnf("Failed to find admin by email: %+v", err)
		return err
	}

	switch {
	case user == nil:
		hashedPassword, err := u.hasher.Hash(cfg.Password)
		if err != nil {
			return err
		}
		user = &entity.User{
			FullName:     cfg.FullName,
			Email:        email,
			PasswordHash: hashedPassword,
			Role:         entity.RoleAdmin,
		}
		if err := u.userRepo.Create(ctx, tx, user); err != nil {
			u.log.Warnf("Failed to create admin: %+v", err)
			return err
		}
		u.log.WithField("email", email).Info("Admin account created")
	case !user.IsAdmin():
		if err := u.userRepo.UpdateRole(ctx, tx, user.ID, entity.RoleAdmin); err != nil {
			u.log.Warnf("Failed to promote admin: %+v", err)
			return err
		}
		u.log.WithField("email", email).Info("Existing account promoted to admin")
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
