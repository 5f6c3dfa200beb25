package usecase

import (
	"context"

	"vaccination-management/internal/converter"
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/entity"
	"vaccination-management/internal/domain/repository"
	"vaccination-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
}

type userUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	vaccinationRepo repository.VaccinationRepository
	articleRepo     repository.ArticleRepository
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	vaccinationRepo repository.VaccinationRepository,
	articleRepo repository.ArticleRepository,
) UserUsecase {
	return &userUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		vaccinationRepo: vaccinationRepo,
		articleRepo:     articleRepo,
	}
}

func (u *userUsecase) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponse(users), nil
}

func (u *userUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

// Delete removes the account with everything it owns as a citizen, and clears
// its id from records it handled as admin or wrote as author.
func (u *userUsecase) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	if err := service.RequireAdmin(actor); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	// Vaccinations go first: they may point at the appointments removed next.
	if _, err := u.vaccinationRepo.DeleteByCitizenID(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete citizen vaccinations: %+v", err)
		return err
	}
	if _, err := u.appointmentRepo.DeleteByCitizenID(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete citizen appointments: %+v", err)
		return err
	}
	if _, err := u.appointmentRepo.ClearAdmin(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to clear appointment admin: %+v", err)
		return err
	}
	if _, err := u.vaccinationRepo.ClearAdmin(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to clear vaccination admin: %+v", err)
		return err
	}
	if _, err := u.articleRepo.ClearAuthor(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to clear article author: %+v", err)
		return err
	}

	if _, err := u.userRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.WithFields(logrus.Fields{"user_id": id, "admin_id": actor.ID}).Info("User deleted")
	return nil
}
