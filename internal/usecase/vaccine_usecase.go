package usecase

import (
	"context"
	"strings"

	"vaccination-management/internal/converter"
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/entity"
	"vaccination-management/internal/domain/repository"
	repo "vaccination-management/internal/repository"
	"vaccination-management/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type VaccineUsecase interface {
	Create(ctx context.Context, actor *entity.User, req *dto.CreateVaccineRequest) (*dto.VaccineResponse, error)
	GetAll(ctx context.Context) ([]dto.VaccineResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.VaccineResponse, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, req *dto.UpdateVaccineRequest) (*dto.VaccineResponse, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
	SeedCatalog(ctx context.Context) (int, error)
}

type vaccineUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	vaccineRepo repository.VaccineRepository
}

func NewVaccineUsecase(db *gorm.DB, log *logrus.Logger, vaccineRepo repository.VaccineRepository) VaccineUsecase {
	return &vaccineUsecase{
		db:          db,
		log:         log,
		vaccineRepo: vaccineRepo,
	}
}

func (u *vaccineUsecase) Create(ctx context.Context, actor *entity.User, req *dto.CreateVaccineRequest) (*dto.VaccineResponse, error) {
	if err := service.RequireAdmin(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrVaccineNameRequired
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	existing, err := u.vaccineRepo.FindByName(ctx, u.db, name)
	if err != nil {
		u.log.Warnf("Failed to find vaccine by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrVaccineNameExists
	}

	vaccine := &entity.Vaccine{
		Name:         name,
		Price:        req.Price,
		Availability: req.Availability,
	}

	if err := u.vaccineRepo.Create(ctx, u.db, vaccine); err != nil {
		if repo.IsDuplicateKeyError(err, "name") {
			return nil, ErrVaccineNameExists
		}
		u.log.Warnf("Failed to create vaccine: %+v", err)
		return nil, err
	}

	return converter.VaccineToResponse(vaccine), nil
}

func (u *vaccineUsecase) GetAll(ctx context.Context) ([]dto.VaccineResponse, error) {
	vaccines, err := u.vaccineRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find vaccines: %+v", err)
		return nil, err
	}
	return converter.VaccinesToResponse(vaccines), nil
}

func (u *vaccineUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.VaccineResponse, error) {
	vaccine, err := u.vaccineRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find vaccine by ID: %+v", err)
		return nil, err
	}
	if vaccine == nil {
		return nil, ErrVaccineNotFound
	}
	return converter.VaccineToResponse(vaccine), nil
}

func (u *vaccineUsecase) Update(ctx context.Context, actor *entity.User, id uuid.UUID, req *dto.UpdateVaccineRequest) (*dto.VaccineResponse, error) {
	if err := service.RequireAdmin(actor); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vaccine, err := u.vaccineRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find vaccine by ID: %+v", err)
		return nil, err
	}
	if vaccine == nil {
		return nil, ErrVaccineNotFound
	}

	fields := map[string]interface{}{}

	if req.Name.Set {
		name := strings.TrimSpace(req.Name.Value)
		if req.Name.Null || name == "" {
			return nil, ErrVaccineNameRequired
		}
		if name != vaccine.Name {
			other, err := u.vaccineRepo.FindByName(ctx, tx, name)
			if err != nil {
				u.log.Warnf("Failed to find vaccine by name: %+v", err)
				return nil, err
			}
			if other != nil && other.ID != id {
				return nil, ErrVaccineNameExists
			}
		}
		fields["name"] = name
	}

	if req.Price.Set {
		price := req.Price.Ptr()
		if price != nil && price.IsNegative() {
			return nil, ErrNegativePrice
		}
		fields["price"] = price
	}

	if req.Availability.Set {
		if req.Availability.Null {
			return nil, ErrAvailabilityNull
		}
		fields["availability"] = req.Availability.Value
	}

	if err := u.vaccineRepo.Update(ctx, tx, id, fields); err != nil {
		if repo.IsDuplicateKeyError(err, "name") {
			return nil, ErrVaccineNameExists
		}
		u.log.Warnf("Failed to update vaccine: %+v", err)
		return nil, err
	}

	updated, err := u.vaccineRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload vaccine: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VaccineToResponse(updated), nil
}

// Delete refuses while any appointment or vaccination still references the vaccine.
func (u *vaccineUsecase) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	if err := service.RequireAdmin(actor); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vaccine, err := u.vaccineRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find vaccine by ID: %+v", err)
		return err
	}
	if vaccine == nil {
		return ErrVaccineNotFound
	}

	references, err := u.vaccineRepo.CountReferences(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to count vaccine references: %+v", err)
		return err
	}
	if references > 0 {
		return ErrVaccineInUse
	}

	if _, err := u.vaccineRepo.Delete(ctx, tx, id); err != nil {
		if repo.IsForeignKeyError(err) {
			return ErrVaccineInUse
		}
		u.log.Warnf("Failed to delete vaccine: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

type catalogEntry struct {
	Name  string
	Price int64
}

var defaultCatalog = []catalogEntry{
	{Name: "Fièvre Jaune", Price: 92},
	{Name: "Hépatite A", Price: 100},
	{Name: "Hépatite B", Price: 65},
	{Name: "Typhoïde", Price: 33},
	{Name: "Méningite", Price: 120},
	{Name: "Grippe", Price: 35},
	{Name: "Antirabique", Price: 180},
	{Name: "RRO (Rougeole – Rubéole – Oreillons)", Price: 70},
}

// SeedCatalog inserts the default vaccines that are missing by name and
// returns how many were created. Running it twice is harmless.
func (u *vaccineUsecase) SeedCatalog(ctx context.Context) (int, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	created := 0
	for _, entry := range defaultCatalog {
		existing, err := u.vaccineRepo.FindByName(ctx, tx, entry.Name)
		if err != nil {
			u.log.Warnf("Failed to find vaccine by name: %+v", err)
			return 0, err
		}
		if existing != nil {
			continue
		}

		price := decimal.NewFromInt(entry.Price)
		available := true
		if err := u.vaccineRepo.Create(ctx, tx, &entity.Vaccine{
			Name:         entry.Name,
			Price:        &price,
			Availability: &available,
		}); err != nil {
			u.log.Warnf("Failed to seed vaccine %s: %+v", entry.Name, err)
			return 0, err
		}
		created++
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return 0, err
	}

	u.log.WithField("created", created).Info("Vaccine catalog seeded")
	return created, nil
}
