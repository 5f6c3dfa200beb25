package usecase

import (
	"context"

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

type VaccinationUsecase interface {
	Create(ctx context.Context, actor *entity.User, req *dto.CreateVaccinationRequest) (*dto.VaccinationResponse, error)
	GetAll(ctx context.Context) ([]dto.VaccinationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.VaccinationResponse, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, req *dto.UpdateVaccinationRequest) (*dto.VaccinationResponse, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
}

type vaccinationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	vaccinationRepo repository.VaccinationRepository
	appointmentRepo repository.AppointmentRepository
	vaccineRepo     repository.VaccineRepository
	userRepo        repository.UserRepository
	metrics         *metrics.Metrics
}

func NewVaccinationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vaccinationRepo repository.VaccinationRepository,
	appointmentRepo repository.AppointmentRepository,
	vaccineRepo repository.VaccineRepository,
	userRepo repository.UserRepository,
	metrics *metrics.Metrics,
) VaccinationUsecase {
	return &vaccinationUsecase{
		db:              db,
		log:             log,
		vaccinationRepo: vaccinationRepo,
		appointmentRepo: appointmentRepo,
		vaccineRepo:     vaccineRepo,
		userRepo:        userRepo,
		metrics:         metrics,
	}
}

// Create records an administered dose against an existing appointment. The
// appointment's status is not checked: a dose may be recorded for a pending
// or rejected appointment.
func (u *vaccinationUsecase) Create(ctx context.Context, actor *entity.User, req *dto.CreateVaccinationRequest) (*dto.VaccinationResponse, error) {
	if err := service.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if req.DoseNumber < 1 {
		return nil, ErrInvalidDoseNumber
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	existing, err := u.vaccinationRepo.FindByAppointmentID(ctx, tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to find vaccination by appointment: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyVaccinated
	}

	citizenID := appointment.CitizenID
	if req.CitizenID != nil && *req.CitizenID != citizenID {
		citizen, err := u.userRepo.FindByID(ctx, tx, *req.CitizenID)
		if err != nil {
			u.log.Warnf("Failed to find citizen by ID: %+v", err)
			return nil, err
		}
		if citizen == nil {
			return nil, ErrCitizenNotFound
		}
		citizenID = citizen.ID
	}

	vaccineID := appointment.VaccineID
	if req.VaccineID != nil {
		vaccineID = *req.VaccineID
	}
	vaccine, err := u.vaccineRepo.FindByID(ctx, tx, vaccineID)
	if err != nil {
		u.log.Warnf("Failed to find vaccine by ID: %+v", err)
		return nil, err
	}
	if vaccine == nil {
		return nil, ErrVaccineNotFound
	}

	appointmentID := appointment.ID
	adminID := actor.ID
	vaccination := &entity.Vaccination{
		AppointmentID: &appointmentID,
		CitizenID:     citizenID,
		VaccineID:     vaccine.ID,
		DoseNumber:    req.DoseNumber,
		BatchNumber:   req.BatchNumber,
		AdminID:       &adminID,
	}

	if err := u.vaccinationRepo.Create(ctx, tx, vaccination); err != nil {
		if repo.IsDuplicateKeyError(err, "appointment") {
			return nil, ErrAlreadyVaccinated
		}
		u.log.Warnf("Failed to create vaccination: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	vaccination.Vaccine = *vaccine

	u.metrics.IncVaccinationsRecorded()
	return converter.VaccinationToResponse(vaccination), nil
}

func (u *vaccinationUsecase) GetAll(ctx context.Context) ([]dto.VaccinationResponse, error) {
	vaccinations, err := u.vaccinationRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find vaccinations: %+v", err)
		return nil, err
	}
	return converter.VaccinationsToResponse(vaccinations), nil
}

func (u *vaccinationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.VaccinationResponse, error) {
	vaccination, err := u.vaccinationRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find vaccination by ID: %+v", err)
		return nil, err
	}
	if vaccination == nil {
		return nil, ErrVaccinationNotFound
	}
	return converter.VaccinationToResponse(vaccination), nil
}

func (u *vaccinationUsecase) Update(ctx context.Context, actor *entity.User, id uuid.UUID, req *dto.UpdateVaccinationRequest) (*dto.VaccinationResponse, error) {
	if err := service.RequireAdmin(actor); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vaccination, err := u.vaccinationRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find vaccination by ID: %+v", err)
		return nil, err
	}
	if vaccination == nil {
		return nil, ErrVaccinationNotFound
	}

	fields := map[string]interface{}{}

	if req.DoseNumber.Set {
		if req.DoseNumber.Null || req.DoseNumber.Value < 1 {
			return nil, ErrInvalidDoseNumber
		}
		fields["dose_number"] = req.DoseNumber.Value
	}

	if req.BatchNumber.Set {
		fields["batch_number"] = req.BatchNumber.Ptr()
	}

	if req.CitizenID.Set {
		if req.CitizenID.Null {
			return nil, ErrCitizenIDNull
		}
		citizen, err := u.userRepo.FindByID(ctx, tx, req.CitizenID.Value)
		if err != nil {
			u.log.Warnf("Failed to find citizen by ID: %+v", err)
			return nil, err
		}
		if citizen == nil {
			return nil, ErrCitizenNotFound
		}
		fields["citizen_id"] = citizen.ID
	}

	if req.AppointmentID.Set {
		if !req.AppointmentID.Null {
			if err := u.checkAppointmentFree(ctx, tx, req.AppointmentID.Value, id); err != nil {
				return nil, err
			}
		}
		fields["appointment_id"] = req.AppointmentID.Ptr()
	}

	if req.VaccineID.Set {
		if req.VaccineID.Null {
			return nil, ErrVaccineIDNull
		}
		vaccine, err := u.vaccineRepo.FindByID(ctx, tx, req.VaccineID.Value)
		if err != nil {
			u.log.Warnf("Failed to find vaccine by ID: %+v", err)
			return nil, err
		}
		if vaccine == nil {
			return nil, ErrVaccineNotFound
		}
		fields["vaccine_id"] = vaccine.ID
	}

	if err := u.vaccinationRepo.Update(ctx, tx, id, fields); err != nil {
		if repo.IsDuplicateKeyError(err, "appointment") {
			return nil, ErrAlreadyVaccinated
		}
		u.log.Warnf("Failed to update vaccination: %+v", err)
		return nil, err
	}

	updated, err := u.vaccinationRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload vaccination: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VaccinationToResponse(updated), nil
}

// checkAppointmentFree verifies the appointment exists and carries no vaccination
// other than the one being updated.
func (u *vaccinationUsecase) checkAppointmentFree(ctx context.Context, tx *gorm.DB, appointmentID, vaccinationID uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	existing, err := u.vaccinationRepo.FindByAppointmentID(ctx, tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find vaccination by appointment: %+v", err)
		return err
	}
	if existing != nil && existing.ID != vaccinationID {
		return ErrAlreadyVaccinated
	}
	return nil
}

func (u *vaccinationUsecase) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	if err := service.RequireAdmin(actor); err != nil {
		return err
	}

	affected, err := u.vaccinationRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete vaccination: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrVaccinationNotFound
	}

	return nil
}
