package usecase

import (
	"context"
	"strings"

	"vaccination-management/internal/converter"
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/entity"
	"vaccination-management/internal/domain/repository"
	"vaccination-management/internal/metrics"
	"vaccination-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, actor *entity.User, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetMine(ctx context.Context, actor *entity.User) ([]dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, actor *entity.User, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	vaccineRepo     repository.VaccineRepository
	vaccinationRepo repository.VaccinationRepository
	metrics         *metrics.Metrics
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	vaccineRepo repository.VaccineRepository,
	vaccinationRepo repository.VaccinationRepository,
	metrics *metrics.Metrics,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		vaccineRepo:     vaccineRepo,
		vaccinationRepo: vaccinationRepo,
		metrics:         metrics,
	}
}

// Create books a pending appointment for the calling citizen.
func (u *appointmentUsecase) Create(ctx context.Context, actor *entity.User, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := service.RequireCitizen(actor); err != nil {
		return nil, err
	}
	if req.CitizenID != nil && *req.CitizenID != actor.ID {
		return nil, ErrBookingForOthers
	}

	vaccine, err := u.vaccineRepo.FindByID(ctx, u.db, req.VaccineID)
	if err != nil {
		u.log.Warnf("Failed to find vaccine by ID: %+v", err)
		return nil, err
	}
	if vaccine == nil {
		return nil, ErrVaccineNotFound
	}

	appointment := &entity.Appointment{
		CitizenID:     actor.ID,
		VaccineID:     vaccine.ID,
		PreferredDate: req.PreferredDate,
		Status:        entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	appointment.Vaccine = *vaccine

	u.metrics.IncAppointmentsBooked()
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponse(appointments), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetMine(ctx context.Context, actor *entity.User) ([]dto.AppointmentResponse, error) {
	if err := service.RequireCitizen(actor); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByCitizenID(ctx, u.db, actor.ID)
	if err != nil {
		u.log.Warnf("Failed to find citizen appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponse(appointments), nil
}

// UpdateStatus records an admin decision. Any status may be applied again,
// and the rejection reason is replaced by the one supplied, or cleared.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actor *entity.User, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	if err := service.RequireAdmin(actor); err != nil {
		return nil, err
	}

	status := entity.AppointmentStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Decide(status, actor.ID, req.ReasonRejection)

	if err := u.appointmentRepo.UpdateDecision(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.metrics.IncAppointmentDecision(string(status))
	return converter.AppointmentToResponse(appointment), nil
}

// Delete lets the owning citizen cancel in any status, and admins delete any
// appointment. A linked vaccination is removed with it.
func (u *appointmentUsecase) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	if actor == nil {
		return service.ErrMissingToken
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if !actor.IsAdmin() && !appointment.IsOwnedBy(actor.ID) {
		return ErrNotAppointmentOwner
	}

	if _, err := u.vaccinationRepo.DeleteByAppointmentID(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete linked vaccination: %+v", err)
		return err
	}
	if _, err := u.appointmentRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
