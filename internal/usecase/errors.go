package usecase

import "vaccination-management/internal/domain/apperror"

var (
	ErrEmailAlreadyExists = apperror.Conflict("email already registered")
	ErrInvalidCredentials = apperror.InvalidArgument("incorrect email or password")
	ErrUserNotFound       = apperror.NotFound("user not found")
	ErrCitizenNotFound    = apperror.NotFound("citizen not found")

	ErrVaccineNotFound     = apperror.NotFound("vaccine not found")
	ErrVaccineNameExists   = apperror.Conflict("vaccine name already exists")
	ErrVaccineInUse        = apperror.Conflict("vaccine is referenced by appointments or vaccinations")
	ErrVaccineNameRequired = apperror.InvalidArgument("vaccine name is required")
	ErrNegativePrice       = apperror.InvalidArgument("price must not be negative")
	ErrAvailabilityNull    = apperror.InvalidArgument("availability cannot be null")

	ErrAppointmentNotFound = apperror.NotFound("appointment not found")
	ErrInvalidStatus       = apperror.InvalidArgument("status must be one of pending, approved, rejected")
	ErrBookingForOthers    = apperror.Forbidden("citizens can only book appointments for themselves")
	ErrNotAppointmentOwner = apperror.Forbidden("not allowed to delete this appointment")

	ErrVaccinationNotFound   = apperror.NotFound("vaccination not found")
	ErrAlreadyVaccinated     = apperror.Conflict("a vaccination is already recorded for this appointment")
	ErrInvalidDoseNumber     = apperror.InvalidArgument("dose_number must be a positive integer")
	ErrVaccineIDNull         = apperror.InvalidArgument("vaccine_id cannot be null")
	ErrCitizenIDNull         = apperror.InvalidArgument("citizen_id cannot be null")
	ErrArticleNotFound       = apperror.NotFound("article not found")
	ErrArticleTitleRequired  = apperror.InvalidArgument("article title is required")
	ErrArticleContentMissing = apperror.InvalidArgument("article content is required")
)
