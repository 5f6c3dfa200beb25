package usecase

import (
	"encoding/json"

	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/apperror"
	"vaccination-management/internal/domain/entity"

	"github.com/google/uuid"
)

func (s *UsecaseSuite) TestCreateVaccinationDefaultsFromAppointment() {
	grippe := s.createVaccine("Grippe", 35)
	appointment := s.book(s.citizen, grippe)

	vaccination, err := s.vaccinations.Create(s.ctx, s.admin, &dto.CreateVaccinationRequest{
		AppointmentID: appointment.ID,
		DoseNumber:    1,
		BatchNumber:   strPtr("LOT-42"),
	})
	s.Require().NoError(err)
	s.Equal(s.citizen.ID, vaccination.CitizenID)
	s.Equal(grippe.ID, vaccination.VaccineID)
	s.Require().NotNil(vaccination.AppointmentID)
	s.Equal(appointment.ID, *vaccination.AppointmentID)
	s.Require().NotNil(vaccination.AdminID)
	s.Equal(s.admin.ID, *vaccination.AdminID)
	s.False(vaccination.VaccinationDate.IsZero())

	stored, err := s.vaccinations.GetByID(s.ctx, vaccination.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.Vaccine)
	s.Equal("Grippe", stored.Vaccine.Name)
	s.Equal("LOT-42", *stored.BatchNumber)
}

func (s *UsecaseSuite) TestCreateVaccinationIgnoresAppointmentStatus() {
	grippe := s.createVaccine("Grippe", 35)
	appointment := s.book(s.citizen, grippe)
	_, err := s.appointments.UpdateStatus(s.ctx, s.admin, appointment.ID, &dto.UpdateAppointmentStatusRequest{Status: "rejected"})
	s.Require().NoError(err)

	_, err = s.vaccinations.Create(s.ctx, s.admin, &dto.CreateVaccinationRequest{AppointmentID: appointment.ID, DoseNumber: 1})
	s.NoError(err)
}

func (s *UsecaseSuite) TestCreateVaccinationErrors() {
	grippe := s.createVaccine("Grippe", 35)
	appointment := s.book(s.citizen, grippe)

	_, err := s.vaccinations.Create(s.ctx, s.admin, &dto.CreateVaccinationRequest{AppointmentID: uuid.New(), DoseNumber: 1})
	s.ErrorIs(err, ErrAppointmentNotFound)

	_, err = s.vaccinations.Create(s.ctx, s.admin, &dto.CreateVaccinationRequest{AppointmentID: appointment.ID, DoseNumber: 0})
	s.ErrorIs(err, ErrInvalidDoseNumber)

	missing := uuid.New()
	_, err = s.vaccinations.Create(s.ctx, s.admin, &dto.CreateVaccinationRequest{AppointmentID: appointment.ID, VaccineID: &missing, DoseNumber: 1})
	s.ErrorIs(err, ErrVaccineNotFound)

	_, err = s.vaccinations.Create(s.ctx, s.admin, &dto.CreateVaccinationRequest{AppointmentID: appointment.ID, CitizenID: &missing, DoseNumber: 1})
	s.ErrorIs(err, ErrCitizenNotFound)

	_, err = s.vaccinations.Create(s.ctx, s.citizen, &dto.CreateVaccinationRequest{AppointmentID: appointment.ID, DoseNumber: 1})
	s.True(apperror.HasKind(err, apperror.KindForbidden))

	s.vaccinate(appointment)
	_, err = s.vaccinations.Create(s.ctx, s.admin, &dto.CreateVaccinationRequest{AppointmentID: appointment.ID, DoseNumber: 2})
	s.ErrorIs(err, ErrAlreadyVaccinated)
	s.True(apperror.HasKind(err, apperror.KindConflict))
}

func (s *UsecaseSuite) TestUpdateVaccination() {
	grippe := s.createVaccine("Grippe", 35)
	hepatitis := s.createVaccine("Hépatite B", 65)
	appointment := s.book(s.citizen, grippe)
	vaccination, err := s.vaccinations.Create(s.ctx, s.admin, &dto.CreateVaccinationRequest{
		AppointmentID: appointment.ID,
		DoseNumber:    1,
		BatchNumber:   strPtr("LOT-1"),
	})
	s.Require().NoError(err)

	updated, err := s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{
		DoseNumber: dto.NewField(2),
		VaccineID:  dto.NewField(hepatitis.ID),
	})
	s.Require().NoError(err)
	s.Equal(2, updated.DoseNumber)
	s.Equal(hepatitis.ID, updated.VaccineID)
	s.Equal("Hépatite B", updated.Vaccine.Name)
	s.Require().NotNil(updated.BatchNumber)
	s.Equal("LOT-1", *updated.BatchNumber)

	cleared, err := s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{
		BatchNumber: dto.NullField[string](),
	})
	s.Require().NoError(err)
	s.Nil(cleared.BatchNumber)
	s.Equal(2, cleared.DoseNumber)

	_, err = s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{DoseNumber: dto.NewField(0)})
	s.ErrorIs(err, ErrInvalidDoseNumber)
	_, err = s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{VaccineID: dto.NullField[uuid.UUID]()})
	s.ErrorIs(err, ErrVaccineIDNull)
	_, err = s.vaccinations.Update(s.ctx, s.admin, uuid.New(), &dto.UpdateVaccinationRequest{})
	s.ErrorIs(err, ErrVaccinationNotFound)
}

func (s *UsecaseSuite) TestUpdateVaccinationCitizen() {
	grippe := s.createVaccine("Grippe", 35)
	vaccination := s.vaccinate(s.book(s.citizen, grippe))
	other := s.createUser("Khady", "khady@x.com", entity.RoleCitizen)

	var req dto.UpdateVaccinationRequest
	s.Require().NoError(json.Unmarshal([]byte(`{"citizen_id":"`+other.ID.String()+`","dose_number":2}`), &req))

	updated, err := s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &req)
	s.Require().NoError(err)
	s.Equal(2, updated.DoseNumber)
	s.Equal(other.ID, updated.CitizenID)

	stored, err := s.vaccinations.GetByID(s.ctx, vaccination.ID)
	s.Require().NoError(err)
	s.Equal(other.ID, stored.CitizenID)

	_, err = s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{CitizenID: dto.NewField(uuid.New())})
	s.ErrorIs(err, ErrCitizenNotFound)
	_, err = s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{CitizenID: dto.NullField[uuid.UUID]()})
	s.ErrorIs(err, ErrCitizenIDNull)
}

func (s *UsecaseSuite) TestUpdateVaccinationAppointment() {
	grippe := s.createVaccine("Grippe", 35)
	first := s.book(s.citizen, grippe)
	second := s.book(s.citizen, grippe)
	vaccination := s.vaccinate(first)
	taken := s.vaccinate(second)

	// same appointment again is a no-op
	_, err := s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{AppointmentID: dto.NewField(first.ID)})
	s.Require().NoError(err)

	_, err = s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{AppointmentID: dto.NewField(second.ID)})
	s.ErrorIs(err, ErrAlreadyVaccinated)
	s.True(apperror.HasKind(err, apperror.KindConflict))

	_, err = s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{AppointmentID: dto.NewField(uuid.New())})
	s.ErrorIs(err, ErrAppointmentNotFound)

	unlinked, err := s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{AppointmentID: dto.NullField[uuid.UUID]()})
	s.Require().NoError(err)
	s.Nil(unlinked.AppointmentID)

	// the freed appointment can take the other dose
	s.Require().NoError(s.vaccinations.Delete(s.ctx, s.admin, taken.ID))
	moved, err := s.vaccinations.Update(s.ctx, s.admin, vaccination.ID, &dto.UpdateVaccinationRequest{AppointmentID: dto.NewField(second.ID)})
	s.Require().NoError(err)
	s.Require().NotNil(moved.AppointmentID)
	s.Equal(second.ID, *moved.AppointmentID)
}

func (s *UsecaseSuite) TestDeleteVaccination() {
	grippe := s.createVaccine("Grippe", 35)
	appointment := s.book(s.citizen, grippe)
	vaccination := s.vaccinate(appointment)

	s.True(apperror.HasKind(s.vaccinations.Delete(s.ctx, s.citizen, vaccination.ID), apperror.KindForbidden))
	s.Require().NoError(s.vaccinations.Delete(s.ctx, s.admin, vaccination.ID))
	s.ErrorIs(s.vaccinations.Delete(s.ctx, s.admin, vaccination.ID), ErrVaccinationNotFound)

	_, err := s.appointments.GetByID(s.ctx, appointment.ID)
	s.NoError(err, "the appointment outlives its vaccination")
}
