package usecase

import (
	"time"

	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/apperror"
	"vaccination-management/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func (s *UsecaseSuite) TestCreateAppointment() {
	grippe := s.createVaccine("Grippe", 35)

	appointment := s.book(s.citizen, grippe)
	s.Equal(s.citizen.ID, appointment.CitizenID)
	s.Equal(string(entity.AppointmentStatusPending), appointment.Status)
	s.Nil(appointment.AdminID)
	s.Require().NotNil(appointment.Vaccine)
	s.Equal("Grippe", appointment.Vaccine.Name)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.AppointmentsBooked))

	ownID := s.citizen.ID
	_, err := s.appointments.Create(s.ctx, s.citizen, &dto.CreateAppointmentRequest{
		CitizenID:     &ownID,
		VaccineID:     grippe.ID,
		PreferredDate: time.Now().UTC(),
	})
	s.NoError(err)
}

func (s *UsecaseSuite) TestCreateAppointmentForAnotherCitizen() {
	grippe := s.createVaccine("Grippe", 35)
	other := uuid.New()

	_, err := s.appointments.Create(s.ctx, s.citizen, &dto.CreateAppointmentRequest{
		CitizenID:     &other,
		VaccineID:     grippe.ID,
		PreferredDate: time.Now().UTC(),
	})
	s.ErrorIs(err, ErrBookingForOthers)
	s.True(apperror.HasKind(err, apperror.KindForbidden))
}

func (s *UsecaseSuite) TestCreateAppointmentUnknownVaccine() {
	_, err := s.appointments.Create(s.ctx, s.citizen, &dto.CreateAppointmentRequest{
		VaccineID:     uuid.New(),
		PreferredDate: time.Now().UTC(),
	})
	s.ErrorIs(err, ErrVaccineNotFound)
	s.True(apperror.HasKind(err, apperror.KindNotFound))
}

func (s *UsecaseSuite) TestAdminCannotBook() {
	grippe := s.createVaccine("Grippe", 35)

	_, err := s.appointments.Create(s.ctx, s.admin, &dto.CreateAppointmentRequest{
		VaccineID:     grippe.ID,
		PreferredDate: time.Now().UTC(),
	})
	s.True(apperror.HasKind(err, apperror.KindForbidden))
}

func (s *UsecaseSuite) TestGetMine() {
	grippe := s.createVaccine("Grippe", 35)
	other := s.createUser("Other", "other@x.com", entity.RoleCitizen)
	s.book(s.citizen, grippe)
	s.book(s.citizen, grippe)
	s.book(other, grippe)

	mine, err := s.appointments.GetMine(s.ctx, s.citizen)
	s.Require().NoError(err)
	s.Len(mine, 2)
	for _, a := range mine {
		s.Equal(s.citizen.ID, a.CitizenID)
	}

	all, err := s.appointments.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)

	_, err = s.appointments.GetMine(s.ctx, s.admin)
	s.True(apperror.HasKind(err, apperror.KindForbidden))
}

func (s *UsecaseSuite) TestUpdateStatus() {
	grippe := s.createVaccine("Grippe", 35)
	appointment := s.book(s.citizen, grippe)

	rejected, err := s.appointments.UpdateStatus(s.ctx, s.admin, appointment.ID, &dto.UpdateAppointmentStatusRequest{
		Status:          "rejected",
		ReasonRejection: strPtr("no stock"),
	})
	s.Require().NoError(err)
	s.Equal("rejected", rejected.Status)
	s.Require().NotNil(rejected.AdminID)
	s.Equal(s.admin.ID, *rejected.AdminID)
	s.Require().NotNil(rejected.ReasonRejection)
	s.Equal("no stock", *rejected.ReasonRejection)

	// re-applying a different status is allowed and clears the previous reason
	approved, err := s.appointments.UpdateStatus(s.ctx, s.admin, appointment.ID, &dto.UpdateAppointmentStatusRequest{Status: "Approved"})
	s.Require().NoError(err)
	s.Equal("approved", approved.Status)
	s.Nil(approved.ReasonRejection)

	stored, err := s.appointments.GetByID(s.ctx, appointment.ID)
	s.Require().NoError(err)
	s.Equal("approved", stored.Status)
	s.Nil(stored.ReasonRejection)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.AppointmentDecisions.WithLabelValues("approved")))
}

func (s *UsecaseSuite) TestUpdateStatusInvalidValueLeavesAppointmentUnchanged() {
	grippe := s.createVaccine("Grippe", 35)
	appointment := s.book(s.citizen, grippe)

	for _, status := range []string{"done", "", "APPROVED!"} {
		_, err := s.appointments.UpdateStatus(s.ctx, s.admin, appointment.ID, &dto.UpdateAppointmentStatusRequest{Status: status})
		s.ErrorIs(err, ErrInvalidStatus, "status %q", status)
		s.True(apperror.HasKind(err, apperror.KindInvalidArgument))
	}

	stored, err := s.appointments.GetByID(s.ctx, appointment.ID)
	s.Require().NoError(err)
	s.Equal("pending", stored.Status)
	s.Nil(stored.AdminID)
}

func (s *UsecaseSuite) TestUpdateStatusGates() {
	grippe := s.createVaccine("Grippe", 35)
	appointment := s.book(s.citizen, grippe)

	_, err := s.appointments.UpdateStatus(s.ctx, s.citizen, appointment.ID, &dto.UpdateAppointmentStatusRequest{Status: "approved"})
	s.True(apperror.HasKind(err, apperror.KindForbidden))

	_, err = s.appointments.UpdateStatus(s.ctx, s.admin, uuid.New(), &dto.UpdateAppointmentStatusRequest{Status: "approved"})
	s.ErrorIs(err, ErrAppointmentNotFound)
}

func (s *UsecaseSuite) TestDeleteAppointmentPermissions() {
	grippe := s.createVaccine("Grippe", 35)
	other := s.createUser("Other", "other@x.com", entity.RoleCitizen)

	approved := s.book(s.citizen, grippe)
	_, err := s.appointments.UpdateStatus(s.ctx, s.admin, approved.ID, &dto.UpdateAppointmentStatusRequest{Status: "approved"})
	s.Require().NoError(err)

	s.ErrorIs(s.appointments.Delete(s.ctx, other, approved.ID), ErrNotAppointmentOwner)
	s.NoError(s.appointments.Delete(s.ctx, s.citizen, approved.ID), "owner may delete in any status")
	s.ErrorIs(s.appointments.Delete(s.ctx, s.citizen, approved.ID), ErrAppointmentNotFound)

	byAdmin := s.book(other, grippe)
	s.NoError(s.appointments.Delete(s.ctx, s.admin, byAdmin.ID))
	s.True(apperror.HasKind(s.appointments.Delete(s.ctx, nil, byAdmin.ID), apperror.KindUnauthenticated))
}

func (s *UsecaseSuite) TestDeleteAppointmentCascadesVaccination() {
	grippe := s.createVaccine("Grippe", 35)
	appointment := s.book(s.citizen, grippe)
	vaccination := s.vaccinate(appointment)

	s.Require().NoError(s.appointments.Delete(s.ctx, s.citizen, appointment.ID))

	_, err := s.vaccinations.GetByID(s.ctx, vaccination.ID)
	s.ErrorIs(err, ErrVaccinationNotFound)
	s.NoError(s.vaccines.Delete(s.ctx, s.admin, grippe.ID), "vaccine is free once its references are gone")
}
