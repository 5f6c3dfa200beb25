package usecase

import (
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/apperror"
	"vaccination-management/internal/domain/entity"

	"github.com/google/uuid"
)

func (s *UsecaseSuite) TestListAndGetUsers() {
	users, err := s.users.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 2)

	user, err := s.users.GetByID(s.ctx, s.citizen.ID)
	s.Require().NoError(err)
	s.Equal("awa@x.com", user.Email)

	_, err = s.users.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UsecaseSuite) TestDeleteUserCascadesAndNullifies() {
	grippe := s.createVaccine("Grippe", 35)

	// citizen data that must disappear
	owned := s.book(s.citizen, grippe)
	_, err := s.appointments.UpdateStatus(s.ctx, s.admin, owned.ID, &dto.UpdateAppointmentStatusRequest{Status: "approved"})
	s.Require().NoError(err)
	ownedDose := s.vaccinate(owned)

	// records the deleted user handled as admin or author
	otherAdmin := s.createUser("Second Admin", "admin2@x.com", entity.RoleAdmin)
	other := s.createUser("Other", "other@x.com", entity.RoleCitizen)
	handled := s.book(other, grippe)
	_, err = s.appointments.UpdateStatus(s.ctx, otherAdmin, handled.ID, &dto.UpdateAppointmentStatusRequest{Status: "rejected", ReasonRejection: strPtr("full")})
	s.Require().NoError(err)
	handledDose, err := s.vaccinations.Create(s.ctx, otherAdmin, &dto.CreateVaccinationRequest{AppointmentID: handled.ID, DoseNumber: 2})
	s.Require().NoError(err)
	article, err := s.articles.Create(s.ctx, otherAdmin, &dto.CreateArticleRequest{Title: "Flu season", Content: "Get vaccinated."})
	s.Require().NoError(err)

	s.Require().NoError(s.users.Delete(s.ctx, s.admin, s.citizen.ID))
	s.Require().NoError(s.users.Delete(s.ctx, s.admin, otherAdmin.ID))

	_, err = s.users.GetByID(s.ctx, s.citizen.ID)
	s.ErrorIs(err, ErrUserNotFound)
	_, err = s.appointments.GetByID(s.ctx, owned.ID)
	s.ErrorIs(err, ErrAppointmentNotFound)
	_, err = s.vaccinations.GetByID(s.ctx, ownedDose.ID)
	s.ErrorIs(err, ErrVaccinationNotFound)

	keptAppointment, err := s.appointments.GetByID(s.ctx, handled.ID)
	s.Require().NoError(err)
	s.Nil(keptAppointment.AdminID)
	s.Equal("rejected", keptAppointment.Status)

	keptDose, err := s.vaccinations.GetByID(s.ctx, handledDose.ID)
	s.Require().NoError(err)
	s.Nil(keptDose.AdminID)

	keptArticle, err := s.articles.GetByID(s.ctx, article.ID)
	s.Require().NoError(err)
	s.Nil(keptArticle.CreatedBy)
	s.Nil(keptArticle.Author)
}

func (s *UsecaseSuite) TestDeleteUserRemovesDosesLinkedToOwnedAppointments() {
	grippe := s.createVaccine("Grippe", 35)
	appointment := s.book(s.citizen, grippe)

	// recorded under a different citizen id but linked to the deleted citizen's appointment
	other := s.createUser("Other", "other@x.com", entity.RoleCitizen)
	dose, err := s.vaccinations.Create(s.ctx, s.admin, &dto.CreateVaccinationRequest{
		AppointmentID: appointment.ID,
		CitizenID:     &other.ID,
		DoseNumber:    1,
	})
	s.Require().NoError(err)
	s.Equal(other.ID, dose.CitizenID)

	s.Require().NoError(s.users.Delete(s.ctx, s.admin, s.citizen.ID))

	_, err = s.vaccinations.GetByID(s.ctx, dose.ID)
	s.ErrorIs(err, ErrVaccinationNotFound)
}

func (s *UsecaseSuite) TestDeleteUserRequiresAdmin() {
	err := s.users.Delete(s.ctx, s.citizen, s.admin.ID)
	s.True(apperror.HasKind(err, apperror.KindForbidden))

	err = s.users.Delete(s.ctx, s.admin, uuid.New())
	s.ErrorIs(err, ErrUserNotFound)
}
