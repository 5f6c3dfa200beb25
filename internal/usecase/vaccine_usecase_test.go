package usecase

import (
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *UsecaseSuite) TestCreateVaccine() {
	vaccine := s.createVaccine("Grippe", 35)
	s.Equal("Grippe", vaccine.Name)
	s.True(vaccine.Availability, "availability defaults to true")
	s.Require().NotNil(vaccine.Price)
	s.True(decimal.NewFromInt(35).Equal(*vaccine.Price))

	free, err := s.vaccines.Create(s.ctx, s.admin, &dto.CreateVaccineRequest{Name: "BCG"})
	s.Require().NoError(err)
	s.Nil(free.Price)
}

func (s *UsecaseSuite) TestCreateVaccineValidation() {
	s.createVaccine("Grippe", 35)

	_, err := s.vaccines.Create(s.ctx, s.admin, &dto.CreateVaccineRequest{Name: "Grippe"})
	s.ErrorIs(err, ErrVaccineNameExists)

	negative := decimal.NewFromInt(-1)
	_, err = s.vaccines.Create(s.ctx, s.admin, &dto.CreateVaccineRequest{Name: "Cheap", Price: &negative})
	s.ErrorIs(err, ErrNegativePrice)

	_, err = s.vaccines.Create(s.ctx, s.admin, &dto.CreateVaccineRequest{Name: "   "})
	s.ErrorIs(err, ErrVaccineNameRequired)

	_, err = s.vaccines.Create(s.ctx, s.citizen, &dto.CreateVaccineRequest{Name: "Polio"})
	s.True(apperror.HasKind(err, apperror.KindForbidden))
}

func (s *UsecaseSuite) TestUpdateVaccinePatchSemantics() {
	vaccine := s.createVaccine("Grippe", 35)

	updated, err := s.vaccines.Update(s.ctx, s.admin, vaccine.ID, &dto.UpdateVaccineRequest{
		Availability: dto.NewField(false),
	})
	s.Require().NoError(err)
	s.Equal("Grippe", updated.Name)
	s.False(updated.Availability)
	s.Require().NotNil(updated.Price)
	s.True(decimal.NewFromInt(35).Equal(*updated.Price))

	updated, err = s.vaccines.Update(s.ctx, s.admin, vaccine.ID, &dto.UpdateVaccineRequest{
		Price: dto.NullField[decimal.Decimal](),
	})
	s.Require().NoError(err)
	s.Nil(updated.Price)
	s.False(updated.Availability)

	updated, err = s.vaccines.Update(s.ctx, s.admin, vaccine.ID, &dto.UpdateVaccineRequest{})
	s.Require().NoError(err)
	s.Equal("Grippe", updated.Name)
}

func (s *UsecaseSuite) TestUpdateVaccineRenameConflict() {
	s.createVaccine("Grippe", 35)
	other := s.createVaccine("Hépatite A", 100)

	_, err := s.vaccines.Update(s.ctx, s.admin, other.ID, &dto.UpdateVaccineRequest{Name: dto.NewField("Grippe")})
	s.ErrorIs(err, ErrVaccineNameExists)

	renamed, err := s.vaccines.Update(s.ctx, s.admin, other.ID, &dto.UpdateVaccineRequest{Name: dto.NewField("Hépatite A")})
	s.Require().NoError(err)
	s.Equal("Hépatite A", renamed.Name)

	_, err = s.vaccines.Update(s.ctx, s.admin, uuid.New(), &dto.UpdateVaccineRequest{Name: dto.NewField("X")})
	s.ErrorIs(err, ErrVaccineNotFound)

	_, err = s.vaccines.Update(s.ctx, s.admin, other.ID, &dto.UpdateVaccineRequest{Availability: dto.NullField[bool]()})
	s.ErrorIs(err, ErrAvailabilityNull)
}

func (s *UsecaseSuite) TestDeleteVaccineReferencedByAppointment() {
	grippe := s.createVaccine("Grippe", 35)
	s.book(s.citizen, grippe)

	err := s.vaccines.Delete(s.ctx, s.admin, grippe.ID)
	s.ErrorIs(err, ErrVaccineInUse)
	s.True(apperror.HasKind(err, apperror.KindConflict))

	_, err = s.vaccines.GetByID(s.ctx, grippe.ID)
	s.NoError(err)
}

func (s *UsecaseSuite) TestDeleteVaccineReferencedByVaccinationOnly() {
	grippe := s.createVaccine("Grippe", 35)
	rabies := s.createVaccine("Antirabique", 180)
	appointment := s.book(s.citizen, grippe)

	_, err := s.vaccinations.Create(s.ctx, s.admin, &dto.CreateVaccinationRequest{
		AppointmentID: appointment.ID,
		VaccineID:     &rabies.ID,
		DoseNumber:    1,
	})
	s.Require().NoError(err)

	s.ErrorIs(s.vaccines.Delete(s.ctx, s.admin, rabies.ID), ErrVaccineInUse)
}

func (s *UsecaseSuite) TestDeleteUnreferencedVaccine() {
	vaccine := s.createVaccine("Typhoïde", 33)

	s.Require().NoError(s.vaccines.Delete(s.ctx, s.admin, vaccine.ID))

	_, err := s.vaccines.GetByID(s.ctx, vaccine.ID)
	s.ErrorIs(err, ErrVaccineNotFound)
	s.ErrorIs(s.vaccines.Delete(s.ctx, s.admin, vaccine.ID), ErrVaccineNotFound)
}

func (s *UsecaseSuite) TestSeedCatalogIsIdempotent() {
	s.createVaccine("Grippe", 40)

	created, err := s.vaccines.SeedCatalog(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(defaultCatalog)-1, created)

	created, err = s.vaccines.SeedCatalog(s.ctx)
	s.Require().NoError(err)
	s.Zero(created)

	vaccines, err := s.vaccines.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(vaccines, len(defaultCatalog))

	for _, v := range vaccines {
		if v.Name == "Grippe" {
			s.True(decimal.NewFromInt(40).Equal(*v.Price), "existing entries are not overwritten")
		}
	}
}
