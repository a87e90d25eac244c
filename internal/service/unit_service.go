package service

import (
	"errors"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateUnitRequest struct {
	NamaUnit       string  `json:"nama_unit"`
	JenisUnit      string  `json:"jenis_unit"`
	KepalaUnitID   *string `json:"kepalaUnitId"`
	PimpinanUnitID *string `json:"pimpinanUnitId"`
}

type UpdateUnitRequest struct {
	NamaUnit       string  `json:"nama_unit"`
	JenisUnit      string  `json:"jenis_unit"`
	KepalaUnitID   *string `json:"kepalaUnitId"`
	PimpinanUnitID *string `json:"pimpinanUnitId"`
}

type PetugasRequest struct {
	PetugasIDs []string `json:"petugasIds"`
}

type UnitService struct {
	unitRepo repository.UnitRepository
	userRepo repository.UserRepository
}

func NewUnitService(unitRepo repository.UnitRepository, userRepo repository.UserRepository) *UnitService {
	return &UnitService{unitRepo: unitRepo, userRepo: userRepo}
}

func (s *UnitService) Create(req CreateUnitRequest) (*model.Unit, error) {
	if req.NamaUnit == "" {
		return nil, ValidationError(FieldError{Field: "nama_unit", Message: "cannot be empty"})
	}

	if _, err := s.unitRepo.FindByName(req.NamaUnit); err == nil {
		return nil, Conflict("Unit with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("UnitService.Create: lookup name")
		return nil, Internal()
	}

	if verr := s.validateUserRef(req.KepalaUnitID, "kepalaUnitId"); verr != nil {
		return nil, verr
	}
	if verr := s.validateUserRef(req.PimpinanUnitID, "pimpinanUnitId"); verr != nil {
		return nil, verr
	}

	unit := &model.Unit{
		NamaUnit:       req.NamaUnit,
		JenisUnit:      req.JenisUnit,
		KepalaUnitID:   req.KepalaUnitID,
		PimpinanUnitID: req.PimpinanUnitID,
	}
	if err := s.unitRepo.Create(unit); err != nil {
		logrus.WithError(err).Error("UnitService.Create")
		return nil, Internal()
	}

	// Kepala ikut terikat ke unitnya supaya scoping per unit konsisten.
	if req.KepalaUnitID != nil {
		if kepala, err := s.userRepo.FindByNoIdentitas(*req.KepalaUnitID); err == nil {
			kepala.UnitID = &unit.ID
			if err := s.userRepo.Update(kepala); err != nil {
				logrus.WithError(err).Error("UnitService.Create: assign kepala")
			}
		}
	}

	return unit, nil
}

func (s *UnitService) validateUserRef(noIdentitas *string, field string) *Error {
	if noIdentitas == nil || *noIdentitas == "" {
		return nil
	}
	if _, err := s.userRepo.FindByNoIdentitas(*noIdentitas); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ValidationError(FieldError{Field: field, Message: "referenced user not found"})
		}
		logrus.WithError(err).Error("UnitService: lookup user ref")
		return Internal()
	}
	return nil
}

func (s *UnitService) GetAll(caller *model.UserClaims, filter repository.UnitFilter) (*PagedList[model.Unit], error) {
	withRelations := caller != nil && caller.Role == model.RoleAdmin

	units, total, err := s.unitRepo.GetAll(filter, withRelations)
	if err != nil {
		logrus.WithError(err).Error("UnitService.GetAll")
		return nil, Internal()
	}

	paged := NewPagedList(units, total, filter.Rows)
	return &paged, nil
}

func (s *UnitService) GetByID(id string) (*model.Unit, error) {
	unit, err := s.unitRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("UnitService.GetByID")
		return nil, Internal()
	}
	return unit, nil
}

func (s *UnitService) Update(id string, req UpdateUnitRequest) (*model.Unit, error) {
	unit, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.NamaUnit != "" && req.NamaUnit != unit.NamaUnit {
		if _, err := s.unitRepo.FindByName(req.NamaUnit); err == nil {
			return nil, Conflict("Unit with this name already exists")
		}
		unit.NamaUnit = req.NamaUnit
	}
	if req.JenisUnit != "" {
		unit.JenisUnit = req.JenisUnit
	}
	if req.KepalaUnitID != nil {
		if verr := s.validateUserRef(req.KepalaUnitID, "kepalaUnitId"); verr != nil {
			return nil, verr
		}
		unit.KepalaUnitID = req.KepalaUnitID
	}
	if req.PimpinanUnitID != nil {
		if verr := s.validateUserRef(req.PimpinanUnitID, "pimpinanUnitId"); verr != nil {
			return nil, verr
		}
		unit.PimpinanUnitID = req.PimpinanUnitID
	}

	if err := s.unitRepo.Update(unit); err != nil {
		logrus.WithError(err).Error("UnitService.Update")
		return nil, Internal()
	}
	return unit, nil
}

// Delete menghapus unit dengan seluruh cascade dalam satu transaksi (lihat
// repository): tidak ada user maupun pengaduan yang menunjuk unit terhapus.
func (s *UnitService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.unitRepo.Delete(id); err != nil {
		logrus.WithError(err).Error("UnitService.Delete")
		return Internal()
	}
	return nil
}

// AddPetugas menugaskan sejumlah user sebagai petugas unit. Semua id harus
// ada; seorang petugas hanya terikat satu unit.
func (s *UnitService) AddPetugas(unitID string, req PetugasRequest) (*model.Unit, error) {
	if len(req.PetugasIDs) == 0 {
		return nil, BadRequest("Invalid input data")
	}

	if _, err := s.GetByID(unitID); err != nil {
		return nil, err
	}

	users, verr := s.resolvePetugas(req.PetugasIDs)
	if verr != nil {
		return nil, verr
	}

	if err := s.unitRepo.AddPetugas(unitID, users); err != nil {
		logrus.WithError(err).Error("UnitService.AddPetugas")
		return nil, Internal()
	}
	return s.GetByID(unitID)
}

func (s *UnitService) RemovePetugas(unitID string, req PetugasRequest) (*model.Unit, error) {
	if len(req.PetugasIDs) == 0 {
		return nil, BadRequest("Invalid input data")
	}

	if _, err := s.GetByID(unitID); err != nil {
		return nil, err
	}

	users, verr := s.resolvePetugas(req.PetugasIDs)
	if verr != nil {
		return nil, verr
	}

	if err := s.unitRepo.RemovePetugas(unitID, users); err != nil {
		logrus.WithError(err).Error("UnitService.RemovePetugas")
		return nil, Internal()
	}
	return s.GetByID(unitID)
}

func (s *UnitService) resolvePetugas(ids []string) ([]model.User, *Error) {
	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.userRepo.FindByNoIdentitas(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, BadRequest("One or more petugas IDs do not exist")
			}
			logrus.WithError(err).Error("UnitService: lookup petugas")
			return nil, Internal()
		}
		users = append(users, *user)
	}
	return users, nil
}
