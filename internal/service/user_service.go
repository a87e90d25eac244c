package service

import (
	"errors"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UpdateUserRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	NoTelphone    string  `json:"no_telphone"`
	ProgramStudi  string  `json:"program_studi"`
	UserLevelName string  `json:"userLevelName"`
	UnitID        *string `json:"unitId"`
}

type UserService struct {
	userRepo  repository.UserRepository
	levelRepo repository.UserLevelRepository
	unitRepo  repository.UnitRepository
}

func NewUserService(userRepo repository.UserRepository, levelRepo repository.UserLevelRepository, unitRepo repository.UnitRepository) *UserService {
	return &UserService{userRepo: userRepo, levelRepo: levelRepo, unitRepo: unitRepo}
}

func (s *UserService) GetAll(filter repository.UserFilter) (*PagedList[model.User], error) {
	users, total, err := s.userRepo.GetAll(filter)
	if err != nil {
		logrus.WithError(err).Error("UserService.GetAll")
		return nil, Internal()
	}
	paged := NewPagedList(users, total, filter.Rows)
	return &paged, nil
}

func (s *UserService) GetByNoIdentitas(noIdentitas string) (*model.User, error) {
	user, err := s.userRepo.FindByNoIdentitas(noIdentitas)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("UserService.GetByNoIdentitas")
		return nil, Internal()
	}
	return user, nil
}

// Update mengubah profil, role, atau penugasan unit user.
func (s *UserService) Update(noIdentitas string, req UpdateUserRequest) (*model.User, error) {
	user, err := s.GetByNoIdentitas(noIdentitas)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.NoTelphone != "" {
		user.NoTelphone = req.NoTelphone
	}
	if req.ProgramStudi != "" {
		user.ProgramStudi = req.ProgramStudi
	}
	if req.UserLevelName != "" {
		level, lerr := s.levelRepo.FindByName(req.UserLevelName)
		if lerr != nil {
			if errors.Is(lerr, gorm.ErrRecordNotFound) {
				return nil, ValidationError(FieldError{Field: "userLevelName", Message: "user level not found"})
			}
			logrus.WithError(lerr).Error("UserService.Update: lookup level")
			return nil, Internal()
		}
		user.UserLevelID = level.ID
		user.UserLevel = level
	}
	if req.UnitID != nil {
		if *req.UnitID != "" {
			if _, uerr := s.unitRepo.FindByID(*req.UnitID); uerr != nil {
				if errors.Is(uerr, gorm.ErrRecordNotFound) {
					return nil, ValidationError(FieldError{Field: "unitId", Message: "unit not found"})
				}
				logrus.WithError(uerr).Error("UserService.Update: lookup unit")
				return nil, Internal()
			}
			user.UnitID = req.UnitID
		} else {
			user.UnitID = nil
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		logrus.WithError(err).Error("UserService.Update")
		return nil, Internal()
	}
	return user, nil
}

// Delete menghapus user beserta laporan miliknya (cascade transaksional).
func (s *UserService) Delete(noIdentitas string) error {
	if _, err := s.GetByNoIdentitas(noIdentitas); err != nil {
		return err
	}
	if err := s.userRepo.Delete(noIdentitas); err != nil {
		logrus.WithError(err).Error("UserService.Delete")
		return Internal()
	}
	return nil
}
