package service

import (
	"errors"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserLevelRequest struct {
	Name string `json:"name"`
}

type UserLevelService struct {
	repo repository.UserLevelRepository
}

func NewUserLevelService(repo repository.UserLevelRepository) *UserLevelService {
	return &UserLevelService{repo: repo}
}

func (s *UserLevelService) Create(req UserLevelRequest) (*model.UserLevel, error) {
	if req.Name == "" {
		return nil, ValidationError(FieldError{Field: "name", Message: "cannot be empty"})
	}

	if _, err := s.repo.FindByName(req.Name); err == nil {
		return nil, Conflict("User level with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("UserLevelService.Create: lookup name")
		return nil, Internal()
	}

	level := &model.UserLevel{Name: req.Name}
	if err := s.repo.Create(level); err != nil {
		logrus.WithError(err).Error("UserLevelService.Create")
		return nil, Internal()
	}
	return level, nil
}

func (s *UserLevelService) GetAll() ([]model.UserLevel, error) {
	levels, err := s.repo.GetAll()
	if err != nil {
		logrus.WithError(err).Error("UserLevelService.GetAll")
		return nil, Internal()
	}
	return levels, nil
}

func (s *UserLevelService) GetByID(id string) (*model.UserLevel, error) {
	level, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("UserLevelService.GetByID")
		return nil, Internal()
	}
	return level, nil
}

// Delete menghapus level beserta grant ACL-nya (lihat repository).
func (s *UserLevelService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		logrus.WithError(err).Error("UserLevelService.Delete")
		return Internal()
	}
	return nil
}
