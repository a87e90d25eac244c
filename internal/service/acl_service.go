package service

import (
	"errors"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SetPermissionsRequest struct {
	UserLevelID string                         `json:"userLevelId"`
	Permissions []repository.FeaturePermission `json:"permissions"`
}

type LevelPermissions struct {
	UserLevelID string                         `json:"userLevelId"`
	Permissions []repository.FeaturePermission `json:"permissions"`
}

type AclService struct {
	aclRepo   repository.AclRepository
	levelRepo repository.UserLevelRepository
}

func NewAclService(aclRepo repository.AclRepository, levelRepo repository.UserLevelRepository) *AclService {
	return &AclService{aclRepo: aclRepo, levelRepo: levelRepo}
}

// SetPermissions mengganti seluruh izin sebuah user level (replace, bukan
// merge). Grant lama tidak pernah tersisa setelah update.
func (s *AclService) SetPermissions(req SetPermissionsRequest) (*LevelPermissions, error) {
	fields := make([]FieldError, 0)
	if req.UserLevelID == "" {
		fields = append(fields, FieldError{Field: "userLevelId", Message: "cannot be empty"})
	}
	for _, perm := range req.Permissions {
		if perm.Subject == "" {
			fields = append(fields, FieldError{Field: "permissions.subject", Message: "cannot be empty"})
		}
		if len(perm.Actions) == 0 {
			fields = append(fields, FieldError{Field: "permissions.actions", Message: "cannot be empty"})
		}
	}
	if len(fields) > 0 {
		return nil, ValidationError(fields...)
	}

	if _, err := s.levelRepo.FindByID(req.UserLevelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("AclService.SetPermissions: lookup level")
		return nil, Internal()
	}

	if err := s.aclRepo.SetPermissions(req.UserLevelID, req.Permissions); err != nil {
		logrus.WithError(err).Error("AclService.SetPermissions: replace grants")
		return nil, Internal()
	}

	return s.GetByUserLevel(req.UserLevelID)
}

// GetByUserLevel mengembalikan izin level dikelompokkan per feature.
func (s *AclService) GetByUserLevel(userLevelID string) (*LevelPermissions, error) {
	if _, err := s.levelRepo.FindByID(userLevelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("AclService.GetByUserLevel: lookup level")
		return nil, Internal()
	}

	permissions, err := s.aclRepo.GetByUserLevel(userLevelID)
	if err != nil {
		logrus.WithError(err).Error("AclService.GetByUserLevel: fetch grants")
		return nil, Internal()
	}

	return &LevelPermissions{UserLevelID: userLevelID, Permissions: permissions}, nil
}

func (s *AclService) ListFeatures() ([]model.Feature, error) {
	features, err := s.aclRepo.ListFeatures()
	if err != nil {
		logrus.WithError(err).Error("AclService.ListFeatures")
		return nil, Internal()
	}
	return features, nil
}
