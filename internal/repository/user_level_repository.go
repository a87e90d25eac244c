package repository

import (
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"gorm.io/gorm"
)

type UserLevelRepository interface {
	Create(level *model.UserLevel) error
	FindByID(id string) (*model.UserLevel, error)
	FindByName(name string) (*model.UserLevel, error)
	GetAll() ([]model.UserLevel, error)
	Delete(id string) error
}

type userLevelRepository struct {
	db *gorm.DB
}

func NewUserLevelRepository(db *gorm.DB) UserLevelRepository {
	return &userLevelRepository{db}
}

func (r *userLevelRepository) Create(level *model.UserLevel) error {
	return r.db.Create(level).Error
}

func (r *userLevelRepository) FindByID(id string) (*model.UserLevel, error) {
	var level model.UserLevel
	err := r.db.First(&level, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *userLevelRepository) FindByName(name string) (*model.UserLevel, error) {
	var level model.UserLevel
	err := r.db.Where("name = ?", name).First(&level).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *userLevelRepository) GetAll() ([]model.UserLevel, error) {
	var levels []model.UserLevel
	err := r.db.Order("name").Find(&levels).Error
	return levels, err
}

func (r *userLevelRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Grants ikut terhapus supaya tidak ada entri ACL yatim.
		if err := tx.Where("user_level_id = ?", id).Delete(&model.Acl{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.UserLevel{}, "id = ?", id).Error
	})
}
