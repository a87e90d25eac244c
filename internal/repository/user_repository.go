package repository

import (
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"gorm.io/gorm"
)

type UserFilter struct {
	Search    string
	LevelName string
	Page      int
	Rows      int
}

type UserRepository interface {
	Create(user *model.User) error
	FindByNoIdentitas(noIdentitas string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	GetAll(filter UserFilter) ([]model.User, int64, error)
	Update(user *model.User) error
	// Delete menghapus user beserta pengaduan miliknya dalam satu transaksi.
	Delete(noIdentitas string) error
	FindByLevelNames(levelNames []string) ([]model.User, error)
	FindByUnitAndLevels(unitID string, levelNames []string) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByNoIdentitas(noIdentitas string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("UserLevel").
		Where("no_identitas = ?", noIdentitas).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("UserLevel").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll(filter UserFilter) ([]model.User, int64, error) {
	query := r.db.Model(&model.User{}).Preload("UserLevel")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR no_identitas LIKE ? OR email LIKE ?", like, like, like)
	}
	if filter.LevelName != "" {
		query = query.Joins("JOIN user_levels ON user_levels.id = users.user_level_id").
			Where("user_levels.name = ?", filter.LevelName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Scopes(Paginate(filter.Page, filter.Rows)).
		Order("users.created_at desc").Find(&users).Error
	return users, total, err
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(noIdentitas string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("no_identitas = ?", noIdentitas).First(&user).Error; err != nil {
			return err
		}

		// Notifikasi milik user dan notifikasi laporan yang ikut terhapus.
		if err := tx.Where("user_id = ?", noIdentitas).
			Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		var pengaduanIDs []string
		if err := tx.Model(&model.Pengaduan{}).Where("pelapor_id = ?", noIdentitas).
			Pluck("id", &pengaduanIDs).Error; err != nil {
			return err
		}
		if len(pengaduanIDs) > 0 {
			if err := tx.Where("pengaduan_id IN ?", pengaduanIDs).
				Delete(&model.Notification{}).Error; err != nil {
				return err
			}
		}
		var wbsIDs []string
		if err := tx.Model(&model.PengaduanWBS{}).Where("pelapor_id = ?", noIdentitas).
			Pluck("id", &wbsIDs).Error; err != nil {
			return err
		}
		if len(wbsIDs) > 0 {
			if err := tx.Where("pengaduan_wbs_id IN ?", wbsIDs).
				Delete(&model.Notification{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("pelapor_id = ?", noIdentitas).
			Delete(&model.Pengaduan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pelapor_id = ?", noIdentitas).
			Delete(&model.PengaduanWBS{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM unit_petugas WHERE user_id = ?", user.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func (r *userRepository) FindByLevelNames(levelNames []string) ([]model.User, error) {
	var users []model.User
	err := r.db.Joins("JOIN user_levels ON user_levels.id = users.user_level_id").
		Where("user_levels.name IN ?", levelNames).
		Find(&users).Error
	return users, err
}

func (r *userRepository) FindByUnitAndLevels(unitID string, levelNames []string) ([]model.User, error) {
	var users []model.User
	err := r.db.Joins("JOIN user_levels ON user_levels.id = users.user_level_id").
		Where("users.unit_id = ? AND user_levels.name IN ?", unitID, levelNames).
		Find(&users).Error
	return users, err
}
