package repository

import (
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"gorm.io/gorm"
)

// FeaturePermission adalah bentuk izin yang dikelompokkan per feature,
// dipakai bolak-balik antara API admin dan storage (baris Acl per action).
type FeaturePermission struct {
	Subject string   `json:"subject"`
	Actions []string `json:"actions"`
}

type AclRepository interface {
	// SetPermissions mengganti SELURUH izin sebuah user level secara atomik:
	// hapus semua baris lama lalu tulis set baru dalam satu transaksi.
	SetPermissions(userLevelID string, permissions []FeaturePermission) error
	GetByUserLevel(userLevelID string) ([]FeaturePermission, error)
	ListFeatures() ([]model.Feature, error)
	IsAuthorized(userLevelID, feature, action string) (bool, error)
}

type aclRepository struct {
	db *gorm.DB
}

func NewAclRepository(db *gorm.DB) AclRepository {
	return &aclRepository{db}
}

func (r *aclRepository) SetPermissions(userLevelID string, permissions []FeaturePermission) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		entries := make([]model.Acl, 0)

		for _, perm := range permissions {
			// Feature/Action yang belum ada dibuat dulu (upsert by name):
			// admin mendeklarasikan kapabilitas baru cukup dengan memberi izin.
			var feature model.Feature
			if err := tx.Where(model.Feature{Name: perm.Subject}).
				FirstOrCreate(&feature, model.Feature{Name: perm.Subject}).Error; err != nil {
				return err
			}

			for _, action := range perm.Actions {
				var act model.Action
				if err := tx.Where(model.Action{Name: action, FeatureName: perm.Subject}).
					FirstOrCreate(&act, model.Action{Name: action, FeatureName: perm.Subject}).Error; err != nil {
					return err
				}

				entries = append(entries, model.Acl{
					NamaFeature: perm.Subject,
					NamaAction:  action,
					UserLevelID: userLevelID,
				})
			}
		}

		if err := tx.Where("user_level_id = ?", userLevelID).
			Delete(&model.Acl{}).Error; err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *aclRepository) GetByUserLevel(userLevelID string) ([]FeaturePermission, error) {
	var rows []model.Acl
	if err := r.db.Where("user_level_id = ?", userLevelID).
		Order("nama_feature, nama_action").Find(&rows).Error; err != nil {
		return nil, err
	}

	// Kebalikan dari layout storage: baris per action dikelompokkan per feature.
	grouped := make([]FeaturePermission, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.NamaFeature]
		if !ok {
			grouped = append(grouped, FeaturePermission{Subject: row.NamaFeature})
			i = len(grouped) - 1
			index[row.NamaFeature] = i
		}
		grouped[i].Actions = append(grouped[i].Actions, row.NamaAction)
	}
	return grouped, nil
}

func (r *aclRepository) ListFeatures() ([]model.Feature, error) {
	var features []model.Feature
	err := r.db.Preload("Actions").Order("name").Find(&features).Error
	return features, err
}

func (r *aclRepository) IsAuthorized(userLevelID, feature, action string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Acl{}).
		Where("user_level_id = ? AND nama_feature = ? AND nama_action = ?", userLevelID, feature, action).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	// Tidak ada baris = tidak ada izin. Default-deny, bukan error.
	return count > 0, nil
}
