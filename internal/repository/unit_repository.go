package repository

import (
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"gorm.io/gorm"
)

type UnitFilter struct {
	Search string
	Jenis  string
	Page   int
	Rows   int
}

type UnitRepository interface {
	Create(unit *model.Unit) error
	FindByID(id string) (*model.Unit, error)
	FindByName(namaUnit string) (*model.Unit, error)
	GetAll(filter UnitFilter, withRelations bool) ([]model.Unit, int64, error)
	Update(unit *model.Unit) error
	// Delete menghapus unit beserta dependensinya dalam satu transaksi:
	// relasi petugas, unit_id di users, dan pengaduan yang menunjuk unit.
	// Tidak boleh ada pengaduan yang tersisa menunjuk unit terhapus.
	Delete(id string) error
	AddPetugas(unitID string, users []model.User) error
	RemovePetugas(unitID string, users []model.User) error

	// Pencarian unit dari sisi penugasan, dipakai visibility filter.
	FindByPetugas(noIdentitas string) (*model.Unit, error)
	FindByKepala(noIdentitas string) (*model.Unit, error)
	FindByPimpinan(noIdentitas string) (*model.Unit, error)
}

type unitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db}
}

func (r *unitRepository) Create(unit *model.Unit) error {
	return r.db.Create(unit).Error
}

func (r *unitRepository) FindByID(id string) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.Preload("Petugas").First(&unit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) FindByName(namaUnit string) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.Where("nama_unit = ?", namaUnit).First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) GetAll(filter UnitFilter, withRelations bool) ([]model.Unit, int64, error) {
	query := r.db.Model(&model.Unit{})

	if filter.Search != "" {
		query = query.Where("nama_unit LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Jenis != "" {
		query = query.Where("jenis_unit = ?", filter.Jenis)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if withRelations {
		query = query.Preload("Petugas")
	}

	var units []model.Unit
	err := query.Scopes(Paginate(filter.Page, filter.Rows)).
		Order("nama_unit").Find(&units).Error
	return units, total, err
}

func (r *unitRepository) Update(unit *model.Unit) error {
	return r.db.Save(unit).Error
}

func (r *unitRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var unit model.Unit
		if err := tx.First(&unit, "id = ?", id).Error; err != nil {
			return err
		}

		if err := tx.Model(&unit).Association("Petugas").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).Where("unit_id = ?", id).
			Update("unit_id", nil).Error; err != nil {
			return err
		}
		var pengaduanIDs []string
		if err := tx.Model(&model.Pengaduan{}).Where("unit_id = ?", id).
			Pluck("id", &pengaduanIDs).Error; err != nil {
			return err
		}
		if len(pengaduanIDs) > 0 {
			if err := tx.Where("pengaduan_id IN ?", pengaduanIDs).
				Delete(&model.Notification{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("unit_id = ?", id).Delete(&model.Pengaduan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&unit).Error
	})
}

func (r *unitRepository) AddPetugas(unitID string, users []model.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var unit model.Unit
		if err := tx.First(&unit, "id = ?", unitID).Error; err != nil {
			return err
		}

		// Seorang petugas hanya terikat satu unit: keanggotaan lama dilepas
		// dulu supaya tidak tersisa relasi ganda setelah pemindahan.
		userIDs := make([]string, 0, len(users))
		ids := make([]string, 0, len(users))
		for _, u := range users {
			userIDs = append(userIDs, u.ID)
			ids = append(ids, u.NoIdentitas)
		}
		if err := tx.Exec("DELETE FROM unit_petugas WHERE user_id IN ?", userIDs).Error; err != nil {
			return err
		}

		if err := tx.Model(&unit).Association("Petugas").Append(users); err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("no_identitas IN ?", ids).
			Update("unit_id", unitID).Error
	})
}

func (r *unitRepository) RemovePetugas(unitID string, users []model.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var unit model.Unit
		if err := tx.First(&unit, "id = ?", unitID).Error; err != nil {
			return err
		}
		if err := tx.Model(&unit).Association("Petugas").Delete(users); err != nil {
			return err
		}
		ids := make([]string, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.NoIdentitas)
		}
		return tx.Model(&model.User{}).
			Where("no_identitas IN ? AND unit_id = ?", ids, unitID).
			Update("unit_id", nil).Error
	})
}

func (r *unitRepository) FindByPetugas(noIdentitas string) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.Joins("JOIN unit_petugas ON unit_petugas.unit_id = units.id").
		Joins("JOIN users ON users.id = unit_petugas.user_id").
		Where("users.no_identitas = ?", noIdentitas).
		First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) FindByKepala(noIdentitas string) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.Where("kepala_unit_id = ?", noIdentitas).First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) FindByPimpinan(noIdentitas string) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.Where("pimpinan_unit_id = ?", noIdentitas).First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}
