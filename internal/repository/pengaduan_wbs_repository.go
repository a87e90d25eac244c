package repository

import (
	"strings"
	"time"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"gorm.io/gorm"
)

type PengaduanWBSRepository interface {
	Create(pengaduan *model.PengaduanWBS) error
	FindByID(id string) (*model.PengaduanWBS, error)
	GetAll(filter PengaduanFilter, scope func(*gorm.DB) *gorm.DB) ([]model.PengaduanWBS, int64, error)
	Update(pengaduan *model.PengaduanWBS) error
	DeleteByIDs(ids []string) error
	FindSimilarSince(judul, deskripsi, pelaporID string, since time.Time) (*model.PengaduanWBS, error)
	Count() (int64, error)
}

type pengaduanWBSRepository struct {
	db *gorm.DB
}

func NewPengaduanWBSRepository(db *gorm.DB) PengaduanWBSRepository {
	return &pengaduanWBSRepository{db}
}

func (r *pengaduanWBSRepository) Create(pengaduan *model.PengaduanWBS) error {
	return r.db.Create(pengaduan).Error
}

func (r *pengaduanWBSRepository) FindByID(id string) (*model.PengaduanWBS, error) {
	var pengaduan model.PengaduanWBS
	err := r.db.Preload("Kategori").First(&pengaduan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pengaduan, nil
}

func (r *pengaduanWBSRepository) GetAll(filter PengaduanFilter, scope func(*gorm.DB) *gorm.DB) ([]model.PengaduanWBS, int64, error) {
	query := r.db.Model(&model.PengaduanWBS{})

	if scope != nil {
		query = query.Scopes(scope)
	}
	if filter.Search != "" {
		query = query.Where("judul LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.KategoriID != "" {
		query = query.Where("kategori_id = ?", filter.KategoriID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.PengaduanWBS
	err := query.Preload("Kategori").
		Scopes(Paginate(filter.Page, filter.Rows)).
		Order("created_at desc").
		Find(&entries).Error
	return entries, total, err
}

func (r *pengaduanWBSRepository) Update(pengaduan *model.PengaduanWBS) error {
	return r.db.Save(pengaduan).Error
}

func (r *pengaduanWBSRepository) DeleteByIDs(ids []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pengaduan_wbs_id IN ?", ids).
			Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.PengaduanWBS{}).Error
	})
}

func (r *pengaduanWBSRepository) FindSimilarSince(judul, deskripsi, pelaporID string, since time.Time) (*model.PengaduanWBS, error) {
	var pengaduan model.PengaduanWBS
	err := r.db.Where("LOWER(judul) = ? AND LOWER(deskripsi) = ? AND pelapor_id = ? AND created_at >= ?",
		strings.ToLower(judul), strings.ToLower(deskripsi), pelaporID, since).
		First(&pengaduan).Error
	if err != nil {
		return nil, err
	}
	return &pengaduan, nil
}

func (r *pengaduanWBSRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.PengaduanWBS{}).Count(&count).Error
	return count, err
}
