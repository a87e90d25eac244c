package repository

import (
	"strings"
	"time"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"gorm.io/gorm"
)

type PengaduanFilter struct {
	Search     string
	Status     model.Status
	KategoriID string
	Page       int
	Rows       int
}

type PengaduanRepository interface {
	Create(pengaduan *model.Pengaduan) error
	FindByID(id string) (*model.Pengaduan, error)
	// GetAll menggabungkan filter klien dengan partisi tipePengaduan (wajib)
	// dan scope visibilitas hasil visibility filter engine.
	GetAll(tipe model.TipePengaduan, filter PengaduanFilter, scope func(*gorm.DB) *gorm.DB) ([]model.Pengaduan, int64, error)
	Update(pengaduan *model.Pengaduan) error
	DeleteByIDs(ids []string) error
	// FindSimilarSince mencari pengaduan dengan judul+deskripsi sama
	// (case-insensitive) dari pelapor/NIK yang sama sejak waktu tertentu.
	FindSimilarSince(judul, deskripsi string, pelaporID, nik string, since time.Time) (*model.Pengaduan, error)
	CountByTipe(tipe model.TipePengaduan) (int64, error)
}

type pengaduanRepository struct {
	db *gorm.DB
}

func NewPengaduanRepository(db *gorm.DB) PengaduanRepository {
	return &pengaduanRepository{db}
}

func (r *pengaduanRepository) Create(pengaduan *model.Pengaduan) error {
	return r.db.Create(pengaduan).Error
}

func (r *pengaduanRepository) FindByID(id string) (*model.Pengaduan, error) {
	var pengaduan model.Pengaduan
	err := r.db.Preload("Unit").Preload("Kategori").Preload("Pelapor").
		First(&pengaduan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pengaduan, nil
}

func (r *pengaduanRepository) GetAll(tipe model.TipePengaduan, filter PengaduanFilter, scope func(*gorm.DB) *gorm.DB) ([]model.Pengaduan, int64, error) {
	query := r.db.Model(&model.Pengaduan{}).
		Where("tipe_pengaduan = ?", tipe)

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

	var entries []model.Pengaduan
	err := query.Preload("Unit").Preload("Kategori").
		Scopes(Paginate(filter.Page, filter.Rows)).
		Order("created_at desc").
		Find(&entries).Error
	return entries, total, err
}

func (r *pengaduanRepository) Update(pengaduan *model.Pengaduan) error {
	return r.db.Save(pengaduan).Error
}

func (r *pengaduanRepository) DeleteByIDs(ids []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pengaduan_id IN ?", ids).
			Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.Pengaduan{}).Error
	})
}

func (r *pengaduanRepository) FindSimilarSince(judul, deskripsi string, pelaporID, nik string, since time.Time) (*model.Pengaduan, error) {
	query := r.db.Where("LOWER(judul) = ? AND LOWER(deskripsi) = ? AND created_at >= ?",
		strings.ToLower(judul), strings.ToLower(deskripsi), since)

	if pelaporID != "" {
		query = query.Where("pelapor_id = ?", pelaporID)
	} else {
		query = query.Where("nik = ?", nik)
	}

	var pengaduan model.Pengaduan
	err := query.First(&pengaduan).Error
	if err != nil {
		return nil, err
	}
	return &pengaduan, nil
}

func (r *pengaduanRepository) CountByTipe(tipe model.TipePengaduan) (int64, error) {
	var count int64
	err := r.db.Model(&model.Pengaduan{}).
		Where("tipe_pengaduan = ?", tipe).Count(&count).Error
	return count, err
}
