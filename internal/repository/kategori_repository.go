package repository

import (
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"gorm.io/gorm"
)

type KategoriRepository interface {
	Create(kategori *model.Kategori) error
	FindByID(id string) (*model.Kategori, error)
	FindByName(nama string) (*model.Kategori, error)
	// GetAll memfilter per partisi: isWBS true untuk kategori WBS saja,
	// false untuk kategori pengaduan umum saja.
	GetAll(isWBS bool) ([]model.Kategori, error)
	Update(kategori *model.Kategori) error
	Delete(id string) error
}

type kategoriRepository struct {
	db *gorm.DB
}

func NewKategoriRepository(db *gorm.DB) KategoriRepository {
	return &kategoriRepository{db}
}

func (r *kategoriRepository) Create(kategori *model.Kategori) error {
	return r.db.Create(kategori).Error
}

func (r *kategoriRepository) FindByID(id string) (*model.Kategori, error) {
	var kategori model.Kategori
	err := r.db.First(&kategori, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &kategori, nil
}

func (r *kategoriRepository) FindByName(nama string) (*model.Kategori, error) {
	var kategori model.Kategori
	err := r.db.Where("nama = ?", nama).First(&kategori).Error
	if err != nil {
		return nil, err
	}
	return &kategori, nil
}

func (r *kategoriRepository) GetAll(isWBS bool) ([]model.Kategori, error) {
	var list []model.Kategori
	err := r.db.Where("is_wbs = ?", isWBS).Order("nama").Find(&list).Error
	return list, err
}

func (r *kategoriRepository) Update(kategori *model.Kategori) error {
	return r.db.Save(kategori).Error
}

func (r *kategoriRepository) Delete(id string) error {
	return r.db.Delete(&model.Kategori{}, "id = ?", id).Error
}
