package service

import (
	"errors"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type KategoriRequest struct {
	Nama string `json:"nama"`
}

// KategoriService dipakai dua partisi: instansiasi dengan isWBS true melayani
// kategori WBS, false melayani kategori pengaduan umum.
type KategoriService struct {
	repo  repository.KategoriRepository
	isWBS bool
}

func NewKategoriService(repo repository.KategoriRepository, isWBS bool) *KategoriService {
	return &KategoriService{repo: repo, isWBS: isWBS}
}

func (s *KategoriService) Create(req KategoriRequest) (*model.Kategori, error) {
	if req.Nama == "" {
		return nil, ValidationError(FieldError{Field: "nama", Message: "cannot be empty"})
	}

	if _, err := s.repo.FindByName(req.Nama); err == nil {
		return nil, Conflict("Kategori with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("KategoriService.Create: lookup name")
		return nil, Internal()
	}

	kategori := &model.Kategori{Nama: req.Nama, IsWBS: s.isWBS}
	if err := s.repo.Create(kategori); err != nil {
		logrus.WithError(err).Error("KategoriService.Create")
		return nil, Internal()
	}
	return kategori, nil
}

func (s *KategoriService) GetAll() ([]model.Kategori, error) {
	list, err := s.repo.GetAll(s.isWBS)
	if err != nil {
		logrus.WithError(err).Error("KategoriService.GetAll")
		return nil, Internal()
	}
	return list, nil
}

func (s *KategoriService) GetByID(id string) (*model.Kategori, error) {
	kategori, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("KategoriService.GetByID")
		return nil, Internal()
	}
	if kategori.IsWBS != s.isWBS {
		return nil, NotFound()
	}
	return kategori, nil
}

func (s *KategoriService) Update(id string, req KategoriRequest) (*model.Kategori, error) {
	kategori, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Nama == "" {
		return nil, ValidationError(FieldError{Field: "nama", Message: "cannot be empty"})
	}

	kategori.Nama = req.Nama
	if err := s.repo.Update(kategori); err != nil {
		logrus.WithError(err).Error("KategoriService.Update")
		return nil, Internal()
	}
	return kategori, nil
}

func (s *KategoriService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		logrus.WithError(err).Error("KategoriService.Delete")
		return Internal()
	}
	return nil
}
