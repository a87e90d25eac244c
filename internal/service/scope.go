package service

import (
	"errors"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"gorm.io/gorm"
)

// ScopeResolver menghitung predikat visibilitas data per role: pelapor hanya
// melihat laporannya sendiri, petugas hanya laporan di unitnya, role super
// melihat semua. Predikat ini DIIRISKAN dengan filter klien sebelum query,
// satu cabang per role di satu tempat, bukan tersebar di handler.
type ScopeResolver struct {
	unitRepo repository.UnitRepository
}

func NewScopeResolver(unitRepo repository.UnitRepository) *ScopeResolver {
	return &ScopeResolver{unitRepo: unitRepo}
}

// PengaduanScope mengembalikan scope GORM tambahan untuk listing pengaduan
// umum. Role petugas tanpa penugasan unit adalah salah konfigurasi dan
// digagalkan eksplisit, tidak pernah menghasilkan 200 kosong atau tanpa filter.
func (s *ScopeResolver) PengaduanScope(caller *model.UserClaims) (func(*gorm.DB) *gorm.DB, error) {
	if caller == nil {
		return nil, Forbidden("Akses ditolak: identitas tidak ditemukan")
	}

	switch caller.Role {
	case model.RoleAdmin, model.RolePetugasSuper:
		// Visibilitas penuh.
		return nil, nil

	case model.RolePetugas:
		unit, err := s.unitRepo.FindByPetugas(caller.NoIdentitas)
		if err != nil {
			return nil, unassignedOrInternal(err)
		}
		return unitScope(unit.ID), nil

	case model.RoleKepalaPetugasUnit:
		unit, err := s.unitRepo.FindByKepala(caller.NoIdentitas)
		if err != nil {
			return nil, unassignedOrInternal(err)
		}
		return unitScope(unit.ID), nil

	case model.RolePimpinanUnit:
		unit, err := s.unitRepo.FindByPimpinan(caller.NoIdentitas)
		if err != nil {
			return nil, unassignedOrInternal(err)
		}
		return unitScope(unit.ID), nil

	default:
		// Role pelapor (dosen, mahasiswa, tendik, user): miliknya sendiri.
		return ownScope(caller.NoIdentitas), nil
	}
}

// WBSScope: petugas WBS melihat seluruh laporan WBS (pool datar, bukan per
// unit) tapi identitas pelapor di-anonimkan di proyeksi, bukan di predikat.
// Role pelapor tetap dibatasi miliknya sendiri.
func (s *ScopeResolver) WBSScope(caller *model.UserClaims) (func(*gorm.DB) *gorm.DB, error) {
	if caller == nil {
		return nil, Forbidden("Akses ditolak: identitas tidak ditemukan")
	}

	switch caller.Role {
	case model.RoleAdmin, model.RolePetugasSuper, model.RolePetugasWBS, model.RoleKepalaWBS:
		return nil, nil
	default:
		return ownScope(caller.NoIdentitas), nil
	}
}

func unitScope(unitID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("unit_id = ?", unitID)
	}
}

func ownScope(noIdentitas string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("pelapor_id = ?", noIdentitas)
	}
}

func unassignedOrInternal(err error) *Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return BadRequest("You are not assigned to any unit")
	}
	return Internal()
}
