package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PengaduanWBS adalah laporan Whistle Blowing System. Ditangani pool petugas
// WBS sendiri (bukan per unit) dan identitas pelapor dirahasiakan dari
// petugas yang membacanya.
type PengaduanWBS struct {
	ID            string     `json:"id" gorm:"primaryKey;size:36"`
	Judul         string     `json:"judul" gorm:"not null"`
	Deskripsi     string     `json:"deskripsi" gorm:"type:text;not null"`
	Lokasi        string     `json:"lokasi" gorm:"not null"`
	PihakTerlibat string     `json:"pihakTerlibat" gorm:"column:pihak_terlibat"`
	TanggalKejadian *time.Time `json:"tanggalKejadian,omitempty" gorm:"column:tanggal_kejadian"`

	Status Status `json:"status" gorm:"default:PENDING;not null"`

	KategoriID string    `json:"kategoriId" gorm:"size:36;not null"`
	Kategori   *Kategori `json:"kategori,omitempty" gorm:"foreignKey:KategoriID"`

	PelaporID string `json:"pelaporId,omitempty" gorm:"column:pelapor_id;not null"`
	Pelapor   *User  `json:"pelapor,omitempty" gorm:"foreignKey:PelaporID;references:NoIdentitas"`

	ApprovedBy    *string `json:"approvedBy,omitempty" gorm:"column:approved_by"`
	Response      string  `json:"response,omitempty" gorm:"type:text"`
	FilePendukung string  `json:"filePendukung,omitempty"`
	FilePetugas   string  `json:"filePetugas,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *PengaduanWBS) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	return nil
}

// Anonymize mengosongkan identitas pelapor sebelum data dikirim ke petugas
// WBS. Petugas boleh membaca isi laporan, bukan siapa pelapornya.
func (p *PengaduanWBS) Anonymize() {
	p.PelaporID = ""
	p.Pelapor = nil
}
