package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kategori dipakai dua partisi sekaligus: kategori pengaduan umum dan
// kategori WBS (IsWBS = true). Endpoint WBS hanya melihat baris ber-flag.
type Kategori struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Nama      string    `json:"nama" gorm:"unique;not null"`
	IsWBS     bool      `json:"isWBS" gorm:"column:is_wbs;default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (k *Kategori) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}
