package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Unit struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	NamaUnit  string `json:"nama_unit" gorm:"column:nama_unit;unique;not null"`
	JenisUnit string `json:"jenis_unit" gorm:"column:jenis_unit"`
	// Kepala dan pimpinan menunjuk ke no_identitas user, bukan id.
	KepalaUnitID   *string `json:"kepalaUnitId,omitempty" gorm:"column:kepala_unit_id"`
	PimpinanUnitID *string `json:"pimpinanUnitId,omitempty" gorm:"column:pimpinan_unit_id"`
	// Petugas yang ditugaskan ke unit ini (many-to-many).
	Petugas   []User    `json:"petugas,omitempty" gorm:"many2many:unit_petugas;"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
