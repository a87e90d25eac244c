package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feature adalah domain kapabilitas (PENGADUAN, UNIT, dst). Baris Feature dan
// Action dibuat implisit saat admin memberi izin baru: sistem permission
// mendeskripsikan dirinya sendiri.
type Feature struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"unique;not null"`
	Actions   []Action  `json:"actions,omitempty" gorm:"foreignKey:FeatureName;references:Name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *Feature) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type Action struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex:idx_action_feature"`
	FeatureName string    `json:"featureName" gorm:"not null;uniqueIndex:idx_action_feature"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *Action) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Acl adalah grant atomik: user level boleh melakukan action pada feature.
// Tidak ada baris berarti tidak ada izin (default-deny). Uniqueness triple
// ditegakkan di database, bukan cuma di aplikasi.
type Acl struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	NamaFeature string    `json:"namaFeature" gorm:"not null;uniqueIndex:idx_acl_triple"`
	NamaAction  string    `json:"namaAction" gorm:"not null;uniqueIndex:idx_acl_triple"`
	UserLevelID string    `json:"userLevelId" gorm:"size:36;not null;uniqueIndex:idx_acl_triple"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *Acl) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
