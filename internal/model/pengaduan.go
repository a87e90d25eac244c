package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusInProcess Status = "IN_PROCESS"
	StatusCompleted Status = "COMPLETED"
)

// validTransitions adalah satu-satunya definisi alur status.
// Menambah status baru cukup menambah konstanta dan entri di sini.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusInProcess, StatusCompleted},
	StatusInProcess: {StatusCompleted},
	StatusCompleted: {},
}

func (s Status) Valid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo: transisi ke status yang sama selalu boleh (edit konten
// tanpa perubahan status), selain itu harus terdaftar di validTransitions.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type TipePengaduan string

const (
	TipeUser       TipePengaduan = "USER"
	TipeMasyarakat TipePengaduan = "MASYARAKAT"
)

type Pengaduan struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	Judul     string `json:"judul" gorm:"not null"`
	Deskripsi string `json:"deskripsi" gorm:"type:text;not null"`
	Status    Status `json:"status" gorm:"default:PENDING;not null"`

	UnitID     string    `json:"unitId" gorm:"size:36;not null"`
	Unit       *Unit     `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	KategoriID string    `json:"kategoriId" gorm:"size:36;not null"`
	Kategori   *Kategori `json:"kategori,omitempty" gorm:"foreignKey:KategoriID"`

	// PelaporID menunjuk no_identitas pelapor. Null untuk pengaduan
	// masyarakat (pelapor anonim / tanpa akun).
	PelaporID *string `json:"pelaporId,omitempty" gorm:"column:pelapor_id"`
	Pelapor   *User   `json:"pelapor,omitempty" gorm:"foreignKey:PelaporID;references:NoIdentitas"`

	TipePengaduan TipePengaduan `json:"tipePengaduan" gorm:"default:USER;not null"`

	// Kontak pelapor masyarakat.
	Nama       string `json:"nama,omitempty"`
	NIK        string `json:"NIK,omitempty" gorm:"column:nik"`
	NoTelphone string `json:"no_telphone,omitempty" gorm:"column:no_telphone"`

	HarapanPelapor string  `json:"harapan_pelapor,omitempty" gorm:"column:harapan_pelapor;type:text"`
	Response       string  `json:"response,omitempty" gorm:"type:text"`
	ApprovedBy     *string `json:"approvedBy,omitempty" gorm:"column:approved_by"`
	FilePendukung  string  `json:"filePendukung,omitempty"`
	FilePetugas    string  `json:"filePetugas,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Pengaduan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	return nil
}
