package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifNewReport       NotificationType = "NEW_REPORT"
	NotifReportInProcess NotificationType = "REPORT_IN_PROCESS"
	NotifReportUpdated   NotificationType = "REPORT_UPDATED"
	NotifReminder        NotificationType = "REMINDER"
)

type Notification struct {
	ID      string           `json:"id" gorm:"primaryKey;size:36"`
	Title   string           `json:"title" gorm:"not null"`
	Message string           `json:"message" gorm:"type:text;not null"`
	IsRead  bool             `json:"isRead" gorm:"default:false"`
	Type    NotificationType `json:"type" gorm:"not null"`

	// UserID adalah no_identitas penerima.
	UserID string `json:"userId" gorm:"not null;index"`

	// Referensi balik ke laporan pemicu, salah satu saja yang terisi.
	PengaduanID    *string `json:"pengaduanId,omitempty" gorm:"size:36;index"`
	PengaduanWBSID *string `json:"pengaduanWBSId,omitempty" gorm:"column:pengaduan_wbs_id;size:36;index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
