package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserLevel struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"unique;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *UserLevel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

type User struct {
	ID           string     `json:"id" gorm:"primaryKey;size:36"`
	NoIdentitas  string     `json:"no_identitas" gorm:"column:no_identitas;unique;not null"`
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"unique;not null"`
	Password     string     `json:"-" gorm:"not null"`
	NoTelphone   string     `json:"no_telphone" gorm:"column:no_telphone"`
	ProgramStudi string     `json:"program_studi,omitempty"`
	UserLevelID  string     `json:"userLevelId" gorm:"size:36;not null"`
	UserLevel    *UserLevel `json:"userLevel,omitempty" gorm:"foreignKey:UserLevelID"`
	// Unit tempat petugas bertugas. Null untuk pelapor biasa.
	UnitID    *string   `json:"unitId,omitempty" gorm:"size:36"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Role mengembalikan Role dari relasi user level (fail-closed bila relasi kosong).
func (u *User) Role() Role {
	if u.UserLevel == nil {
		return RoleUser
	}
	return ParseRole(u.UserLevel.Name)
}
