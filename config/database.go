package config

import (
	"fmt"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASS", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "sipema"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("Gagal koneksi ke database")
	}

	if err := Migrate(db); err != nil {
		logrus.WithError(err).Fatal("Gagal migrasi database")
	}

	DB = db
}

// Migrate membuat/menyesuaikan tabel berdasarkan struct model, termasuk
// unique index triple ACL yang wajib ditegakkan di level database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserLevel{},
		&model.User{},
		&model.Unit{},
		&model.Kategori{},
		&model.Pengaduan{},
		&model.PengaduanWBS{},
		&model.Notification{},
		&model.Feature{},
		&model.Action{},
		&model.Acl{},
	)
}
