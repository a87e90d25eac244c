package service

import (
	"testing"

	"github.com/GhufranBkri/Sipema-backend/config"
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB membuka database sqlite in-memory dengan skema lengkap.
// Satu koneksi saja supaya seluruh query melihat database yang sama.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func mustLevel(t *testing.T, db *gorm.DB, name string) *model.UserLevel {
	t.Helper()
	level := &model.UserLevel{Name: name}
	require.NoError(t, db.FirstOrCreate(level, model.UserLevel{Name: name}).Error)
	return level
}

func mustUser(t *testing.T, db *gorm.DB, noIdentitas string, role model.Role, unitID *string) *model.User {
	t.Helper()
	level := mustLevel(t, db, string(role))
	user := &model.User{
		NoIdentitas: noIdentitas,
		Name:        "User " + noIdentitas,
		Email:       noIdentitas + "@test.com",
		Password:    "secret",
		UserLevelID: level.ID,
		UserLevel:   level,
		UnitID:      unitID,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func mustUnit(t *testing.T, db *gorm.DB, nama string, kepalaID *string) *model.Unit {
	t.Helper()
	unit := &model.Unit{NamaUnit: nama, JenisUnit: "TEKNIS", KepalaUnitID: kepalaID}
	require.NoError(t, db.Create(unit).Error)
	return unit
}

func mustKategori(t *testing.T, db *gorm.DB, nama string, isWBS bool) *model.Kategori {
	t.Helper()
	kategori := &model.Kategori{Nama: nama, IsWBS: isWBS}
	require.NoError(t, db.Create(kategori).Error)
	return kategori
}

func claimsFor(user *model.User) *model.UserClaims {
	return &model.UserClaims{
		NoIdentitas: user.NoIdentitas,
		Name:        user.Name,
		Email:       user.Email,
		UserLevelID: user.UserLevelID,
		Role:        user.Role(),
		UnitID:      user.UnitID,
	}
}
