package service

import (
	"testing"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewUserLevelRepository(db),
		repository.NewUnitRepository(db),
	)
}

// Hapus user membersihkan laporan miliknya, notifikasinya, dan penugasan
// petugas dalam satu transaksi.
func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	unitRepo := repository.NewUnitRepository(db)

	unit := mustUnit(t, db, "Unit TI", nil)
	kategori := mustKategori(t, db, "Akademik", false)
	kategoriWBS := mustKategori(t, db, "Korupsi atau Gratifikasi", true)
	petugas := mustUser(t, db, "4001", model.RolePetugas, nil)
	require.NoError(t, unitRepo.AddPetugas(unit.ID, []model.User{*petugas}))

	pengaduan := &model.Pengaduan{
		Judul: "Laporan", Deskripsi: "isi",
		UnitID: unit.ID, KategoriID: kategori.ID,
		PelaporID: &petugas.NoIdentitas, TipePengaduan: model.TipeUser,
	}
	require.NoError(t, db.Create(pengaduan).Error)
	require.NoError(t, db.Create(&model.PengaduanWBS{
		Judul: "Gratifikasi", Deskripsi: "isi", Lokasi: "Gedung A",
		KategoriID: kategoriWBS.ID, PelaporID: petugas.NoIdentitas,
	}).Error)
	require.NoError(t, db.Create(&model.Notification{
		Title: "Laporan Baru", Message: "isi", Type: model.NotifNewReport,
		UserID: petugas.NoIdentitas, PengaduanID: &pengaduan.ID,
	}).Error)

	require.NoError(t, svc.Delete(petugas.NoIdentitas))

	var count int64
	db.Model(&model.User{}).Where("no_identitas = ?", petugas.NoIdentitas).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.Pengaduan{}).Where("pelapor_id = ?", petugas.NoIdentitas).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.PengaduanWBS{}).Where("pelapor_id = ?", petugas.NoIdentitas).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.Notification{}).Where("user_id = ?", petugas.NoIdentitas).Count(&count)
	assert.Zero(t, count)
	require.NoError(t, db.Table("unit_petugas").
		Where("user_id = ?", petugas.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateUserReassignsLevelAndUnit(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	unit := mustUnit(t, db, "Unit TI", nil)
	mustLevel(t, db, string(model.RolePetugas))
	user := mustUser(t, db, "2003", model.RoleMahasiswa, nil)

	updated, err := svc.Update(user.NoIdentitas, UpdateUserRequest{
		UserLevelName: string(model.RolePetugas),
		UnitID:        &unit.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolePetugas, updated.Role())
	require.NotNil(t, updated.UnitID)
	assert.Equal(t, unit.ID, *updated.UnitID)

	tidakAda := "tidak-ada"
	_, err = svc.Update(user.NoIdentitas, UpdateUserRequest{UnitID: &tidakAda})
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindValidation, svcErr.Kind)
}
