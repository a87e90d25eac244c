package service

import (
	"testing"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPengaduanScopeAdminUnscoped(t *testing.T) {
	db := newTestDB(t)
	resolver := NewScopeResolver(repository.NewUnitRepository(db))

	admin := mustUser(t, db, "1001", model.RoleAdmin, nil)
	scope, err := resolver.PengaduanScope(claimsFor(admin))
	require.NoError(t, err)
	assert.Nil(t, scope)

	super := mustUser(t, db, "3001", model.RolePetugasSuper, nil)
	scope, err = resolver.PengaduanScope(claimsFor(super))
	require.NoError(t, err)
	assert.Nil(t, scope)
}

// Petugas tanpa penugasan unit adalah salah konfigurasi: gagal eksplisit,
// bukan 200 kosong dan bukan visibilitas penuh.
func TestPengaduanScopeUnassignedOfficerFails(t *testing.T) {
	db := newTestDB(t)
	resolver := NewScopeResolver(repository.NewUnitRepository(db))

	for _, role := range []model.Role{model.RolePetugas, model.RoleKepalaPetugasUnit, model.RolePimpinanUnit} {
		user := mustUser(t, db, "u-"+string(role), role, nil)
		_, err := resolver.PengaduanScope(claimsFor(user))
		require.Error(t, err, string(role))
		svcErr, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, KindValidation, svcErr.Kind)
		assert.Equal(t, "You are not assigned to any unit", svcErr.Message)
	}
}

func TestPengaduanScopePetugasLimitedToUnit(t *testing.T) {
	db := newTestDB(t)
	unitRepo := repository.NewUnitRepository(db)
	resolver := NewScopeResolver(unitRepo)

	unitA := mustUnit(t, db, "Unit A", nil)
	unitB := mustUnit(t, db, "Unit B", nil)
	kategori := mustKategori(t, db, "Akademik", false)

	petugas := mustUser(t, db, "4001", model.RolePetugas, &unitA.ID)
	require.NoError(t, unitRepo.AddPetugas(unitA.ID, []model.User{*petugas}))

	pelaporID := "2003"
	for _, unit := range []*model.Unit{unitA, unitB} {
		require.NoError(t, db.Create(&model.Pengaduan{
			Judul: "Laporan " + unit.NamaUnit, Deskripsi: "isi",
			UnitID: unit.ID, KategoriID: kategori.ID,
			PelaporID: &pelaporID, TipePengaduan: model.TipeUser,
		}).Error)
	}

	scope, err := resolver.PengaduanScope(claimsFor(petugas))
	require.NoError(t, err)
	require.NotNil(t, scope)

	var visible []model.Pengaduan
	require.NoError(t, db.Scopes(scope).Find(&visible).Error)
	require.Len(t, visible, 1)
	assert.Equal(t, unitA.ID, visible[0].UnitID)
}

func TestPengaduanScopeReporterOwnOnly(t *testing.T) {
	db := newTestDB(t)
	resolver := NewScopeResolver(repository.NewUnitRepository(db))

	unit := mustUnit(t, db, "Unit A", nil)
	kategori := mustKategori(t, db, "Akademik", false)
	mahasiswa := mustUser(t, db, "2003", model.RoleMahasiswa, nil)

	mine := mahasiswa.NoIdentitas
	other := "9999"
	for _, pelapor := range []*string{&mine, &other} {
		require.NoError(t, db.Create(&model.Pengaduan{
			Judul: "Laporan " + *pelapor, Deskripsi: "isi",
			UnitID: unit.ID, KategoriID: kategori.ID,
			PelaporID: pelapor, TipePengaduan: model.TipeUser,
		}).Error)
	}

	scope, err := resolver.PengaduanScope(claimsFor(mahasiswa))
	require.NoError(t, err)
	require.NotNil(t, scope)

	var visible []model.Pengaduan
	require.NoError(t, db.Scopes(scope).Find(&visible).Error)
	require.Len(t, visible, 1)
	assert.Equal(t, mine, *visible[0].PelaporID)
}

func TestWBSScopeOfficerSeesAllReporterSeesOwn(t *testing.T) {
	db := newTestDB(t)
	resolver := NewScopeResolver(repository.NewUnitRepository(db))

	officer := mustUser(t, db, "6001", model.RolePetugasWBS, nil)
	scope, err := resolver.WBSScope(claimsFor(officer))
	require.NoError(t, err)
	assert.Nil(t, scope)

	dosen := mustUser(t, db, "2002", model.RoleDosen, nil)
	scope, err = resolver.WBSScope(claimsFor(dosen))
	require.NoError(t, err)
	assert.NotNil(t, scope)
}

func TestScopeNilCallerForbidden(t *testing.T) {
	db := newTestDB(t)
	resolver := NewScopeResolver(repository.NewUnitRepository(db))

	_, err := resolver.PengaduanScope(nil)
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, svcErr.Kind)

	_, err = resolver.WBSScope(nil)
	require.Error(t, err)
}
