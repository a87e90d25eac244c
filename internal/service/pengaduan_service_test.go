package service

import (
	"testing"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPengaduanService(t *testing.T, db *gorm.DB) *PengaduanService {
	t.Helper()
	unitRepo := repository.NewUnitRepository(db)
	return NewPengaduanService(
		repository.NewPengaduanRepository(db),
		unitRepo,
		repository.NewKategoriRepository(db),
		repository.NewUserRepository(db),
		repository.NewNotificationRepository(db),
		NewScopeResolver(unitRepo),
		NewWaService(),
		nil,
	)
}

// setupUnitTI: satu unit dengan kepala dan satu petugas terdaftar, plus
// kategori umum. Fixture standar alur pengaduan internal.
func setupUnitTI(t *testing.T, db *gorm.DB) (*model.Unit, *model.Kategori, *model.User, *model.User) {
	kepala := mustUser(t, db, "5001", model.RoleKepalaPetugasUnit, nil)
	unit := mustUnit(t, db, "Unit TI", &kepala.NoIdentitas)
	require.NoError(t, db.Model(kepala).Update("unit_id", unit.ID).Error)

	petugas := mustUser(t, db, "4001", model.RolePetugas, &unit.ID)
	require.NoError(t, repository.NewUnitRepository(db).AddPetugas(unit.ID, []model.User{*petugas}))

	kategori := mustKategori(t, db, "Akademik", false)
	return unit, kategori, kepala, petugas
}

func TestCreatePengaduanNotifiesUnitStaff(t *testing.T) {
	db := newTestDB(t)
	svc := newPengaduanService(t, db)
	unit, kategori, kepala, petugas := setupUnitTI(t, db)
	mahasiswa := mustUser(t, db, "2003", model.RoleMahasiswa, nil)

	pengaduan, err := svc.Create(claimsFor(mahasiswa), CreatePengaduanRequest{
		Judul:     "AC rusak",
		Deskripsi: "AC ruang kuliah mati total",
		UnitID:    unit.ID, KategoriID: kategori.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, pengaduan.Status)
	assert.Equal(t, model.TipeUser, pengaduan.TipePengaduan)
	require.NotNil(t, pengaduan.PelaporID)
	assert.Equal(t, mahasiswa.NoIdentitas, *pengaduan.PelaporID)

	var notifs []model.Notification
	require.NoError(t, db.Where("pengaduan_id = ?", pengaduan.ID).Find(&notifs).Error)
	require.Len(t, notifs, 2)
	recipients := []string{notifs[0].UserID, notifs[1].UserID}
	assert.ElementsMatch(t, []string{petugas.NoIdentitas, kepala.NoIdentitas}, recipients)
	for _, n := range notifs {
		assert.Equal(t, model.NotifNewReport, n.Type)
	}
}

func TestCreatePengaduanDuplicateWithin24hRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newPengaduanService(t, db)
	unit, kategori, _, _ := setupUnitTI(t, db)
	mahasiswa := mustUser(t, db, "2003", model.RoleMahasiswa, nil)

	req := CreatePengaduanRequest{
		Judul: "AC rusak", Deskripsi: "AC ruang kuliah mati total",
		UnitID: unit.ID, KategoriID: kategori.ID,
	}
	_, err := svc.Create(claimsFor(mahasiswa), req)
	require.NoError(t, err)

	// Isi sama, hanya kapitalisasi beda: tetap duplikat.
	req.Judul = "ac RUSAK"
	_, err = svc.Create(claimsFor(mahasiswa), req)
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindValidation, svcErr.Kind)
	require.Len(t, svcErr.Fields, 1)
	assert.Equal(t, "pengaduan", svcErr.Fields[0].Field)

	// Pelapor lain dengan isi sama bukan duplikat.
	lain := mustUser(t, db, "2004", model.RoleMahasiswa, nil)
	_, err = svc.Create(claimsFor(lain), req)
	require.NoError(t, err)
}

func TestCreatePengaduanRejectsWBSKategori(t *testing.T) {
	db := newTestDB(t)
	svc := newPengaduanService(t, db)
	unit, _, _, _ := setupUnitTI(t, db)
	wbsKategori := mustKategori(t, db, "Korupsi atau Gratifikasi", true)
	mahasiswa := mustUser(t, db, "2003", model.RoleMahasiswa, nil)

	_, err := svc.Create(claimsFor(mahasiswa), CreatePengaduanRequest{
		Judul: "Judul", Deskripsi: "Isi",
		UnitID: unit.ID, KategoriID: wbsKategori.ID,
	})
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindValidation, svcErr.Kind)
}

func TestOfficerStatusUpdateStampsAndNotifies(t *testing.T) {
	db := newTestDB(t)
	svc := newPengaduanService(t, db)
	unit, kategori, _, petugas := setupUnitTI(t, db)
	mahasiswa := mustUser(t, db, "2003", model.RoleMahasiswa, nil)

	pengaduan, err := svc.Create(claimsFor(mahasiswa), CreatePengaduanRequest{
		Judul: "AC rusak", Deskripsi: "AC mati",
		UnitID: unit.ID, KategoriID: kategori.ID,
	})
	require.NoError(t, err)

	updated, err := svc.Update(pengaduan.ID, claimsFor(petugas), UpdatePengaduanRequest{
		Status: string(model.StatusInProcess), Response: "Sedang dicek teknisi",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProcess, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, petugas.NoIdentitas, *updated.ApprovedBy)

	// Notifikasi NEW_REPORT lama DITIMPA menjadi REPORT_IN_PROCESS,
	// bukan dibuat baris baru.
	var newReports int64
	db.Model(&model.Notification{}).
		Where("pengaduan_id = ? AND type = ?", pengaduan.ID, model.NotifNewReport).
		Count(&newReports)
	assert.Zero(t, newReports)

	var inProcess []model.Notification
	require.NoError(t, db.Where("pengaduan_id = ? AND type = ?", pengaduan.ID, model.NotifReportInProcess).
		Find(&inProcess).Error)
	require.Len(t, inProcess, 2)
	for _, n := range inProcess {
		assert.False(t, n.IsRead)
		assert.Contains(t, n.Message, petugas.Name)
	}

	// Pelapor mendapat tepat satu REPORT_UPDATED.
	var updates []model.Notification
	require.NoError(t, db.Where("pengaduan_id = ? AND type = ?", pengaduan.ID, model.NotifReportUpdated).
		Find(&updates).Error)
	require.Len(t, updates, 1)
	assert.Equal(t, mahasiswa.NoIdentitas, updates[0].UserID)
}

func TestReporterCannotChangeStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newPengaduanService(t, db)
	unit, kategori, _, _ := setupUnitTI(t, db)
	dosen := mustUser(t, db, "2002", model.RoleDosen, nil)

	pengaduan, err := svc.Create(claimsFor(dosen), CreatePengaduanRequest{
		Judul: "Proyektor rusak", Deskripsi: "Proyektor kelas A tidak menyala",
		UnitID: unit.ID, KategoriID: kategori.ID,
	})
	require.NoError(t, err)

	_, err = svc.Update(pengaduan.ID, claimsFor(dosen), UpdatePengaduanRequest{
		Status: string(model.StatusCompleted),
	})
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindValidation, svcErr.Kind)
	require.Len(t, svcErr.Fields, 1)
	assert.Equal(t, "status", svcErr.Fields[0].Field)

	// Tanpa status, pelapor boleh merevisi konten miliknya.
	updated, err := svc.Update(pengaduan.ID, claimsFor(dosen), UpdatePengaduanRequest{
		Deskripsi: "Proyektor kelas A mati total sejak Senin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Proyektor kelas A mati total sejak Senin", updated.Deskripsi)
	assert.Equal(t, model.StatusPending, updated.Status)
}

func TestReporterCannotEditOthersComplaint(t *testing.T) {
	db := newTestDB(t)
	svc := newPengaduanService(t, db)
	unit, kategori, _, _ := setupUnitTI(t, db)
	pemilik := mustUser(t, db, "2003", model.RoleMahasiswa, nil)
	penyusup := mustUser(t, db, "2004", model.RoleMahasiswa, nil)

	pengaduan, err := svc.Create(claimsFor(pemilik), CreatePengaduanRequest{
		Judul: "Judul", Deskripsi: "Isi",
		UnitID: unit.ID, KategoriID: kategori.ID,
	})
	require.NoError(t, err)

	_, err = svc.Update(pengaduan.ID, claimsFor(penyusup), UpdatePengaduanRequest{Deskripsi: "diubah"})
	require.Error(t, err)

	_, err = svc.GetByID(pengaduan.ID, claimsFor(penyusup))
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, svcErr.Kind)
}

func TestStatusTransitionRules(t *testing.T) {
	db := newTestDB(t)
	svc := newPengaduanService(t, db)
	unit, kategori, _, petugas := setupUnitTI(t, db)
	mahasiswa := mustUser(t, db, "2003", model.RoleMahasiswa, nil)

	pengaduan, err := svc.Create(claimsFor(mahasiswa), CreatePengaduanRequest{
		Judul: "Judul", Deskripsi: "Isi",
		UnitID: unit.ID, KategoriID: kategori.ID,
	})
	require.NoError(t, err)

	// Status tidak dikenal ditolak.
	_, err = svc.Update(pengaduan.ID, claimsFor(petugas), UpdatePengaduanRequest{Status: "REJECTED"})
	require.Error(t, err)

	// PENDING -> COMPLETED boleh (lompat IN_PROCESS).
	updated, err := svc.Update(pengaduan.ID, claimsFor(petugas), UpdatePengaduanRequest{
		Status: string(model.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)

	// COMPLETED adalah terminal: mundur ke IN_PROCESS ditolak.
	_, err = svc.Update(pengaduan.ID, claimsFor(petugas), UpdatePengaduanRequest{
		Status: string(model.StatusInProcess),
	})
	require.Error(t, err)

	// Status sama boleh (edit konten tanpa transisi).
	_, err = svc.Update(pengaduan.ID, claimsFor(petugas), UpdatePengaduanRequest{
		Status: string(model.StatusCompleted), Response: "Selesai dikerjakan",
	})
	require.NoError(t, err)
}

func TestGetAllAppliesTipePartition(t *testing.T) {
	db := newTestDB(t)
	svc := newPengaduanService(t, db)
	unit, kategori, _, _ := setupUnitTI(t, db)
	admin := mustUser(t, db, "1001", model.RoleAdmin, nil)

	pelaporID := "2003"
	require.NoError(t, db.Create(&model.Pengaduan{
		Judul: "Internal", Deskripsi: "isi", UnitID: unit.ID, KategoriID: kategori.ID,
		PelaporID: &pelaporID, TipePengaduan: model.TipeUser,
	}).Error)
	require.NoError(t, db.Create(&model.Pengaduan{
		Judul: "Publik", Deskripsi: "isi", UnitID: unit.ID, KategoriID: kategori.ID,
		NIK: "123", TipePengaduan: model.TipeMasyarakat,
	}).Error)

	result, err := svc.GetAll(claimsFor(admin), repository.PengaduanFilter{Page: 1, Rows: 10})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Internal", result.Entries[0].Judul)
	assert.Equal(t, int64(1), result.TotalData)
}

func TestGetTotalCountPerPartition(t *testing.T) {
	db := newTestDB(t)
	svc := newPengaduanService(t, db)
	unit, kategori, _, _ := setupUnitTI(t, db)

	pelaporID := "2003"
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&model.Pengaduan{
			Judul: "Internal", Deskripsi: "isi", UnitID: unit.ID, KategoriID: kategori.ID,
			PelaporID: &pelaporID, TipePengaduan: model.TipeUser,
		}).Error)
	}
	require.NoError(t, db.Create(&model.Pengaduan{
		Judul: "Publik", Deskripsi: "isi", UnitID: unit.ID, KategoriID: kategori.ID,
		NIK: "123", TipePengaduan: model.TipeMasyarakat,
	}).Error)

	counts, err := svc.GetTotalCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.TotalCount)
	assert.Equal(t, int64(1), counts.TotalCountMasyarakat)
}

func TestDeleteByIDsRemovesNotifications(t *testing.T) {
	db := newTestDB(t)
	svc := newPengaduanService(t, db)
	unit, kategori, _, _ := setupUnitTI(t, db)
	mahasiswa := mustUser(t, db, "2003", model.RoleMahasiswa, nil)

	pengaduan, err := svc.Create(claimsFor(mahasiswa), CreatePengaduanRequest{
		Judul: "Judul", Deskripsi: "Isi",
		UnitID: unit.ID, KategoriID: kategori.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByIDs([]string{pengaduan.ID}))

	var sisa int64
	db.Model(&model.Pengaduan{}).Where("id = ?", pengaduan.ID).Count(&sisa)
	assert.Zero(t, sisa)
	db.Model(&model.Notification{}).Where("pengaduan_id = ?", pengaduan.ID).Count(&sisa)
	assert.Zero(t, sisa)

	require.Error(t, svc.DeleteByIDs(nil))
}
