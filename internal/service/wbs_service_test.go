package service

import (
	"testing"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWBSService(db *gorm.DB) *WBSService {
	return NewWBSService(
		repository.NewPengaduanWBSRepository(db),
		repository.NewKategoriRepository(db),
		repository.NewUserRepository(db),
		repository.NewNotificationRepository(db),
		NewScopeResolver(repository.NewUnitRepository(db)),
		nil,
		nil,
	)
}

func TestCreateWBSBroadcastsToAllWBSOfficers(t *testing.T) {
	db := newTestDB(t)
	svc := newWBSService(db)
	kategori := mustKategori(t, db, "Korupsi atau Gratifikasi", true)

	// Pool datar: dua petugas WBS dan satu kepala, tanpa keterikatan unit.
	p1 := mustUser(t, db, "6001", model.RolePetugasWBS, nil)
	p2 := mustUser(t, db, "6002", model.RolePetugasWBS, nil)
	kepala := mustUser(t, db, "5002", model.RoleKepalaWBS, nil)
	dosen := mustUser(t, db, "2002", model.RoleDosen, nil)

	pengaduan, err := svc.Create(claimsFor(dosen), CreateWBSRequest{
		Judul: "Gratifikasi pengadaan", Deskripsi: "Ada indikasi gratifikasi",
		Lokasi: "Gedung A", KategoriID: kategori.ID, TanggalKejadian: "2026-08-01",
	})
	require.NoError(t, err)
	require.NotNil(t, pengaduan.TanggalKejadian)

	var notifs []model.Notification
	require.NoError(t, db.Where("pengaduan_wbs_id = ?", pengaduan.ID).Find(&notifs).Error)
	require.Len(t, notifs, 3)
	recipients := make([]string, 0, len(notifs))
	for _, n := range notifs {
		recipients = append(recipients, n.UserID)
	}
	assert.ElementsMatch(t, []string{p1.NoIdentitas, p2.NoIdentitas, kepala.NoIdentitas}, recipients)
}

func TestCreateWBSRequiresWBSKategori(t *testing.T) {
	db := newTestDB(t)
	svc := newWBSService(db)
	umum := mustKategori(t, db, "Akademik", false)
	dosen := mustUser(t, db, "2002", model.RoleDosen, nil)

	_, err := svc.Create(claimsFor(dosen), CreateWBSRequest{
		Judul: "Judul", Deskripsi: "Isi", Lokasi: "Gedung A", KategoriID: umum.ID,
	})
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindValidation, svcErr.Kind)
}

func TestCreateWBSInvalidDateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newWBSService(db)
	kategori := mustKategori(t, db, "Korupsi atau Gratifikasi", true)
	dosen := mustUser(t, db, "2002", model.RoleDosen, nil)

	_, err := svc.Create(claimsFor(dosen), CreateWBSRequest{
		Judul: "Judul", Deskripsi: "Isi", Lokasi: "Gedung A",
		KategoriID: kategori.ID, TanggalKejadian: "01-08-2026",
	})
	require.Error(t, err)
}

// Identitas pelapor WBS dirahasiakan dari petugas yang membaca laporan;
// admin dan petugas super tetap melihat penuh.
func TestWBSReporterAnonymizedForOfficers(t *testing.T) {
	db := newTestDB(t)
	svc := newWBSService(db)
	kategori := mustKategori(t, db, "Korupsi atau Gratifikasi", true)
	officer := mustUser(t, db, "6001", model.RolePetugasWBS, nil)
	admin := mustUser(t, db, "1001", model.RoleAdmin, nil)
	dosen := mustUser(t, db, "2002", model.RoleDosen, nil)

	created, err := svc.Create(claimsFor(dosen), CreateWBSRequest{
		Judul: "Gratifikasi", Deskripsi: "Isi", Lokasi: "Gedung A", KategoriID: kategori.ID,
	})
	require.NoError(t, err)

	seen, err := svc.GetByID(created.ID, claimsFor(officer))
	require.NoError(t, err)
	assert.Empty(t, seen.PelaporID)

	full, err := svc.GetByID(created.ID, claimsFor(admin))
	require.NoError(t, err)
	assert.Equal(t, dosen.NoIdentitas, full.PelaporID)

	list, err := svc.GetAll(claimsFor(officer), repository.PengaduanFilter{Page: 1, Rows: 10})
	require.NoError(t, err)
	require.Len(t, list.Entries, 1)
	assert.Empty(t, list.Entries[0].PelaporID)
}

func TestWBSReporterSeesOwnOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newWBSService(db)
	kategori := mustKategori(t, db, "Korupsi atau Gratifikasi", true)
	dosen := mustUser(t, db, "2002", model.RoleDosen, nil)
	tendik := mustUser(t, db, "2001", model.RoleTenagaKependidikan, nil)

	created, err := svc.Create(claimsFor(dosen), CreateWBSRequest{
		Judul: "Gratifikasi", Deskripsi: "Isi", Lokasi: "Gedung A", KategoriID: kategori.ID,
	})
	require.NoError(t, err)

	_, err = svc.GetByID(created.ID, claimsFor(tendik))
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, svcErr.Kind)

	list, err := svc.GetAll(claimsFor(tendik), repository.PengaduanFilter{Page: 1, Rows: 10})
	require.NoError(t, err)
	assert.Empty(t, list.Entries)
}

func TestWBSStatusChangeByOfficerNotifiesReporter(t *testing.T) {
	db := newTestDB(t)
	svc := newWBSService(db)
	kategori := mustKategori(t, db, "Korupsi atau Gratifikasi", true)
	officer := mustUser(t, db, "6001", model.RolePetugasWBS, nil)
	dosen := mustUser(t, db, "2002", model.RoleDosen, nil)

	created, err := svc.Create(claimsFor(dosen), CreateWBSRequest{
		Judul: "Gratifikasi", Deskripsi: "Isi", Lokasi: "Gedung A", KategoriID: kategori.ID,
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, claimsFor(officer), UpdateWBSRequest{
		Status: string(model.StatusInProcess),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProcess, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, officer.NoIdentitas, *updated.ApprovedBy)

	var notifs []model.Notification
	require.NoError(t, db.Where("pengaduan_wbs_id = ? AND type = ?", created.ID, model.NotifReportUpdated).
		Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, dosen.NoIdentitas, notifs[0].UserID)
}

func TestWBSReporterCannotChangeStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newWBSService(db)
	kategori := mustKategori(t, db, "Korupsi atau Gratifikasi", true)
	dosen := mustUser(t, db, "2002", model.RoleDosen, nil)

	created, err := svc.Create(claimsFor(dosen), CreateWBSRequest{
		Judul: "Gratifikasi", Deskripsi: "Isi", Lokasi: "Gedung A", KategoriID: kategori.ID,
	})
	require.NoError(t, err)

	_, err = svc.Update(created.ID, claimsFor(dosen), UpdateWBSRequest{
		Status: string(model.StatusCompleted),
	})
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindValidation, svcErr.Kind)
	require.Len(t, svcErr.Fields, 1)
	assert.Equal(t, "status", svcErr.Fields[0].Field)
}
