package service

import (
	"testing"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) *NotificationService {
	return NewNotificationService(
		repository.NewNotificationRepository(db),
		repository.NewPengaduanRepository(db),
		repository.NewUnitRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestNotificationsScopedToCaller(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	a := mustUser(t, db, "2003", model.RoleMahasiswa, nil)
	b := mustUser(t, db, "2004", model.RoleMahasiswa, nil)
	require.NoError(t, db.Create(&model.Notification{
		Title: "Untuk A", Message: "isi", Type: model.NotifReportUpdated, UserID: a.NoIdentitas,
	}).Error)
	require.NoError(t, db.Create(&model.Notification{
		Title: "Untuk B", Message: "isi", Type: model.NotifReportUpdated, UserID: b.NoIdentitas,
	}).Error)

	result, err := svc.GetAll(claimsFor(a), 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Untuk A", result.Entries[0].Title)
}

func TestMarkReadOwnNotificationsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	a := mustUser(t, db, "2003", model.RoleMahasiswa, nil)
	b := mustUser(t, db, "2004", model.RoleMahasiswa, nil)
	notif := &model.Notification{
		Title: "Untuk A", Message: "isi", Type: model.NotifReportUpdated, UserID: a.NoIdentitas,
	}
	require.NoError(t, db.Create(notif).Error)

	// Milik orang lain: NotFound, tanpa membocorkan keberadaannya.
	err := svc.MarkRead(notif.ID, claimsFor(b))
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, svcErr.Kind)

	require.NoError(t, svc.MarkRead(notif.ID, claimsFor(a)))

	count, err := svc.CountUnread(claimsFor(a))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSendOfficerAlertNotifiesUnitStaff(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	kepala := mustUser(t, db, "5001", model.RoleKepalaPetugasUnit, nil)
	unit := mustUnit(t, db, "Unit TI", &kepala.NoIdentitas)
	mustUser(t, db, "4001", model.RolePetugas, &unit.ID)
	kategori := mustKategori(t, db, "Akademik", false)

	pengaduan := &model.Pengaduan{
		Judul: "AC rusak", Deskripsi: "isi",
		UnitID: unit.ID, KategoriID: kategori.ID, TipePengaduan: model.TipeUser,
	}
	require.NoError(t, db.Create(pengaduan).Error)

	result, err := svc.SendOfficerAlert(OfficerAlertRequest{PengaduanID: pengaduan.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)

	var reminders []model.Notification
	require.NoError(t, db.Where("pengaduan_id = ? AND type = ?", pengaduan.ID, model.NotifReminder).
		Find(&reminders).Error)
	require.Len(t, reminders, 2)
}

// Satu pengingat per pengaduan per 24 jam: percobaan kedua di dalam jendela
// DITOLAK sebagai validation error, bukan dideduplikasi diam-diam.
func TestSendOfficerAlertThrottled(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	kepala := mustUser(t, db, "5001", model.RoleKepalaPetugasUnit, nil)
	unit := mustUnit(t, db, "Unit TI", &kepala.NoIdentitas)
	kategori := mustKategori(t, db, "Akademik", false)
	pengaduan := &model.Pengaduan{
		Judul: "AC rusak", Deskripsi: "isi",
		UnitID: unit.ID, KategoriID: kategori.ID, TipePengaduan: model.TipeUser,
	}
	require.NoError(t, db.Create(pengaduan).Error)

	_, err := svc.SendOfficerAlert(OfficerAlertRequest{PengaduanID: pengaduan.ID})
	require.NoError(t, err)

	_, err = svc.SendOfficerAlert(OfficerAlertRequest{PengaduanID: pengaduan.ID})
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindValidation, svcErr.Kind)
	require.Len(t, svcErr.Fields, 1)
	assert.Contains(t, svcErr.Fields[0].Message, "already sent within the last 24 hours")
}

func TestSendOfficerAlertUnknownPengaduan(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	_, err := svc.SendOfficerAlert(OfficerAlertRequest{PengaduanID: "tidak-ada"})
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindValidation, svcErr.Kind)

	_, err = svc.SendOfficerAlert(OfficerAlertRequest{})
	require.Error(t, err)
}
