package service

import (
	"errors"
	"time"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/pkg/worker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// dedupWindow adalah jendela anti-spam: pengaduan dengan isi sama dari
// pelapor yang sama dalam rentang ini ditolak sebagai duplikat.
const dedupWindow = 24 * time.Hour

type CreatePengaduanRequest struct {
	Judul          string `json:"judul"`
	Deskripsi      string `json:"deskripsi"`
	UnitID         string `json:"unitId"`
	KategoriID     string `json:"kategoriId"`
	HarapanPelapor string `json:"harapan_pelapor"`
	NoTelphone     string `json:"no_telphone"`
	FilePendukung  string `json:"filePendukung"`
}

type UpdatePengaduanRequest struct {
	Judul          string `json:"judul"`
	Deskripsi      string `json:"deskripsi"`
	Status         string `json:"status"`
	Response       string `json:"response"`
	HarapanPelapor string `json:"harapan_pelapor"`
	FilePendukung  string `json:"filePendukung"`
	FilePetugas    string `json:"filePetugas"`
}

type PengaduanService struct {
	pengaduanRepo repository.PengaduanRepository
	unitRepo      repository.UnitRepository
	kategoriRepo  repository.KategoriRepository
	userRepo      repository.UserRepository
	notifRepo     repository.NotificationRepository
	scope         *ScopeResolver
	wa            *WaService
	runner        *worker.Runner
}

func NewPengaduanService(
	pengaduanRepo repository.PengaduanRepository,
	unitRepo repository.UnitRepository,
	kategoriRepo repository.KategoriRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	scope *ScopeResolver,
	wa *WaService,
	runner *worker.Runner,
) *PengaduanService {
	return &PengaduanService{
		pengaduanRepo: pengaduanRepo,
		unitRepo:      unitRepo,
		kategoriRepo:  kategoriRepo,
		userRepo:      userRepo,
		notifRepo:     notifRepo,
		scope:         scope,
		wa:            wa,
		runner:        runner,
	}
}

// Create mendaftarkan pengaduan internal (tipe USER) atas nama pemanggil dan
// memberi tahu semua petugas unit tujuan plus kepala unitnya.
func (s *PengaduanService) Create(caller *model.UserClaims, req CreatePengaduanRequest) (*model.Pengaduan, error) {
	if caller == nil {
		return nil, Unauthorized("Token should be provided")
	}

	unit, kategori, verr := s.validateCreate(req)
	if verr != nil {
		return nil, verr
	}

	// Anti-spam, bukan unique constraint: isi sama + pelapor sama + 24 jam.
	since := time.Now().Add(-dedupWindow)
	if _, err := s.pengaduanRepo.FindSimilarSince(req.Judul, req.Deskripsi, caller.NoIdentitas, "", since); err == nil {
		return nil, ValidationError(FieldError{
			Field:   "pengaduan",
			Message: "Similar complaint already exists within 24 hours",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("PengaduanService.Create: duplicate check")
		return nil, Internal()
	}

	pelaporID := caller.NoIdentitas
	pengaduan := &model.Pengaduan{
		Judul:          req.Judul,
		Deskripsi:      req.Deskripsi,
		UnitID:         unit.ID,
		KategoriID:     kategori.ID,
		PelaporID:      &pelaporID,
		TipePengaduan:  model.TipeUser,
		HarapanPelapor: req.HarapanPelapor,
		NoTelphone:     req.NoTelphone,
		FilePendukung:  req.FilePendukung,
		Status:         model.StatusPending,
	}

	if err := s.pengaduanRepo.Create(pengaduan); err != nil {
		logrus.WithError(err).Error("PengaduanService.Create")
		return nil, Internal()
	}

	s.notifyUnitStaff(pengaduan, unit)
	return pengaduan, nil
}

func (s *PengaduanService) validateCreate(req CreatePengaduanRequest) (*model.Unit, *model.Kategori, *Error) {
	fields := make([]FieldError, 0)
	if req.Judul == "" {
		fields = append(fields, FieldError{Field: "judul", Message: "cannot be empty"})
	}
	if req.Deskripsi == "" {
		fields = append(fields, FieldError{Field: "deskripsi", Message: "cannot be empty"})
	}
	if req.UnitID == "" {
		fields = append(fields, FieldError{Field: "unitId", Message: "cannot be empty"})
	}
	if req.KategoriID == "" {
		fields = append(fields, FieldError{Field: "kategoriId", Message: "cannot be empty"})
	}
	if len(fields) > 0 {
		return nil, nil, ValidationError(fields...)
	}

	unit, err := s.unitRepo.FindByID(req.UnitID)
	if err != nil {
		fields = append(fields, FieldError{Field: "unitId", Message: "unit not found"})
	}
	kategori, err := s.kategoriRepo.FindByID(req.KategoriID)
	if err != nil || kategori.IsWBS {
		fields = append(fields, FieldError{Field: "kategoriId", Message: "category not found"})
	}
	if len(fields) > 0 {
		return nil, nil, ValidationError(fields...)
	}
	return unit, kategori, nil
}

func (s *PengaduanService) notifyUnitStaff(pengaduan *model.Pengaduan, unit *model.Unit) {
	title, message := newReportTemplate(unit.NamaUnit, pengaduan.Judul)

	staff, err := s.userRepo.FindByUnitAndLevels(unit.ID, []string{string(model.RolePetugas)})
	if err != nil {
		logrus.WithError(err).Error("PengaduanService: gagal mengambil petugas unit")
		staff = nil
	}

	recipients := make([]string, 0, len(staff)+1)
	for _, member := range staff {
		recipients = append(recipients, member.NoIdentitas)
	}
	if unit.KepalaUnitID != nil {
		recipients = append(recipients, *unit.KepalaUnitID)
	}

	for _, recipient := range recipients {
		notif := &model.Notification{
			Title:       title,
			Message:     message,
			Type:        model.NotifNewReport,
			UserID:      recipient,
			PengaduanID: &pengaduan.ID,
		}
		if err := s.notifRepo.Create(notif); err != nil {
			logrus.WithError(err).WithField("recipient", recipient).
				Error("PengaduanService: gagal membuat notifikasi laporan baru")
		}
	}
}

// GetAll melist pengaduan internal. Predikat visibilitas per role dihitung
// dulu lalu diiriskan dengan filter klien; partisi tipe USER selalu berlaku.
func (s *PengaduanService) GetAll(caller *model.UserClaims, filter repository.PengaduanFilter) (*PagedList[model.Pengaduan], error) {
	scope, err := s.scope.PengaduanScope(caller)
	if err != nil {
		return nil, err
	}

	entries, total, dbErr := s.pengaduanRepo.GetAll(model.TipeUser, filter, scope)
	if dbErr != nil {
		logrus.WithError(dbErr).Error("PengaduanService.GetAll")
		return nil, Internal()
	}

	paged := NewPagedList(entries, total, filter.Rows)
	return &paged, nil
}

func (s *PengaduanService) GetByID(id string, caller *model.UserClaims) (*model.Pengaduan, error) {
	pengaduan, err := s.pengaduanRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("PengaduanService.GetByID")
		return nil, Internal()
	}

	if verr := s.authorizeDetail(pengaduan, caller); verr != nil {
		return nil, verr
	}
	return pengaduan, nil
}

// authorizeDetail menerapkan aturan visibilitas yang sama dengan listing pada
// akses detail. Deny hanya boolean, tanpa membocorkan isi resource.
func (s *PengaduanService) authorizeDetail(pengaduan *model.Pengaduan, caller *model.UserClaims) *Error {
	if caller == nil {
		return Forbidden("Akses ditolak: identitas tidak ditemukan")
	}

	switch caller.Role {
	case model.RoleAdmin, model.RolePetugasSuper:
		return nil
	case model.RolePetugas, model.RoleKepalaPetugasUnit, model.RolePimpinanUnit:
		unit, uerr := s.callerUnit(caller)
		if uerr != nil {
			return uerr
		}
		if unit.ID != pengaduan.UnitID {
			return Forbidden("Akses ditolak: laporan bukan milik unit Anda")
		}
		return nil
	default:
		if pengaduan.PelaporID == nil || *pengaduan.PelaporID != caller.NoIdentitas {
			return Forbidden("Akses ditolak: bukan laporan Anda")
		}
		return nil
	}
}

func (s *PengaduanService) callerUnit(caller *model.UserClaims) (*model.Unit, *Error) {
	var (
		unit *model.Unit
		err  error
	)
	switch caller.Role {
	case model.RoleKepalaPetugasUnit:
		unit, err = s.unitRepo.FindByKepala(caller.NoIdentitas)
	case model.RolePimpinanUnit:
		unit, err = s.unitRepo.FindByPimpinan(caller.NoIdentitas)
	default:
		unit, err = s.unitRepo.FindByPetugas(caller.NoIdentitas)
	}
	if err != nil {
		return nil, unassignedOrInternal(err)
	}
	return unit, nil
}

// Update menjalankan state machine lifecycle. Pelapor hanya boleh mengubah
// konten laporannya sendiri; perubahan status eksklusif milik petugas dan
// selalu menandai approvedBy serta memicu notifikasi.
func (s *PengaduanService) Update(id string, caller *model.UserClaims, req UpdatePengaduanRequest) (*model.Pengaduan, error) {
	if caller == nil {
		return nil, Unauthorized("Token should be provided")
	}

	pengaduan, err := s.pengaduanRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("PengaduanService.Update: fetch")
		return nil, Internal()
	}

	if caller.Role.IsReporter() {
		return s.updateAsReporter(pengaduan, caller, req)
	}
	if !caller.Role.IsOfficer() {
		return nil, Forbidden("Akses ditolak: role Anda tidak menangani pengaduan")
	}
	return s.updateAsOfficer(pengaduan, caller, req)
}

func (s *PengaduanService) updateAsReporter(pengaduan *model.Pengaduan, caller *model.UserClaims, req UpdatePengaduanRequest) (*model.Pengaduan, error) {
	fields := make([]FieldError, 0)
	if pengaduan.PelaporID == nil || *pengaduan.PelaporID != caller.NoIdentitas {
		fields = append(fields, FieldError{Field: "id", Message: "not authorized to update this complaint"})
	}
	if req.Status != "" {
		fields = append(fields, FieldError{Field: "status", Message: "not authorized to update status"})
	}
	if len(fields) > 0 {
		return nil, ValidationError(fields...)
	}

	applyContentFields(pengaduan, req)
	if err := s.pengaduanRepo.Update(pengaduan); err != nil {
		logrus.WithError(err).Error("PengaduanService.Update: save (reporter)")
		return nil, Internal()
	}
	return pengaduan, nil
}

func (s *PengaduanService) updateAsOfficer(pengaduan *model.Pengaduan, caller *model.UserClaims, req UpdatePengaduanRequest) (*model.Pengaduan, error) {
	prevStatus := pengaduan.Status

	if req.Status != "" {
		next := model.Status(req.Status)
		if !next.Valid() {
			return nil, ValidationError(FieldError{Field: "status", Message: "unknown status"})
		}
		if !prevStatus.CanTransitionTo(next) {
			return nil, ValidationError(FieldError{
				Field:   "status",
				Message: "transition from " + string(prevStatus) + " to " + string(next) + " is not allowed",
			})
		}
		pengaduan.Status = next
	}

	applyContentFields(pengaduan, req)
	if req.FilePetugas != "" {
		pengaduan.FilePetugas = req.FilePetugas
	}
	approvedBy := caller.NoIdentitas
	pengaduan.ApprovedBy = &approvedBy

	if err := s.pengaduanRepo.Update(pengaduan); err != nil {
		logrus.WithError(err).Error("PengaduanService.Update: save (officer)")
		return nil, Internal()
	}

	if pengaduan.Status != prevStatus {
		s.emitStatusNotifications(pengaduan, prevStatus, caller)
	}
	return pengaduan, nil
}

func applyContentFields(pengaduan *model.Pengaduan, req UpdatePengaduanRequest) {
	if req.Judul != "" {
		pengaduan.Judul = req.Judul
	}
	if req.Deskripsi != "" {
		pengaduan.Deskripsi = req.Deskripsi
	}
	if req.Response != "" {
		pengaduan.Response = req.Response
	}
	if req.HarapanPelapor != "" {
		pengaduan.HarapanPelapor = req.HarapanPelapor
	}
	if req.FilePendukung != "" {
		pengaduan.FilePendukung = req.FilePendukung
	}
}

// emitStatusNotifications: saat laporan pertama kali keluar dari PENDING,
// notifikasi NEW_REPORT lama DITIMPA menjadi varian "sedang diproses" yang
// menyebut petugasnya, bukan dibuat duplikatnya. Pelapor (bila ada) mendapat
// satu notifikasi REPORT_UPDATED baru; WhatsApp dikirim lewat antrian
// background dan kegagalannya tidak mempengaruhi update status.
func (s *PengaduanService) emitStatusNotifications(pengaduan *model.Pengaduan, prevStatus model.Status, caller *model.UserClaims) {
	if prevStatus == model.StatusPending {
		title, message := inProcessTemplate(pengaduan.Judul, caller.Name)
		if err := s.notifRepo.RewriteByPengaduanAndType(
			pengaduan.ID, model.NotifNewReport, model.NotifReportInProcess, title, message,
		); err != nil {
			logrus.WithError(err).Error("PengaduanService: gagal menimpa notifikasi laporan baru")
		}
	}

	if pengaduan.PelaporID != nil {
		var title, message string
		if pengaduan.Status == model.StatusCompleted {
			namaUnit := ""
			if pengaduan.Unit != nil {
				namaUnit = pengaduan.Unit.NamaUnit
			}
			title, message = resolvedTemplate(pengaduan.Judul, namaUnit)
		} else {
			title, message = statusUpdateTemplate(pengaduan.Judul, string(pengaduan.Status))
		}

		notif := &model.Notification{
			Title:       title,
			Message:     message,
			Type:        model.NotifReportUpdated,
			UserID:      *pengaduan.PelaporID,
			PengaduanID: &pengaduan.ID,
		}
		if err := s.notifRepo.Create(notif); err != nil {
			logrus.WithError(err).Error("PengaduanService: gagal membuat notifikasi update status")
		}
	}

	if pengaduan.NoTelphone != "" && s.wa.Enabled() && s.runner != nil {
		updated := *pengaduan
		to := pengaduan.NoTelphone
		s.runner.Enqueue(func() error {
			return s.wa.SendStatusUpdate(to, &updated)
		})
	}
}

// DeleteByIDs menghapus pengaduan beserta notifikasi terkait.
func (s *PengaduanService) DeleteByIDs(ids []string) error {
	if len(ids) == 0 {
		return ValidationError(FieldError{Field: "ids", Message: "cannot be empty"})
	}
	if err := s.pengaduanRepo.DeleteByIDs(ids); err != nil {
		logrus.WithError(err).Error("PengaduanService.DeleteByIDs")
		return Internal()
	}
	return nil
}

type TotalCount struct {
	TotalCount           int64 `json:"totalCount"`
	TotalCountMasyarakat int64 `json:"totalCountMasyarakat"`
}

// GetTotalCount mengembalikan jumlah pengaduan per partisi untuk dashboard.
func (s *PengaduanService) GetTotalCount() (*TotalCount, error) {
	totalUser, err := s.pengaduanRepo.CountByTipe(model.TipeUser)
	if err != nil {
		logrus.WithError(err).Error("PengaduanService.GetTotalCount")
		return nil, Internal()
	}
	totalMasyarakat, err := s.pengaduanRepo.CountByTipe(model.TipeMasyarakat)
	if err != nil {
		logrus.WithError(err).Error("PengaduanService.GetTotalCount")
		return nil, Internal()
	}
	return &TotalCount{TotalCount: totalUser, TotalCountMasyarakat: totalMasyarakat}, nil
}
