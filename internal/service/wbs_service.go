package service

import (
	"errors"
	"time"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/pkg/mailer"
	"github.com/GhufranBkri/Sipema-backend/pkg/worker"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateWBSRequest struct {
	Judul           string `json:"judul"`
	Deskripsi       string `json:"deskripsi"`
	Lokasi          string `json:"lokasi"`
	PihakTerlibat   string `json:"pihakTerlibat"`
	KategoriID      string `json:"kategoriId"`
	TanggalKejadian string `json:"tanggalKejadian"`
	FilePendukung   string `json:"filePendukung"`
}

type UpdateWBSRequest struct {
	Judul         string `json:"judul"`
	Deskripsi     string `json:"deskripsi"`
	Lokasi        string `json:"lokasi"`
	PihakTerlibat string `json:"pihakTerlibat"`
	Status        string `json:"status"`
	Response      string `json:"response"`
	FilePetugas   string `json:"filePetugas"`
}

// WBSService menangani laporan Whistle Blowing System: pool petugas sendiri,
// broadcast notifikasi ke seluruh petugas WBS (bukan per unit), dan identitas
// pelapor dirahasiakan dari petugas yang membaca.
type WBSService struct {
	wbsRepo      repository.PengaduanWBSRepository
	kategoriRepo repository.KategoriRepository
	userRepo     repository.UserRepository
	notifRepo    repository.NotificationRepository
	scope        *ScopeResolver
	mail         *mailer.Mailer
	runner       *worker.Runner
}

func NewWBSService(
	wbsRepo repository.PengaduanWBSRepository,
	kategoriRepo repository.KategoriRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	scope *ScopeResolver,
	mail *mailer.Mailer,
	runner *worker.Runner,
) *WBSService {
	return &WBSService{
		wbsRepo:      wbsRepo,
		kategoriRepo: kategoriRepo,
		userRepo:     userRepo,
		notifRepo:    notifRepo,
		scope:        scope,
		mail:         mail,
		runner:       runner,
	}
}

func (s *WBSService) Create(caller *model.UserClaims, req CreateWBSRequest) (*model.PengaduanWBS, error) {
	if caller == nil {
		return nil, Unauthorized("Token should be provided")
	}

	fields := make([]FieldError, 0)
	if req.Judul == "" {
		fields = append(fields, FieldError{Field: "judul", Message: "cannot be empty"})
	}
	if req.Deskripsi == "" {
		fields = append(fields, FieldError{Field: "deskripsi", Message: "cannot be empty"})
	}
	if req.Lokasi == "" {
		fields = append(fields, FieldError{Field: "lokasi", Message: "cannot be empty"})
	}
	if req.KategoriID == "" {
		fields = append(fields, FieldError{Field: "kategoriId", Message: "cannot be empty"})
	}
	if len(fields) > 0 {
		return nil, ValidationError(fields...)
	}

	kategori, err := s.kategoriRepo.FindByID(req.KategoriID)
	if err != nil || !kategori.IsWBS {
		return nil, ValidationError(FieldError{Field: "kategoriId", Message: "category not found"})
	}

	var tanggalKejadian *time.Time
	if req.TanggalKejadian != "" {
		parsed, perr := time.Parse("2006-01-02", req.TanggalKejadian)
		if perr != nil {
			return nil, ValidationError(FieldError{Field: "tanggalKejadian", Message: "invalid date, expected yyyy-mm-dd"})
		}
		tanggalKejadian = &parsed
	}

	since := time.Now().Add(-dedupWindow)
	if _, err := s.wbsRepo.FindSimilarSince(req.Judul, req.Deskripsi, caller.NoIdentitas, since); err == nil {
		return nil, ValidationError(FieldError{
			Field:   "pengaduan",
			Message: "Similar complaint already exists within 24 hours",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("WBSService.Create: duplicate check")
		return nil, Internal()
	}

	pengaduan := &model.PengaduanWBS{
		Judul:           req.Judul,
		Deskripsi:       req.Deskripsi,
		Lokasi:          req.Lokasi,
		PihakTerlibat:   req.PihakTerlibat,
		KategoriID:      kategori.ID,
		PelaporID:       caller.NoIdentitas,
		TanggalKejadian: tanggalKejadian,
		FilePendukung:   req.FilePendukung,
		Status:          model.StatusPending,
	}

	if err := s.wbsRepo.Create(pengaduan); err != nil {
		logrus.WithError(err).Error("WBSService.Create")
		return nil, Internal()
	}

	s.broadcastToWBSOfficers(pengaduan)
	return pengaduan, nil
}

// broadcastToWBSOfficers mengabari SEMUA petugas dan kepala WBS (pool datar,
// tidak dibatasi unit), plus email opsional bila SMTP dikonfigurasi.
func (s *WBSService) broadcastToWBSOfficers(pengaduan *model.PengaduanWBS) {
	staff, err := s.userRepo.FindByLevelNames([]string{
		string(model.RolePetugasWBS),
		string(model.RoleKepalaWBS),
	})
	if err != nil {
		logrus.WithError(err).Error("WBSService: gagal mengambil petugas WBS")
		return
	}

	title, message := newWBSTemplate(pengaduan.Judul)
	for _, member := range staff {
		notif := &model.Notification{
			Title:          title,
			Message:        message,
			Type:           model.NotifNewReport,
			UserID:         member.NoIdentitas,
			PengaduanWBSID: &pengaduan.ID,
		}
		if err := s.notifRepo.Create(notif); err != nil {
			logrus.WithError(err).WithField("recipient", member.NoIdentitas).
				Error("WBSService: gagal membuat notifikasi WBS")
		}

		if s.mail != nil && s.mail.Enabled() && s.runner != nil && member.Email != "" {
			to := member.Email
			s.runner.Enqueue(func() error {
				return s.mail.Send(to, title, message)
			})
		}
	}
}

// GetAll melist laporan WBS. Pelapor melihat miliknya; petugas WBS melihat
// semua laporan tapi identitas pelapor dihapus dari proyeksi (anonimitas).
func (s *WBSService) GetAll(caller *model.UserClaims, filter repository.PengaduanFilter) (*PagedList[model.PengaduanWBS], error) {
	scope, err := s.scope.WBSScope(caller)
	if err != nil {
		return nil, err
	}

	entries, total, dbErr := s.wbsRepo.GetAll(filter, scope)
	if dbErr != nil {
		logrus.WithError(dbErr).Error("WBSService.GetAll")
		return nil, Internal()
	}

	if caller.Role.IsWBSOfficer() {
		for i := range entries {
			entries[i].Anonymize()
		}
	}

	paged := NewPagedList(entries, total, filter.Rows)
	return &paged, nil
}

func (s *WBSService) GetByID(id string, caller *model.UserClaims) (*model.PengaduanWBS, error) {
	pengaduan, err := s.wbsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("WBSService.GetByID")
		return nil, Internal()
	}

	if caller == nil {
		return nil, Forbidden("Akses ditolak: identitas tidak ditemukan")
	}

	switch {
	case caller.Role == model.RoleAdmin || caller.Role == model.RolePetugasSuper:
		// penuh
	case caller.Role.IsWBSOfficer():
		pengaduan.Anonymize()
	default:
		if pengaduan.PelaporID != caller.NoIdentitas {
			return nil, Forbidden("Akses ditolak: bukan laporan Anda")
		}
	}
	return pengaduan, nil
}

// Update: hanya petugas WBS (atau petugas super) yang boleh mengubah status;
// pelapor boleh merevisi konten laporannya sendiri selama belum diproses.
func (s *WBSService) Update(id string, caller *model.UserClaims, req UpdateWBSRequest) (*model.PengaduanWBS, error) {
	if caller == nil {
		return nil, Unauthorized("Token should be provided")
	}

	pengaduan, err := s.wbsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("WBSService.Update: fetch")
		return nil, Internal()
	}

	isHandler := caller.Role.IsWBSOfficer() ||
		caller.Role == model.RolePetugasSuper || caller.Role == model.RoleAdmin

	if !isHandler {
		fields := make([]FieldError, 0)
		if pengaduan.PelaporID != caller.NoIdentitas {
			fields = append(fields, FieldError{Field: "id", Message: "not authorized to update this complaint"})
		}
		if req.Status != "" {
			fields = append(fields, FieldError{Field: "status", Message: "not authorized to update status"})
		}
		if len(fields) > 0 {
			return nil, ValidationError(fields...)
		}

		applyWBSContentFields(pengaduan, req)
		if err := s.wbsRepo.Update(pengaduan); err != nil {
			logrus.WithError(err).Error("WBSService.Update: save (reporter)")
			return nil, Internal()
		}
		return pengaduan, nil
	}

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

	applyWBSContentFields(pengaduan, req)
	if req.FilePetugas != "" {
		pengaduan.FilePetugas = req.FilePetugas
	}
	approvedBy := caller.NoIdentitas
	pengaduan.ApprovedBy = &approvedBy

	if err := s.wbsRepo.Update(pengaduan); err != nil {
		logrus.WithError(err).Error("WBSService.Update: save (officer)")
		return nil, Internal()
	}

	if pengaduan.Status != prevStatus && pengaduan.PelaporID != "" {
		title, message := statusUpdateTemplate(pengaduan.Judul, string(pengaduan.Status))
		notif := &model.Notification{
			Title:          title,
			Message:        message,
			Type:           model.NotifReportUpdated,
			UserID:         pengaduan.PelaporID,
			PengaduanWBSID: &pengaduan.ID,
		}
		if err := s.notifRepo.Create(notif); err != nil {
			logrus.WithError(err).Error("WBSService: gagal membuat notifikasi update status")
		}
	}

	return pengaduan, nil
}

func applyWBSContentFields(pengaduan *model.PengaduanWBS, req UpdateWBSRequest) {
	if req.Judul != "" {
		pengaduan.Judul = req.Judul
	}
	if req.Deskripsi != "" {
		pengaduan.Deskripsi = req.Deskripsi
	}
	if req.Lokasi != "" {
		pengaduan.Lokasi = req.Lokasi
	}
	if req.PihakTerlibat != "" {
		pengaduan.PihakTerlibat = req.PihakTerlibat
	}
	if req.Response != "" {
		pengaduan.Response = req.Response
	}
}

func (s *WBSService) DeleteByIDs(ids []string) error {
	if len(ids) == 0 {
		return ValidationError(FieldError{Field: "ids", Message: "cannot be empty"})
	}
	if err := s.wbsRepo.DeleteByIDs(ids); err != nil {
		logrus.WithError(err).Error("WBSService.DeleteByIDs")
		return Internal()
	}
	return nil
}
