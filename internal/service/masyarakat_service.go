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

type CreateMasyarakatRequest struct {
	Judul          string `json:"judul"`
	Deskripsi      string `json:"deskripsi"`
	UnitID         string `json:"unitId"`
	KategoriID     string `json:"kategoriId"`
	Nama           string `json:"nama"`
	NIK            string `json:"NIK"`
	NoTelphone     string `json:"no_telphone"`
	HarapanPelapor string `json:"harapan_pelapor"`
	FilePendukung  string `json:"filePendukung"`
}

// MasyarakatService menangani partisi pengaduan MASYARAKAT: kanal publik
// tanpa akun, identitas hanya berupa NIK/kontak yang diisi pelapor sendiri.
type MasyarakatService struct {
	pengaduanRepo repository.PengaduanRepository
	unitRepo      repository.UnitRepository
	kategoriRepo  repository.KategoriRepository
	userRepo      repository.UserRepository
	notifRepo     repository.NotificationRepository
	wa            *WaService
	runner        *worker.Runner
}

func NewMasyarakatService(
	pengaduanRepo repository.PengaduanRepository,
	unitRepo repository.UnitRepository,
	kategoriRepo repository.KategoriRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
	wa *WaService,
	runner *worker.Runner,
) *MasyarakatService {
	return &MasyarakatService{
		pengaduanRepo: pengaduanRepo,
		unitRepo:      unitRepo,
		kategoriRepo:  kategoriRepo,
		userRepo:      userRepo,
		notifRepo:     notifRepo,
		wa:            wa,
		runner:        runner,
	}
}

// Create menerima pengaduan publik. Tidak ada pelapor terautentikasi;
// konfirmasi WhatsApp dikirim best-effort bila nomor telepon diisi.
func (s *MasyarakatService) Create(req CreateMasyarakatRequest) (*model.Pengaduan, error) {
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
	if req.NIK == "" {
		fields = append(fields, FieldError{Field: "NIK", Message: "cannot be empty"})
	}
	if len(fields) > 0 {
		return nil, ValidationError(fields...)
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
		return nil, ValidationError(fields...)
	}

	// Duplikat dikenali lewat NIK karena tidak ada akun pelapor.
	since := time.Now().Add(-dedupWindow)
	if _, err := s.pengaduanRepo.FindSimilarSince(req.Judul, req.Deskripsi, "", req.NIK, since); err == nil {
		return nil, ValidationError(FieldError{
			Field:   "pengaduan",
			Message: "Similar complaint already exists within 24 hours",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("MasyarakatService.Create: duplicate check")
		return nil, Internal()
	}

	pengaduan := &model.Pengaduan{
		Judul:          req.Judul,
		Deskripsi:      req.Deskripsi,
		UnitID:         unit.ID,
		KategoriID:     kategori.ID,
		TipePengaduan:  model.TipeMasyarakat,
		Nama:           req.Nama,
		NIK:            req.NIK,
		NoTelphone:     req.NoTelphone,
		HarapanPelapor: req.HarapanPelapor,
		FilePendukung:  req.FilePendukung,
		Status:         model.StatusPending,
	}

	if err := s.pengaduanRepo.Create(pengaduan); err != nil {
		logrus.WithError(err).Error("MasyarakatService.Create")
		return nil, Internal()
	}

	s.notifyUnitStaff(pengaduan, unit)

	if req.NoTelphone != "" && s.wa.Enabled() && s.runner != nil {
		created := *pengaduan
		to := req.NoTelphone
		s.runner.Enqueue(func() error {
			return s.wa.SendNewComplaint(to, &created)
		})
	}

	return pengaduan, nil
}

func (s *MasyarakatService) notifyUnitStaff(pengaduan *model.Pengaduan, unit *model.Unit) {
	title, message := newReportTemplate(unit.NamaUnit, pengaduan.Judul)

	staff, err := s.userRepo.FindByUnitAndLevels(unit.ID, []string{string(model.RolePetugas)})
	if err != nil {
		logrus.WithError(err).Error("MasyarakatService: gagal mengambil petugas unit")
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
				Error("MasyarakatService: gagal membuat notifikasi laporan baru")
		}
	}
}

// GetAll melist pengaduan masyarakat. Petugas dan kepala unit dibatasi ke
// unitnya (fail-fast bila tidak ditugaskan); role super melihat semua.
func (s *MasyarakatService) GetAll(caller *model.UserClaims, filter repository.PengaduanFilter) (*PagedList[model.Pengaduan], error) {
	if caller == nil {
		return nil, Forbidden("Akses ditolak: identitas tidak ditemukan")
	}

	var scope func(*gorm.DB) *gorm.DB
	switch caller.Role {
	case model.RolePetugas, model.RoleKepalaPetugasUnit:
		var (
			unit *model.Unit
			err  error
		)
		if caller.Role == model.RoleKepalaPetugasUnit {
			unit, err = s.unitRepo.FindByKepala(caller.NoIdentitas)
		} else {
			unit, err = s.unitRepo.FindByPetugas(caller.NoIdentitas)
		}
		if err != nil {
			return nil, unassignedOrInternal(err)
		}
		scope = unitScope(unit.ID)
	}

	entries, total, err := s.pengaduanRepo.GetAll(model.TipeMasyarakat, filter, scope)
	if err != nil {
		logrus.WithError(err).Error("MasyarakatService.GetAll")
		return nil, Internal()
	}

	paged := NewPagedList(entries, total, filter.Rows)
	return &paged, nil
}

func (s *MasyarakatService) GetByID(id string) (*model.Pengaduan, error) {
	pengaduan, err := s.pengaduanRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound()
		}
		logrus.WithError(err).Error("MasyarakatService.GetByID")
		return nil, Internal()
	}
	if pengaduan.TipePengaduan != model.TipeMasyarakat {
		return nil, NotFound()
	}
	return pengaduan, nil
}

// Update oleh petugas: approvedBy distempel dan pelapor dikabari via WhatsApp.
func (s *MasyarakatService) Update(id string, caller *model.UserClaims, req UpdatePengaduanRequest) (*model.Pengaduan, error) {
	if caller == nil {
		return nil, Unauthorized("Token should be provided")
	}
	if !caller.Role.IsOfficer() {
		return nil, Forbidden("Akses ditolak: role Anda tidak menangani pengaduan masyarakat")
	}

	pengaduan, err := s.GetByID(id)
	if err != nil {
		return nil, err
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

	applyContentFields(pengaduan, req)
	if req.FilePetugas != "" {
		pengaduan.FilePetugas = req.FilePetugas
	}
	approvedBy := caller.NoIdentitas
	pengaduan.ApprovedBy = &approvedBy

	if err := s.pengaduanRepo.Update(pengaduan); err != nil {
		logrus.WithError(err).Error("MasyarakatService.Update")
		return nil, Internal()
	}

	if pengaduan.Status != prevStatus && pengaduan.NoTelphone != "" && s.wa.Enabled() && s.runner != nil {
		updated := *pengaduan
		to := pengaduan.NoTelphone
		s.runner.Enqueue(func() error {
			return s.wa.SendStatusUpdate(to, &updated)
		})
	}

	return pengaduan, nil
}

func (s *MasyarakatService) DeleteByIDs(ids []string) error {
	if len(ids) == 0 {
		return ValidationError(FieldError{Field: "ids", Message: "cannot be empty"})
	}
	if err := s.pengaduanRepo.DeleteByIDs(ids); err != nil {
		logrus.WithError(err).Error("MasyarakatService.DeleteByIDs")
		return Internal()
	}
	return nil
}
