package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// reminderWindow: satu pengingat manual per pengaduan per 24 jam.
const reminderWindow = 24 * time.Hour

type OfficerAlertRequest struct {
	PengaduanID string `json:"pengaduanId"`
}

type OfficerAlertResult struct {
	SuccessCount int    `json:"successCount"`
	Message      string `json:"message"`
}

type NotificationService struct {
	notifRepo     repository.NotificationRepository
	pengaduanRepo repository.PengaduanRepository
	unitRepo      repository.UnitRepository
	userRepo      repository.UserRepository
}

func NewNotificationService(
	notifRepo repository.NotificationRepository,
	pengaduanRepo repository.PengaduanRepository,
	unitRepo repository.UnitRepository,
	userRepo repository.UserRepository,
) *NotificationService {
	return &NotificationService{
		notifRepo:     notifRepo,
		pengaduanRepo: pengaduanRepo,
		unitRepo:      unitRepo,
		userRepo:      userRepo,
	}
}

// GetAll selalu dibatasi ke notifikasi milik pemanggil sendiri.
func (s *NotificationService) GetAll(caller *model.UserClaims, page, rows int) (*PagedList[model.Notification], error) {
	if caller == nil {
		return nil, Unauthorized("Token should be provided")
	}

	entries, total, err := s.notifRepo.GetByUser(caller.NoIdentitas, page, rows)
	if err != nil {
		logrus.WithError(err).Error("NotificationService.GetAll")
		return nil, Internal()
	}

	paged := NewPagedList(entries, total, rows)
	return &paged, nil
}

func (s *NotificationService) CountUnread(caller *model.UserClaims) (int64, error) {
	if caller == nil {
		return 0, Unauthorized("Token should be provided")
	}
	count, err := s.notifRepo.CountUnread(caller.NoIdentitas)
	if err != nil {
		logrus.WithError(err).Error("NotificationService.CountUnread")
		return 0, Internal()
	}
	return count, nil
}

func (s *NotificationService) MarkRead(id string, caller *model.UserClaims) error {
	if caller == nil {
		return Unauthorized("Token should be provided")
	}
	if err := s.notifRepo.MarkRead(id, caller.NoIdentitas); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound()
		}
		logrus.WithError(err).Error("NotificationService.MarkRead")
		return Internal()
	}
	return nil
}

// SendOfficerAlert mengirim pengingat manual ke seluruh petugas unit tujuan
// pengaduan plus kepala unitnya. Dibatasi satu pengingat per pengaduan per
// 24 jam; percobaan dalam jendela itu DITOLAK sebagai validation error,
// bukan dideduplikasi diam-diam.
func (s *NotificationService) SendOfficerAlert(req OfficerAlertRequest) (*OfficerAlertResult, error) {
	if req.PengaduanID == "" {
		return nil, ValidationError(FieldError{Field: "pengaduanId", Message: "Pengaduan ID cannot be empty"})
	}

	pengaduan, err := s.pengaduanRepo.FindByID(req.PengaduanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ValidationError(FieldError{
				Field:   "pengaduanId",
				Message: "Pengaduan with this ID does not exist",
			})
		}
		logrus.WithError(err).Error("NotificationService.SendOfficerAlert: fetch pengaduan")
		return nil, Internal()
	}

	latest, err := s.notifRepo.LatestByPengaduanAndType(req.PengaduanID, model.NotifReminder)
	if err == nil && time.Since(latest.CreatedAt) < reminderWindow {
		return nil, ValidationError(FieldError{
			Field:   "pengaduanId",
			Message: "A reminder for this pengaduan was already sent within the last 24 hours",
		})
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Error("NotificationService.SendOfficerAlert: throttle check")
		return nil, Internal()
	}

	staff, err := s.userRepo.FindByUnitAndLevels(pengaduan.UnitID, []string{
		string(model.RolePetugas),
		string(model.RoleKepalaPetugasUnit),
	})
	if err != nil {
		logrus.WithError(err).Error("NotificationService.SendOfficerAlert: fetch staff")
		return nil, Internal()
	}

	recipients := make([]string, 0, len(staff)+1)
	for _, member := range staff {
		recipients = append(recipients, member.NoIdentitas)
	}
	if unit, uerr := s.unitRepo.FindByID(pengaduan.UnitID); uerr == nil && unit.KepalaUnitID != nil {
		recipients = append(recipients, *unit.KepalaUnitID)
	}

	title, message := reminderTemplate(pengaduan.ID, pengaduan.Judul)
	sent := 0
	for _, recipient := range recipients {
		notif := &model.Notification{
			Title:       title,
			Message:     message,
			Type:        model.NotifReminder,
			UserID:      recipient,
			PengaduanID: &pengaduan.ID,
		}
		if err := s.notifRepo.Create(notif); err != nil {
			logrus.WithError(err).WithField("recipient", recipient).
				Error("NotificationService: gagal membuat pengingat")
			continue
		}
		sent++
	}

	return &OfficerAlertResult{
		SuccessCount: sent,
		Message:      "Successfully sent " + strconv.Itoa(sent) + " notifications",
	}, nil
}
