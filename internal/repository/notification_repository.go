package repository

import (
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	FindByID(id string) (*model.Notification, error)
	GetByUser(userID string, page, rows int) ([]model.Notification, int64, error)
	CountUnread(userID string) (int64, error)
	MarkRead(id, userID string) error
	// LatestByPengaduanAndType dipakai throttle reminder 24 jam.
	LatestByPengaduanAndType(pengaduanID string, notifType model.NotificationType) (*model.Notification, error)
	// RewriteByPengaduanAndType menimpa notifikasi lama di tempat (supersede):
	// penerima melihat satu notifikasi yang berevolusi, bukan feed duplikat.
	RewriteByPengaduanAndType(pengaduanID string, from, to model.NotificationType, title, message string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) FindByID(id string) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) GetByUser(userID string, page, rows int) ([]model.Notification, int64, error) {
	query := r.db.Model(&model.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Notification
	err := query.Scopes(Paginate(page, rows)).
		Order("created_at desc").Find(&list).Error
	return list, total, err
}

func (r *notificationRepository) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkRead(id, userID string) error {
	result := r.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepository) LatestByPengaduanAndType(pengaduanID string, notifType model.NotificationType) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.Where("pengaduan_id = ? AND type = ?", pengaduanID, notifType).
		Order("created_at desc").
		First(&notification).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) RewriteByPengaduanAndType(pengaduanID string, from, to model.NotificationType, title, message string) error {
	return r.db.Model(&model.Notification{}).
		Where("pengaduan_id = ? AND type = ?", pengaduanID, from).
		Updates(map[string]interface{}{
			"type":    to,
			"title":   title,
			"message": message,
			"is_read": false,
		}).Error
}
