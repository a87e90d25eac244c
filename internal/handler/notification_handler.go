package handler

import (
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notifService *service.NotificationService
}

func NewNotificationHandler(notifService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) GetAll(c *fiber.Ctx) error {
	result, err := h.notifService.GetAll(middleware.Caller(c), c.QueryInt("page", 1), c.QueryInt("rows", 10))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil notifikasi", result)
}

func (h *NotificationHandler) CountUnread(c *fiber.Ctx) error {
	count, err := h.notifService.CountUnread(middleware.Caller(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil jumlah notifikasi belum dibaca", fiber.Map{"unreadCount": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.notifService.MarkRead(c.Params("id"), middleware.Caller(c)); err != nil {
		return fail(c, err)
	}
	return ok(c, "Notifikasi ditandai sudah dibaca", nil)
}

// SendOfficerAlert mengirim pengingat manual ke petugas unit penangan.
func (h *NotificationHandler) SendOfficerAlert(c *fiber.Ctx) error {
	var req service.OfficerAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	result, err := h.notifService.SendOfficerAlert(req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result.Message, result)
}
