package handler

import (
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type UserLevelHandler struct {
	levelService *service.UserLevelService
}

func NewUserLevelHandler(levelService *service.UserLevelService) *UserLevelHandler {
	return &UserLevelHandler{levelService: levelService}
}

func (h *UserLevelHandler) Create(c *fiber.Ctx) error {
	var req service.UserLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	level, err := h.levelService.Create(req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Berhasil membuat user level", level)
}

func (h *UserLevelHandler) GetAll(c *fiber.Ctx) error {
	levels, err := h.levelService.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data user level", levels)
}

func (h *UserLevelHandler) GetByID(c *fiber.Ctx) error {
	level, err := h.levelService.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data user level", level)
}

func (h *UserLevelHandler) Delete(c *fiber.Ctx) error {
	if err := h.levelService.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil menghapus user level", nil)
}
