package handler

import (
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type MasyarakatHandler struct {
	masyarakatService *service.MasyarakatService
}

func NewMasyarakatHandler(masyarakatService *service.MasyarakatService) *MasyarakatHandler {
	return &MasyarakatHandler{masyarakatService: masyarakatService}
}

// Create menerima pengaduan publik; tidak butuh token.
func (h *MasyarakatHandler) Create(c *fiber.Ctx) error {
	var req service.CreateMasyarakatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	pengaduan, err := h.masyarakatService.Create(req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Berhasil membuat pengaduan masyarakat", pengaduan)
}

func (h *MasyarakatHandler) GetAll(c *fiber.Ctx) error {
	result, err := h.masyarakatService.GetAll(middleware.Caller(c), pengaduanFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data pengaduan masyarakat", result)
}

func (h *MasyarakatHandler) GetByID(c *fiber.Ctx) error {
	pengaduan, err := h.masyarakatService.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data pengaduan masyarakat", pengaduan)
}

func (h *MasyarakatHandler) Update(c *fiber.Ctx) error {
	var req service.UpdatePengaduanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	pengaduan, err := h.masyarakatService.Update(c.Params("id"), middleware.Caller(c), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengubah pengaduan masyarakat", pengaduan)
}

func (h *MasyarakatHandler) Delete(c *fiber.Ctx) error {
	var req deleteIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if err := h.masyarakatService.DeleteByIDs(req.IDs); err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil menghapus pengaduan masyarakat", nil)
}
