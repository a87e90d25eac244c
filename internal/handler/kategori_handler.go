package handler

import (
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// KategoriHandler melayani dua partisi kategori lewat dua instansiasi:
// satu untuk kategori pengaduan umum, satu untuk kategori WBS.
type KategoriHandler struct {
	kategoriService *service.KategoriService
}

func NewKategoriHandler(kategoriService *service.KategoriService) *KategoriHandler {
	return &KategoriHandler{kategoriService: kategoriService}
}

func (h *KategoriHandler) Create(c *fiber.Ctx) error {
	var req service.KategoriRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	kategori, err := h.kategoriService.Create(req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Berhasil membuat kategori", kategori)
}

func (h *KategoriHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.kategoriService.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data kategori", list)
}

func (h *KategoriHandler) GetByID(c *fiber.Ctx) error {
	kategori, err := h.kategoriService.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data kategori", kategori)
}

func (h *KategoriHandler) Update(c *fiber.Ctx) error {
	var req service.KategoriRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	kategori, err := h.kategoriService.Update(c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengubah kategori", kategori)
}

func (h *KategoriHandler) Delete(c *fiber.Ctx) error {
	if err := h.kategoriService.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil menghapus kategori", nil)
}
