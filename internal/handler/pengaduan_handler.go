package handler

import (
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type deleteIDsRequest struct {
	IDs []string `json:"ids"`
}

type PengaduanHandler struct {
	pengaduanService *service.PengaduanService
}

func NewPengaduanHandler(pengaduanService *service.PengaduanService) *PengaduanHandler {
	return &PengaduanHandler{pengaduanService: pengaduanService}
}

func (h *PengaduanHandler) Create(c *fiber.Ctx) error {
	var req service.CreatePengaduanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	pengaduan, err := h.pengaduanService.Create(middleware.Caller(c), req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Berhasil membuat pengaduan", pengaduan)
}

func pengaduanFilter(c *fiber.Ctx) repository.PengaduanFilter {
	return repository.PengaduanFilter{
		Search:     c.Query("search"),
		Status:     model.Status(c.Query("status")),
		KategoriID: c.Query("kategoriId"),
		Page:       c.QueryInt("page", 1),
		Rows:       c.QueryInt("rows", 10),
	}
}

func (h *PengaduanHandler) GetAll(c *fiber.Ctx) error {
	result, err := h.pengaduanService.GetAll(middleware.Caller(c), pengaduanFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data pengaduan", result)
}

func (h *PengaduanHandler) GetByID(c *fiber.Ctx) error {
	pengaduan, err := h.pengaduanService.GetByID(c.Params("id"), middleware.Caller(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data pengaduan", pengaduan)
}

func (h *PengaduanHandler) Update(c *fiber.Ctx) error {
	var req service.UpdatePengaduanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	pengaduan, err := h.pengaduanService.Update(c.Params("id"), middleware.Caller(c), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengubah pengaduan", pengaduan)
}

func (h *PengaduanHandler) Delete(c *fiber.Ctx) error {
	var req deleteIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if err := h.pengaduanService.DeleteByIDs(req.IDs); err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil menghapus pengaduan", nil)
}

func (h *PengaduanHandler) GetTotalCount(c *fiber.Ctx) error {
	counts, err := h.pengaduanService.GetTotalCount()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil total pengaduan", counts)
}
