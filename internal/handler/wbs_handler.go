package handler

import (
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type WBSHandler struct {
	wbsService *service.WBSService
}

func NewWBSHandler(wbsService *service.WBSService) *WBSHandler {
	return &WBSHandler{wbsService: wbsService}
}

func (h *WBSHandler) Create(c *fiber.Ctx) error {
	var req service.CreateWBSRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	pengaduan, err := h.wbsService.Create(middleware.Caller(c), req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Berhasil membuat laporan WBS", pengaduan)
}

func (h *WBSHandler) GetAll(c *fiber.Ctx) error {
	result, err := h.wbsService.GetAll(middleware.Caller(c), pengaduanFilter(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data laporan WBS", result)
}

func (h *WBSHandler) GetByID(c *fiber.Ctx) error {
	pengaduan, err := h.wbsService.GetByID(c.Params("id"), middleware.Caller(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data laporan WBS", pengaduan)
}

func (h *WBSHandler) Update(c *fiber.Ctx) error {
	var req service.UpdateWBSRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	pengaduan, err := h.wbsService.Update(c.Params("id"), middleware.Caller(c), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengubah laporan WBS", pengaduan)
}

func (h *WBSHandler) Delete(c *fiber.Ctx) error {
	var req deleteIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if err := h.wbsService.DeleteByIDs(req.IDs); err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil menghapus laporan WBS", nil)
}
