package handler

import (
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type UnitHandler struct {
	unitService *service.UnitService
}

func NewUnitHandler(unitService *service.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

func (h *UnitHandler) Create(c *fiber.Ctx) error {
	var req service.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	unit, err := h.unitService.Create(req)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Berhasil membuat unit", unit)
}

func (h *UnitHandler) GetAll(c *fiber.Ctx) error {
	filter := repository.UnitFilter{
		Search: c.Query("search"),
		Jenis:  c.Query("jenis_unit"),
		Page:   c.QueryInt("page", 1),
		Rows:   c.QueryInt("rows", 10),
	}

	result, err := h.unitService.GetAll(middleware.Caller(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data unit", result)
}

func (h *UnitHandler) GetByID(c *fiber.Ctx) error {
	unit, err := h.unitService.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data unit", unit)
}

func (h *UnitHandler) Update(c *fiber.Ctx) error {
	var req service.UpdateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	unit, err := h.unitService.Update(c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengubah unit", unit)
}

func (h *UnitHandler) Delete(c *fiber.Ctx) error {
	if err := h.unitService.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil menghapus unit", nil)
}

func (h *UnitHandler) AddPetugas(c *fiber.Ctx) error {
	var req service.PetugasRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	unit, err := h.unitService.AddPetugas(c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil menambahkan petugas", unit)
}

func (h *UnitHandler) RemovePetugas(c *fiber.Ctx) error {
	var req service.PetugasRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	unit, err := h.unitService.RemovePetugas(c.Params("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil menghapus petugas", unit)
}
