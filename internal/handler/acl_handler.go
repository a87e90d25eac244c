package handler

import (
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type AclHandler struct {
	aclService *service.AclService
}

func NewAclHandler(aclService *service.AclService) *AclHandler {
	return &AclHandler{aclService: aclService}
}

// SetPermissions mengganti seluruh izin sebuah user level.
func (h *AclHandler) SetPermissions(c *fiber.Ctx) error {
	var req service.SetPermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	result, err := h.aclService.SetPermissions(req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengubah permission", result)
}

func (h *AclHandler) GetByUserLevel(c *fiber.Ctx) error {
	result, err := h.aclService.GetByUserLevel(c.Params("userLevelId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil permission", result)
}

func (h *AclHandler) ListFeatures(c *fiber.Ctx) error {
	features, err := h.aclService.ListFeatures()
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil daftar feature", features)
}
