package handler

import (
	"errors"

	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// fail memetakan kind error service ke status HTTP dengan body seragam.
func fail(c *fiber.Ctx, err error) error {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		// Error tak terduga tidak boleh membocorkan detail internal.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	status := fiber.StatusInternalServerError
	switch svcErr.Kind {
	case service.KindValidation:
		status = fiber.StatusBadRequest
	case service.KindNotFound:
		status = fiber.StatusNotFound
	case service.KindUnauthorized:
		status = fiber.StatusUnauthorized
	case service.KindForbidden:
		status = fiber.StatusForbidden
	case service.KindConflict:
		status = fiber.StatusConflict
	}

	body := fiber.Map{"message": svcErr.Message}
	if len(svcErr.Fields) > 0 {
		body["errors"] = svcErr.Fields
	}
	return c.Status(status).JSON(body)
}

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{"message": message, "data": data})
}

func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message, "data": data})
}
