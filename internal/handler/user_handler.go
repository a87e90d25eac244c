package handler

import (
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	filter := repository.UserFilter{
		Search:    c.Query("search"),
		LevelName: c.Query("userLevelName"),
		Page:      c.QueryInt("page", 1),
		Rows:      c.QueryInt("rows", 10),
	}

	result, err := h.userService.GetAll(filter)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data user", result)
}

// GetProfile mengembalikan profil pemanggil sendiri berdasarkan token.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	caller := middleware.Caller(c)
	if caller == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token should be provided"})
	}

	user, err := h.userService.GetByNoIdentitas(caller.NoIdentitas)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil profil", user)
}

func (h *UserHandler) GetByNoIdentitas(c *fiber.Ctx) error {
	user, err := h.userService.GetByNoIdentitas(c.Params("noIdentitas"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengambil data user", user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	user, err := h.userService.Update(c.Params("noIdentitas"), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil mengubah data user", user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.Params("noIdentitas")); err != nil {
		return fail(c, err)
	}
	return ok(c, "Berhasil menghapus user", nil)
}
