package middleware

import (
	"github.com/GhufranBkri/Sipema-backend/internal/authz"
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/gofiber/fiber/v2"
)

// Role menolak request yang role pemanggilnya tidak ada di allow-list.
//
// Deprecated: jalur otorisasi warisan, dipertahankan untuk route lama.
// Route baru memakai Permission (ACL dinamis).
func Role(allowedRoles ...model.Role) fiber.Handler {
	authorizer := authz.NewRoleAuthorizer(allowedRoles...)
	return func(c *fiber.Ctx) error {
		if err := authorizer.Allow(Caller(c), "", ""); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Next()
	}
}
