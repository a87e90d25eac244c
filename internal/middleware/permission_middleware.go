package middleware

import (
	"errors"

	"github.com/GhufranBkri/Sipema-backend/internal/authz"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// Permission menolak request yang user level pemanggilnya tidak memegang
// grant (feature, action) di ACL. Default-deny; tanpa identitas = forbidden.
func Permission(authorizer authz.Authorizer, feature, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authorizer.Allow(Caller(c), feature, action); err != nil {
			var svcErr *service.Error
			if errors.As(err, &svcErr) && svcErr.Kind == service.KindInternal {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Gagal memvalidasi permission"})
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Next()
	}
}
