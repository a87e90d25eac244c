package middleware

import (
	"strings"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const userLocalKey = "user"

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimSpace(strings.Replace(authHeader, "Bearer ", "", 1))
}

// Auth memverifikasi token dan menyimpan klaim user ke context. Request tanpa
// token atau dengan token tidak valid ditolak 401 sebelum logic bisnis jalan.
func Auth(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token should be provided"})
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token tidak valid atau kadaluwarsa"})
	}

	c.Locals(userLocalKey, claims)
	return c.Next()
}

// AuthOptional men-decode token bila ada tanpa menolak pemanggil anonim.
// Dipakai endpoint yang berperilaku beda untuk anonim vs terautentikasi.
func AuthOptional(c *fiber.Ctx) error {
	claims, _ := utils.DecodeToken(bearerToken(c))
	if claims != nil {
		c.Locals(userLocalKey, claims)
	}
	return c.Next()
}

// Caller mengambil klaim user dari context; nil bila request anonim.
func Caller(c *fiber.Ctx) *model.UserClaims {
	claims, ok := c.Locals(userLocalKey).(*model.UserClaims)
	if !ok {
		return nil
	}
	return claims
}
