package routes

import (
	"github.com/GhufranBkri/Sipema-backend/internal/authz"
	"github.com/GhufranBkri/Sipema-backend/internal/handler"
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupKategoriRoutes memasang dua partisi kategori: /api/kategori untuk
// pengaduan umum dan /api/kategoriWbs untuk WBS.
func SetupKategoriRoutes(app *fiber.App, db *gorm.DB, authorizer authz.Authorizer) {
	repo := repository.NewKategoriRepository(db)

	umum := handler.NewKategoriHandler(service.NewKategoriService(repo, false))
	api := app.Group("/api/kategori")
	api.Get("/", middleware.AuthOptional, umum.GetAll)
	api.Get("/:id", umum.GetByID)
	api.Post("/", middleware.Auth, middleware.Permission(authorizer, "KATEGORI", "create"), umum.Create)
	api.Patch("/:id", middleware.Auth, middleware.Permission(authorizer, "KATEGORI", "update"), umum.Update)
	api.Delete("/:id", middleware.Auth, middleware.Permission(authorizer, "KATEGORI", "delete"), umum.Delete)

	wbs := handler.NewKategoriHandler(service.NewKategoriService(repo, true))
	apiWbs := app.Group("/api/kategoriWbs")
	apiWbs.Get("/", middleware.AuthOptional, wbs.GetAll)
	apiWbs.Get("/:id", wbs.GetByID)
	apiWbs.Post("/", middleware.Auth, middleware.Permission(authorizer, "KATEGORI_WBS", "create"), wbs.Create)
	apiWbs.Patch("/:id", middleware.Auth, middleware.Permission(authorizer, "KATEGORI_WBS", "update"), wbs.Update)
	apiWbs.Delete("/:id", middleware.Auth, middleware.Permission(authorizer, "KATEGORI_WBS", "delete"), wbs.Delete)
}
