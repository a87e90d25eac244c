package routes

import (
	"github.com/GhufranBkri/Sipema-backend/internal/authz"
	"github.com/GhufranBkri/Sipema-backend/internal/handler"
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUnitRoutes(app *fiber.App, db *gorm.DB, authorizer authz.Authorizer) {
	unitRepo := repository.NewUnitRepository(db)
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewUnitHandler(service.NewUnitService(unitRepo, userRepo))

	api := app.Group("/api/units")
	// Listing boleh anonim (form pengaduan publik butuh daftar unit); relasi
	// lengkap hanya disertakan untuk admin.
	api.Get("/", middleware.AuthOptional, hdl.GetAll)
	api.Get("/:id", hdl.GetByID)

	api.Post("/", middleware.Auth, middleware.Permission(authorizer, "UNIT", "create"), hdl.Create)
	api.Patch("/:id", middleware.Auth, middleware.Permission(authorizer, "UNIT", "update"), hdl.Update)
	api.Delete("/:id", middleware.Auth, middleware.Permission(authorizer, "UNIT", "delete"), hdl.Delete)

	// Penugasan petugas masih lewat allow-list role lama.
	api.Post("/:id/petugas", middleware.Auth,
		middleware.Role(model.RoleAdmin, model.RoleKepalaPetugasUnit), hdl.AddPetugas)
	api.Delete("/:id/petugas", middleware.Auth,
		middleware.Role(model.RoleAdmin, model.RoleKepalaPetugasUnit), hdl.RemovePetugas)
}
