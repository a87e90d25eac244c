package routes

import (
	"github.com/GhufranBkri/Sipema-backend/internal/handler"
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/GhufranBkri/Sipema-backend/pkg/worker"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMasyarakatRoutes(app *fiber.App, db *gorm.DB, wa *service.WaService, runner *worker.Runner) {
	pengaduanRepo := repository.NewPengaduanRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	kategoriRepo := repository.NewKategoriRepository(db)
	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	svc := service.NewMasyarakatService(pengaduanRepo, unitRepo, kategoriRepo, userRepo, notifRepo, wa, runner)
	hdl := handler.NewMasyarakatHandler(svc)

	api := app.Group("/api/pengaduan")
	// Kanal publik: siapa pun boleh mengadu tanpa akun.
	api.Post("/", middleware.AuthOptional, hdl.Create)

	petugas := middleware.Role(model.RoleAdmin, model.RolePetugasSuper, model.RolePetugas, model.RoleKepalaPetugasUnit)
	api.Get("/", middleware.Auth, petugas, hdl.GetAll)
	api.Get("/:id", middleware.Auth, petugas, hdl.GetByID)
	api.Patch("/:id", middleware.Auth, petugas, hdl.Update)
	api.Delete("/", middleware.Auth, middleware.Role(model.RoleAdmin, model.RolePetugasSuper), hdl.Delete)
}
