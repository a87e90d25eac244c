package routes

import (
	"github.com/GhufranBkri/Sipema-backend/internal/authz"
	"github.com/GhufranBkri/Sipema-backend/internal/handler"
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/GhufranBkri/Sipema-backend/pkg/worker"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPengaduanRoutes(app *fiber.App, db *gorm.DB, authorizer authz.Authorizer, wa *service.WaService, runner *worker.Runner) {
	pengaduanRepo := repository.NewPengaduanRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	kategoriRepo := repository.NewKategoriRepository(db)
	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	scope := service.NewScopeResolver(unitRepo)

	svc := service.NewPengaduanService(pengaduanRepo, unitRepo, kategoriRepo, userRepo, notifRepo, scope, wa, runner)
	hdl := handler.NewPengaduanHandler(svc)

	api := app.Group("/api/pelaporan", middleware.Auth)
	api.Get("/", middleware.Permission(authorizer, "PENGADUAN", "read"), hdl.GetAll)
	api.Get("/totalCount", middleware.Role(model.RoleAdmin, model.RolePetugasSuper), hdl.GetTotalCount)
	api.Get("/:id", middleware.Permission(authorizer, "PENGADUAN", "read"), hdl.GetByID)
	api.Post("/", middleware.Permission(authorizer, "PENGADUAN", "create"), hdl.Create)
	api.Patch("/:id", middleware.Permission(authorizer, "PENGADUAN", "update"), hdl.Update)
	api.Delete("/", middleware.Permission(authorizer, "PENGADUAN", "delete"), hdl.Delete)
}
