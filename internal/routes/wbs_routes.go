package routes

import (
	"github.com/GhufranBkri/Sipema-backend/internal/authz"
	"github.com/GhufranBkri/Sipema-backend/internal/handler"
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/GhufranBkri/Sipema-backend/pkg/mailer"
	"github.com/GhufranBkri/Sipema-backend/pkg/worker"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWBSRoutes(app *fiber.App, db *gorm.DB, authorizer authz.Authorizer, mail *mailer.Mailer, runner *worker.Runner) {
	wbsRepo := repository.NewPengaduanWBSRepository(db)
	kategoriRepo := repository.NewKategoriRepository(db)
	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	scope := service.NewScopeResolver(repository.NewUnitRepository(db))

	svc := service.NewWBSService(wbsRepo, kategoriRepo, userRepo, notifRepo, scope, mail, runner)
	hdl := handler.NewWBSHandler(svc)

	api := app.Group("/api/pelaporanWbs", middleware.Auth)
	api.Get("/", middleware.Permission(authorizer, "PENGADUAN_WBS", "read"), hdl.GetAll)
	api.Get("/:id", middleware.Permission(authorizer, "PENGADUAN_WBS", "read"), hdl.GetByID)
	api.Post("/", middleware.Permission(authorizer, "PENGADUAN_WBS", "create"), hdl.Create)
	api.Patch("/:id", middleware.Permission(authorizer, "PENGADUAN_WBS", "update"), hdl.Update)
	api.Delete("/", middleware.Permission(authorizer, "PENGADUAN_WBS", "delete"), hdl.Delete)
}
