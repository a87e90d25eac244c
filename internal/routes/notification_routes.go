package routes

import (
	"github.com/GhufranBkri/Sipema-backend/internal/handler"
	"github.com/GhufranBkri/Sipema-backend/internal/middleware"
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupNotificationRoutes(app *fiber.App, db *gorm.DB) {
	notifRepo := repository.NewNotificationRepository(db)
	pengaduanRepo := repository.NewPengaduanRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	userRepo := repository.NewUserRepository(db)

	svc := service.NewNotificationService(notifRepo, pengaduanRepo, unitRepo, userRepo)
	hdl := handler.NewNotificationHandler(svc)

	api := app.Group("/api/notification", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/unread-count", hdl.CountUnread)
	api.Patch("/:id/read", hdl.MarkRead)
	api.Post("/alert-petugas",
		middleware.Role(model.RoleAdmin, model.RolePetugasSuper, model.RoleKepalaPetugasUnit, model.RolePimpinanUnit),
		hdl.SendOfficerAlert)
}
