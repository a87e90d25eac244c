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

func SetupAclRoutes(app *fiber.App, db *gorm.DB, authorizer authz.Authorizer) {
	aclRepo := repository.NewAclRepository(db)
	levelRepo := repository.NewUserLevelRepository(db)

	aclHdl := handler.NewAclHandler(service.NewAclService(aclRepo, levelRepo))
	api := app.Group("/api/acl", middleware.Auth)
	api.Get("/features", middleware.Permission(authorizer, "ACL", "read"), aclHdl.ListFeatures)
	api.Get("/:userLevelId", middleware.Permission(authorizer, "ACL", "read"), aclHdl.GetByUserLevel)
	api.Post("/", middleware.Permission(authorizer, "ACL", "create"), aclHdl.SetPermissions)

	levelHdl := handler.NewUserLevelHandler(service.NewUserLevelService(levelRepo))
	levels := app.Group("/api/userLevels", middleware.Auth)
	levels.Get("/", levelHdl.GetAll)
	levels.Get("/:id", levelHdl.GetByID)
	levels.Post("/", middleware.Permission(authorizer, "ACL", "create"), levelHdl.Create)
	levels.Delete("/:id", middleware.Permission(authorizer, "ACL", "delete"), levelHdl.Delete)
}
