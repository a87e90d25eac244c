package main

import (
	"fmt"

	"github.com/GhufranBkri/Sipema-backend/config"
	"github.com/GhufranBkri/Sipema-backend/internal/authz"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/routes"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/GhufranBkri/Sipema-backend/pkg/mailer"
	"github.com/GhufranBkri/Sipema-backend/pkg/worker"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	// Serve Static Files (file pendukung pengaduan)
	app.Static("/uploads", "./uploads")

	// Komponen bersama: antrian background untuk WhatsApp/email, otorisasi ACL.
	runner := worker.NewRunner(64)
	defer runner.Close()
	wa := service.NewWaService()
	mail := mailer.NewFromEnv()
	authorizer := authz.NewAclAuthorizer(repository.NewAclRepository(config.DB))

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupUserRoutes(app, config.DB, authorizer)
	routes.SetupUnitRoutes(app, config.DB, authorizer)
	routes.SetupKategoriRoutes(app, config.DB, authorizer)
	routes.SetupPengaduanRoutes(app, config.DB, authorizer, wa, runner)
	routes.SetupMasyarakatRoutes(app, config.DB, wa, runner)
	routes.SetupWBSRoutes(app, config.DB, authorizer, mail, runner)
	routes.SetupNotificationRoutes(app, config.DB)
	routes.SetupAclRoutes(app, config.DB, authorizer)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
