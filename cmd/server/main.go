package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"

	"github.com/stayfront/hms_backend/internal/application"
	"github.com/stayfront/hms_backend/internal/config"
	"github.com/stayfront/hms_backend/internal/email"
	"github.com/stayfront/hms_backend/internal/infrastructure/repository"
	handlers "github.com/stayfront/hms_backend/internal/interfaces/http"
	"github.com/stayfront/hms_backend/internal/scheduler"
	services "github.com/stayfront/hms_backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length,Content-Disposition",
		MaxAge:           86400,
	}))

	// Email client
	emailClient, err := email.NewClient(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.SMTPFromName,
		cfg.SMTPFromEmail,
	)
	if err != nil {
		log.Printf("Warning: Email client initialization failed: %v", err)
		emailClient = nil // continue without email
	}

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewBookingGuestRepository(db)
	catalogRepo := repository.NewHotelServiceRepository(db)
	lineRepo := repository.NewServiceLineRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Rooms
	roomService := application.NewRoomService(roomRepo)
	s3Service, err := services.NewS3Service(cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		log.Printf("Warning: S3 initialization failed, photo uploads disabled: %v", err)
		s3Service = nil
	}
	roomHandler := handlers.NewRoomHandler(roomService, s3Service)

	// Bookings
	bookingService := application.NewBookingService(bookingRepo, roomRepo, guestRepo, emailClient)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Guests
	guestHandler := handlers.NewGuestHandler(guestRepo, bookingRepo)

	// Service catalog and purchased lines
	catalogService := application.NewCatalogService(catalogRepo)
	serviceHandler := handlers.NewServiceHandler(catalogService)
	lineService := application.NewServiceLineService(lineRepo, catalogRepo, bookingRepo)
	lineHandler := handlers.NewServiceLineHandler(lineService)

	// Payments
	paymentService := application.NewPaymentService(paymentRepo, bookingRepo)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Scheduler: close out overdue stays
	bookingScheduler := scheduler.NewBookingScheduler(bookingRepo)
	go bookingScheduler.Start()
	defer bookingScheduler.Stop()

	api := app.Group("/api", handlers.RequireAuth(cfg.JWTSecret))

	rooms := api.Group("/rooms")
	rooms.Get("/", roomHandler.GetAll)
	rooms.Get("/available", roomHandler.GetAvailable)
	rooms.Post("/", roomHandler.Create)
	rooms.Put("/:id", roomHandler.Update)
	rooms.Delete("/:id", roomHandler.Delete)
	rooms.Post("/:id/photo", roomHandler.UploadPhoto)

	catalog := api.Group("/services")
	catalog.Get("/", serviceHandler.GetAll)
	catalog.Post("/", serviceHandler.Create)
	catalog.Put("/:id", serviceHandler.Update)
	catalog.Delete("/:id", serviceHandler.Delete)

	bookings := api.Group("/bookings")
	bookings.Get("/", bookingHandler.List)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/:id", bookingHandler.Get)
	bookings.Put("/:id", bookingHandler.UpdateGuestInfo)
	bookings.Delete("/:id", bookingHandler.Delete)

	bookings.Post("/:id/confirm", bookingHandler.Confirm)
	bookings.Post("/:id/check-in", bookingHandler.CheckIn)
	bookings.Post("/:id/checkout", bookingHandler.Checkout)
	bookings.Post("/:id/cancel", bookingHandler.Cancel)

	bookings.Patch("/:id/stay", bookingHandler.UpdateStay)
	bookings.Put("/:id/room", bookingHandler.ChangeRoom)
	bookings.Get("/:id/available-rooms", bookingHandler.AvailableRooms)
	bookings.Get("/:id/invoice", bookingHandler.Invoice)

	bookings.Get("/:id/guests", guestHandler.List)
	bookings.Post("/:id/guests", guestHandler.Add)
	bookings.Put("/:id/guests/:guestId", guestHandler.Update)
	bookings.Delete("/:id/guests/:guestId", guestHandler.Delete)

	bookings.Get("/:id/services", lineHandler.List)
	bookings.Post("/:id/services", lineHandler.Add)
	bookings.Put("/:id/services/:lineId", lineHandler.Edit)
	bookings.Delete("/:id/services/:lineId", lineHandler.Remove)

	bookings.Get("/:id/payments", paymentHandler.List)
	bookings.Post("/:id/payments", paymentHandler.Record)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
