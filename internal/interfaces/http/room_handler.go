package http

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/stayfront/hms_backend/internal/application"
	"github.com/stayfront/hms_backend/internal/domain"
	services "github.com/stayfront/hms_backend/internal/service"
)

type RoomHandler struct {
	service   *application.RoomService
	s3Service *services.S3Service
}

// NewRoomHandler creates a new room handler instance. s3Service may be nil;
// photo uploads are then rejected.
func NewRoomHandler(service *application.RoomService, s3Service *services.S3Service) *RoomHandler {
	return &RoomHandler{
		service:   service,
		s3Service: s3Service,
	}
}

// RoomRequest is the payload for creating or updating a room.
type RoomRequest struct {
	Number       string          `json:"number" validate:"required"`
	Type         string          `json:"type" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	Status       string          `json:"status" validate:"omitempty,oneof=available unavailable"`
	MinOccupancy int             `json:"minOccupancy" validate:"required,min=1"`
	MaxOccupancy int             `json:"maxOccupancy" validate:"required,min=1"`
}

// GetAll returns every room in the inventory.
func (h *RoomHandler) GetAll(c *fiber.Ctx) error {
	rooms, err := h.service.GetAllRooms()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(rooms)
}

// GetAvailable returns rooms free for a window and party size. Query
// params: from, to (YYYY-MM-DD), party_size, exclude_booking (optional).
func (h *RoomHandler) GetAvailable(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return badRequest(c, "Invalid 'from' date. Use YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return badRequest(c, "Invalid 'to' date. Use YYYY-MM-DD")
	}
	partySize, err := strconv.Atoi(c.Query("party_size", "1"))
	if err != nil || partySize < 1 {
		return badRequest(c, "Invalid party_size")
	}
	excludeBooking, _ := strconv.Atoi(c.Query("exclude_booking", "0"))

	rooms, err := h.service.GetAvailableRooms(from, to, partySize, excludeBooking)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(rooms)
}

// Create adds a room to the inventory.
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	room := roomFromRequest(req)
	if err := h.service.CreateRoom(room); err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(room)
}

// Update rewrites a room.
func (h *RoomHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}
	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	room := roomFromRequest(req)
	room.ID = id
	if err := h.service.UpdateRoom(room); err != nil {
		return domainError(c, err)
	}
	return c.JSON(room)
}

// Delete removes a room without bookings.
func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}
	if err := h.service.DeleteRoom(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Room deleted"})
}

// UploadPhoto stores a room photo in S3 and records its public URL.
func (h *RoomHandler) UploadPhoto(c *fiber.Ctx) error {
	if h.s3Service == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Photo storage is not configured",
		})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid room ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "Missing file upload")
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := services.UploadFile(h.s3Service, file, fileHeader)
	if err != nil {
		log.Printf("Failed to upload room photo: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload photo",
		})
	}

	if err := h.service.SetRoomPhoto(id, url); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

func roomFromRequest(req RoomRequest) *domain.Room {
	return &domain.Room{
		Number:       req.Number,
		Type:         req.Type,
		Price:        req.Price,
		Status:       req.Status,
		MinOccupancy: req.MinOccupancy,
		MaxOccupancy: req.MaxOccupancy,
	}
}
