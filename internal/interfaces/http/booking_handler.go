package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stayfront/hms_backend/internal/application"
	"github.com/stayfront/hms_backend/internal/domain"
	"github.com/stayfront/hms_backend/internal/pdf"
)

type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new booking handler instance.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{
		service: service,
	}
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	GuestName    string `json:"guestName" validate:"required,min=2"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PartySize    int    `json:"partySize" validate:"required,min=1"`
	RoomID       int    `json:"roomId" validate:"required,min=1"`
	CheckInDate  string `json:"checkInDate" validate:"required"`  // Format: YYYY-MM-DD
	CheckOutDate string `json:"checkOutDate" validate:"required"` // Format: YYYY-MM-DD
}

// UpdateGuestInfoRequest is the payload for editing the primary guest.
type UpdateGuestInfoRequest struct {
	GuestName string `json:"guestName" validate:"required,min=2"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	PartySize int    `json:"partySize" validate:"required,min=1"`
}

// UpdateStayRequest moves the check-out date.
type UpdateStayRequest struct {
	CheckOutDate string `json:"checkOutDate" validate:"required"` // Format: YYYY-MM-DD
}

// ChangeRoomRequest swaps the assigned room. ChangeAfterDays is required for
// stays longer than one night and must be null otherwise.
type ChangeRoomRequest struct {
	NewRoomID       int  `json:"newRoomId" validate:"required,min=1"`
	ChangeAfterDays *int `json:"changeAfterDays"`
}

// List returns all bookings.
func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.service.ListBookings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(bookings)
}

// Get returns one booking with its room, guests, service lines and the
// actions currently permitted on it.
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}

	booking, err := h.service.GetBooking(id)
	if err != nil {
		return notFoundOrError(c, err)
	}

	return c.JSON(fiber.Map{
		"booking":        booking,
		"allowedActions": application.Allowed(booking),
		"fullyPaid":      application.FullyPaid(booking.DueAmount),
		"progress":       application.PaymentProgress(booking.TotalAmount, booking.PaidAmount),
	})
}

// Create stores a new pending booking.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return badRequest(c, "Invalid checkInDate format. Use YYYY-MM-DD")
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		return badRequest(c, "Invalid checkOutDate format. Use YYYY-MM-DD")
	}

	booking, err := h.service.CreateBooking(&domain.Booking{
		GuestName:    req.GuestName,
		Phone:        req.Phone,
		Email:        req.Email,
		PartySize:    req.PartySize,
		RoomID:       req.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// UpdateGuestInfo edits the primary guest contact fields.
func (h *BookingHandler) UpdateGuestInfo(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	var req UpdateGuestInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	booking, err := h.service.UpdateGuestInfo(id, req.GuestName, req.Phone, req.Email, req.PartySize)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(booking)
}

// Delete removes a booking permanently.
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	if err := h.service.Delete(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Booking deleted"})
}

// Confirm sets the confirmation flag and emails the guest.
func (h *BookingHandler) Confirm(c *fiber.Ctx) error {
	return h.transition(c, h.service.Confirm, "Booking confirmed")
}

// CheckIn marks the guest as arrived.
func (h *BookingHandler) CheckIn(c *fiber.Ctx) error {
	return h.transition(c, h.service.CheckIn, "Guest checked in")
}

// Checkout closes the stay and emails the receipt.
func (h *BookingHandler) Checkout(c *fiber.Ctx) error {
	return h.transition(c, h.service.Checkout, "Guest checked out")
}

// Cancel cancels a booking that has not reached check-in.
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	return h.transition(c, h.service.Cancel, "Booking cancelled")
}

// UpdateStay moves the check-out date and bills the delta.
func (h *BookingHandler) UpdateStay(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	var req UpdateStayRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	newCheckOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		return badRequest(c, "Invalid checkOutDate format. Use YYYY-MM-DD")
	}

	result, err := h.service.UpdateStay(id, newCheckOut)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(result)
}

// ChangeRoom swaps the assigned room with optional proration.
func (h *BookingHandler) ChangeRoom(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	var req ChangeRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.service.ChangeRoom(id, req.NewRoomID, req.ChangeAfterDays)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(result)
}

// AvailableRooms lists rooms the booking could move to.
func (h *BookingHandler) AvailableRooms(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	rooms, err := h.service.AvailableRooms(id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(rooms)
}

// Invoice renders the booking's invoice as a PDF download.
func (h *BookingHandler) Invoice(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	booking, err := h.service.GetBooking(id)
	if err != nil {
		return notFoundOrError(c, err)
	}

	doc, filename, err := pdf.BuildInvoice(booking)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate invoice",
		})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

func (h *BookingHandler) transition(c *fiber.Ctx, fn func(int) (*domain.Booking, error), message string) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	booking, err := fn(id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":        message,
		"booking":        booking,
		"allowedActions": application.Allowed(booking),
	})
}

func bookingID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// domainError maps application errors onto HTTP statuses: guard violations
// become 409, missing records 404, everything else 400. The error text is
// surfaced verbatim; it is what the operator sees.
func domainError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	switch {
	case application.IsGuardViolation(err):
		status = fiber.StatusConflict
	case strings.Contains(err.Error(), "not found"):
		status = fiber.StatusNotFound
	case strings.HasPrefix(err.Error(), "failed to"):
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func notFoundOrError(c *fiber.Ctx, err error) error {
	if strings.Contains(err.Error(), "not found") {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
