package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/stayfront/hms_backend/internal/domain"
)

type GuestHandler struct {
	guestRepo   domain.BookingGuestRepository
	bookingRepo domain.BookingRepository
}

// NewGuestHandler creates a new guest roster handler instance. The roster is
// informational: it has no lifecycle or billing impact, so the handler works
// directly against the repositories.
func NewGuestHandler(guestRepo domain.BookingGuestRepository, bookingRepo domain.BookingRepository) *GuestHandler {
	return &GuestHandler{
		guestRepo:   guestRepo,
		bookingRepo: bookingRepo,
	}
}

// GuestRequest is the payload for creating or updating a roster entry.
type GuestRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Gender  string `json:"gender" validate:"required,oneof=M F O"`
	Age     int    `json:"age" validate:"min=0,max=120"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Primary bool   `json:"primary"`
}

func (h *GuestHandler) List(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	guests, err := h.guestRepo.ListByBooking(id)
	if err != nil {
		return notFoundOrError(c, err)
	}
	return c.JSON(guests)
}

func (h *GuestHandler) Add(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	if _, err := h.bookingRepo.GetByID(id); err != nil {
		return notFoundOrError(c, err)
	}

	var req GuestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	guest := &domain.BookingGuest{
		BookingID: id,
		Name:      req.Name,
		Gender:    req.Gender,
		Age:       req.Age,
		Phone:     req.Phone,
		Email:     req.Email,
		Primary:   req.Primary,
	}
	if err := h.guestRepo.Create(guest); err != nil {
		return notFoundOrError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(guest)
}

func (h *GuestHandler) Update(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	guestID, err := strconv.Atoi(c.Params("guestId"))
	if err != nil {
		return badRequest(c, "Invalid guest ID")
	}

	var req GuestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	guest := &domain.BookingGuest{
		ID:        guestID,
		BookingID: id,
		Name:      req.Name,
		Gender:    req.Gender,
		Age:       req.Age,
		Phone:     req.Phone,
		Email:     req.Email,
		Primary:   req.Primary,
	}
	if err := h.guestRepo.Update(guest); err != nil {
		return notFoundOrError(c, err)
	}
	return c.JSON(guest)
}

func (h *GuestHandler) Delete(c *fiber.Ctx) error {
	if _, err := bookingID(c); err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	guestID, err := strconv.Atoi(c.Params("guestId"))
	if err != nil {
		return badRequest(c, "Invalid guest ID")
	}
	if err := h.guestRepo.Delete(guestID); err != nil {
		return notFoundOrError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Guest removed"})
}
