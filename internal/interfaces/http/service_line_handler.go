package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/stayfront/hms_backend/internal/application"
)

type ServiceLineHandler struct {
	service *application.ServiceLineService
}

// NewServiceLineHandler creates a new service line handler instance.
func NewServiceLineHandler(service *application.ServiceLineService) *ServiceLineHandler {
	return &ServiceLineHandler{
		service: service,
	}
}

// AddServiceRequest attaches a catalog service to a booking.
type AddServiceRequest struct {
	ServiceID int `json:"serviceId" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"required,min=1"`
}

// EditServiceRequest updates an existing service line.
type EditServiceRequest struct {
	Quantity   int             `json:"quantity" validate:"required,min=1"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
}

// List returns the booking's service lines.
func (h *ServiceLineHandler) List(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	lines, err := h.service.ListServices(id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(lines)
}

// Add attaches a catalog service to the booking.
func (h *ServiceLineHandler) Add(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	var req AddServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	booking, err := h.service.AddService(id, req.ServiceID, req.Quantity)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// Edit updates a line's quantity and paid amount.
func (h *ServiceLineHandler) Edit(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	lineID, err := strconv.Atoi(c.Params("lineId"))
	if err != nil {
		return badRequest(c, "Invalid service line ID")
	}
	var req EditServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	booking, err := h.service.EditService(id, lineID, req.Quantity, req.PaidAmount)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(booking)
}

// Remove deletes a service line.
func (h *ServiceLineHandler) Remove(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	lineID, err := strconv.Atoi(c.Params("lineId"))
	if err != nil {
		return badRequest(c, "Invalid service line ID")
	}

	booking, err := h.service.RemoveService(id, lineID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(booking)
}
