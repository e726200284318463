package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/stayfront/hms_backend/internal/application"
)

type PaymentHandler struct {
	service *application.PaymentService
}

// NewPaymentHandler creates a new payment handler instance.
func NewPaymentHandler(service *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// RecordPaymentRequest is the payload for posting a payment.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Mode   string          `json:"mode" validate:"required"`
}

// Record applies one payment against the booking's due amount.
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.service.RecordPayment(id, req.Amount, req.Mode)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(result)
}

// List returns the booking's payment history.
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	id, err := bookingID(c)
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}
	payments, err := h.service.ListPayments(id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(payments)
}
