package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/stayfront/hms_backend/internal/application"
	"github.com/stayfront/hms_backend/internal/domain"
)

// ServiceHandler manages the add-on service catalog.
type ServiceHandler struct {
	service *application.CatalogService
}

func NewServiceHandler(service *application.CatalogService) *ServiceHandler {
	return &ServiceHandler{service: service}
}

type CatalogServiceRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// GetAll returns the active service catalog.
func (h *ServiceHandler) GetAll(c *fiber.Ctx) error {
	items, err := h.service.GetAllServices()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(items)
}

// Create adds a service to the catalog.
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var req CatalogServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	item := &domain.HotelService{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.service.CreateService(item); err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update rewrites a catalog entry. Existing booking lines keep the price
// they were sold at.
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid service ID")
	}
	var req CatalogServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request format")
	}
	if err := validateRequest(&req); err != nil {
		return badRequest(c, err.Error())
	}

	item := &domain.HotelService{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      true,
	}
	if err := h.service.UpdateService(item); err != nil {
		return domainError(c, err)
	}
	return c.JSON(item)
}

// Delete deactivates a catalog entry.
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid service ID")
	}
	if err := h.service.DeleteService(id); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Service deactivated"})
}
